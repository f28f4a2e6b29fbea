package doctor

import (
	"context"
	"fmt"
)

// TableState is a compact snapshot of one provisioned table, used by the
// status command for quick checks without the full doctor report.
type TableState struct {
	// Exists indicates the table is present in the public schema.
	Exists bool

	// RLSEnabled indicates row-level security is enabled. Always false
	// when the table is missing.
	RLSEnabled bool

	// PolicyCount is the number of policies attached to the table.
	PolicyCount int
}

// GetTableState returns the current state of one table.
func GetTableState(ctx context.Context, db Querier, table string) (*TableState, error) {
	state := &TableState{}

	err := db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pg_class c
			JOIN pg_namespace n ON n.oid = c.relnamespace
			WHERE c.relname = $1
			AND n.nspname = 'public'
			AND c.relkind = 'r'
		)
	`, table).Scan(&state.Exists)
	if err != nil {
		return nil, fmt.Errorf("checking table %s: %w", table, err)
	}
	if !state.Exists {
		return state, nil
	}

	err = db.QueryRowContext(ctx, `
		SELECT c.relrowsecurity
		FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE c.relname = $1
		AND n.nspname = 'public'
	`, table).Scan(&state.RLSEnabled)
	if err != nil {
		return nil, fmt.Errorf("checking RLS on %s: %w", table, err)
	}

	err = db.QueryRowContext(ctx, `
		SELECT count(*) FROM pg_policies
		WHERE schemaname = 'public' AND tablename = $1
	`, table).Scan(&state.PolicyCount)
	if err != nil {
		return nil, fmt.Errorf("counting policies on %s: %w", table, err)
	}

	return state, nil
}
