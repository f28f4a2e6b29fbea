package provisioner

import (
	"context"
	"database/sql"
)

// Runner executes a single SQL statement against the target project.
// Implemented by the PostgREST RPC client (pkg/supabase) and by DBRunner for
// direct Postgres connections.
type Runner interface {
	RunSQL(ctx context.Context, query string) error
}

// Execer is the minimal database interface needed for direct execution.
// Implemented by *sql.DB, *sql.Tx, and *sql.Conn.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// DBRunner adapts an Execer to the Runner interface for direct-connection
// mode, where statements bypass PostgREST and run over the wire protocol.
type DBRunner struct {
	DB Execer
}

func (r DBRunner) RunSQL(ctx context.Context, query string) error {
	_, err := r.DB.ExecContext(ctx, query)
	return err
}
