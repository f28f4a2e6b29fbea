// Package doctor provides health checks for the provisioned Wellness Tracker
// database.
//
// The doctor command inspects the target project over a direct Postgres
// connection and reports whether the tables exist, whether row-level
// security is enabled on each, and whether every expected policy is present.
// It exists because apply is best-effort: statements can fail without
// failing the run, so final state needs a separate way to be verified.
//
// Example usage:
//
//	d := doctor.New(db)
//	report, err := d.Run(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	report.Print(os.Stdout, true) // verbose=true
package doctor

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/stillwater-labs/supasetup/pkg/schema"
)

// Status represents the result of a health check.
type Status int

const (
	// StatusPass indicates the check passed.
	StatusPass Status = iota
	// StatusWarn indicates a non-critical issue.
	StatusWarn
	// StatusFail indicates a critical issue that will cause failures.
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns a status indicator symbol for terminal output.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return "✓"
	case StatusWarn:
		return "⚠"
	case StatusFail:
		return "✗"
	default:
		return "?"
	}
}

// CheckResult represents the outcome of a single health check.
type CheckResult struct {
	// Category groups related checks (e.g., "Table: user_profiles").
	Category string

	// Name is a short identifier for the check.
	Name string

	// Status is the check outcome.
	Status Status

	// Message is a human-readable description of the result.
	Message string

	// Details provides additional information for verbose output.
	Details string

	// FixHint suggests how to resolve issues.
	FixHint string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult

	// Summary counts.
	Passed   int
	Warnings int
	Errors   int
}

// AddCheck adds a check result and updates summary counts.
func (r *Report) AddCheck(check CheckResult) {
	r.Checks = append(r.Checks, check)
	switch check.Status {
	case StatusPass:
		r.Passed++
	case StatusWarn:
		r.Warnings++
	case StatusFail:
		r.Errors++
	}
}

// Print writes the report to the given writer.
func (r *Report) Print(w io.Writer, verbose bool) {
	// Group checks by category
	categories := make(map[string][]CheckResult)
	var categoryOrder []string
	for _, check := range r.Checks {
		if _, exists := categories[check.Category]; !exists {
			categoryOrder = append(categoryOrder, check.Category)
		}
		categories[check.Category] = append(categories[check.Category], check)
	}

	// Print each category
	for _, cat := range categoryOrder {
		_, _ = fmt.Fprintf(w, "\n%s\n", cat)
		for _, check := range categories[cat] {
			_, _ = fmt.Fprintf(w, "  %s %s\n", check.Status.Symbol(), check.Message)
			if verbose && check.Details != "" {
				// Indent details
				for _, line := range strings.Split(check.Details, "\n") {
					_, _ = fmt.Fprintf(w, "      %s\n", line)
				}
			}
			if check.Status != StatusPass && check.FixHint != "" {
				_, _ = fmt.Fprintf(w, "      Fix: %s\n", check.FixHint)
			}
		}
	}

	// Print summary
	_, _ = fmt.Fprintf(w, "\nSummary: %d passed, %d warnings, %d errors\n",
		r.Passed, r.Warnings, r.Errors)
}

// HasErrors returns true if any check failed.
func (r *Report) HasErrors() bool {
	return r.Errors > 0
}

// Querier is the minimal database interface the checks need.
// Implemented by *sql.DB and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Doctor performs health checks on the provisioned database.
type Doctor struct {
	db Querier
}

// New creates a new Doctor instance.
func New(db Querier) *Doctor {
	return &Doctor{db: db}
}

// Run executes all health checks and returns a report.
// Checks run per table: existence, RLS enabled, expected policies. The
// check-ins table additionally gets a column shape check.
func (d *Doctor) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	for _, table := range []string{schema.ProfilesTable, schema.CheckinsTable} {
		exists, err := d.checkTable(ctx, report, table)
		if err != nil {
			return nil, fmt.Errorf("checking table %s: %w", table, err)
		}
		if !exists {
			continue
		}
		if err := d.checkRLS(ctx, report, table); err != nil {
			return nil, fmt.Errorf("checking RLS on %s: %w", table, err)
		}
		if err := d.checkPolicies(ctx, report, table); err != nil {
			return nil, fmt.Errorf("checking policies on %s: %w", table, err)
		}
	}

	if err := d.checkCheckinColumns(ctx, report); err != nil {
		return nil, fmt.Errorf("checking check-in columns: %w", err)
	}

	return report, nil
}

func category(table string) string {
	return "Table: " + table
}

// checkTable verifies the table exists in the public schema.
func (d *Doctor) checkTable(ctx context.Context, report *Report, table string) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pg_class c
			JOIN pg_namespace n ON n.oid = c.relnamespace
			WHERE c.relname = $1
			AND n.nspname = 'public'
			AND c.relkind = 'r'
		)
	`, table).Scan(&exists)
	if err != nil {
		return false, err
	}

	if !exists {
		report.AddCheck(CheckResult{
			Category: category(table),
			Name:     "exists",
			Status:   StatusFail,
			Message:  fmt.Sprintf("Table public.%s does not exist", table),
			FixHint:  "Run 'supasetup apply' or paste the output of 'supasetup plan' into the dashboard SQL editor",
		})
		return false, nil
	}

	report.AddCheck(CheckResult{
		Category: category(table),
		Name:     "exists",
		Status:   StatusPass,
		Message:  fmt.Sprintf("Table public.%s exists", table),
	})
	return true, nil
}

// checkRLS verifies row-level security is enabled on the table.
func (d *Doctor) checkRLS(ctx context.Context, report *Report, table string) error {
	var enabled bool
	err := d.db.QueryRowContext(ctx, `
		SELECT c.relrowsecurity
		FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE c.relname = $1
		AND n.nspname = 'public'
	`, table).Scan(&enabled)
	if err != nil {
		return err
	}

	if !enabled {
		report.AddCheck(CheckResult{
			Category: category(table),
			Name:     "rls",
			Status:   StatusFail,
			Message:  "Row-level security is NOT enabled",
			Details:  "Without RLS every anon-key client can read and write all rows",
			FixHint:  fmt.Sprintf("ALTER TABLE public.%s ENABLE ROW LEVEL SECURITY;", table),
		})
		return nil
	}

	report.AddCheck(CheckResult{
		Category: category(table),
		Name:     "rls",
		Status:   StatusPass,
		Message:  "Row-level security is enabled",
	})
	return nil
}

// checkPolicies verifies every expected policy exists on the table.
func (d *Doctor) checkPolicies(ctx context.Context, report *Report, table string) error {
	rows, err := d.db.QueryContext(ctx, `
		SELECT policyname FROM pg_policies
		WHERE schemaname = 'public' AND tablename = $1
	`, table)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, policy := range schema.ExpectedPolicies[table] {
		if present[policy] {
			report.AddCheck(CheckResult{
				Category: category(table),
				Name:     "policy",
				Status:   StatusPass,
				Message:  fmt.Sprintf("Policy %q present", policy),
			})
			continue
		}
		report.AddCheck(CheckResult{
			Category: category(table),
			Name:     "policy",
			Status:   StatusFail,
			Message:  fmt.Sprintf("Policy %q missing", policy),
			FixHint:  "Re-run the matching CREATE POLICY statement from 'supasetup plan'",
		})
	}
	return nil
}

// checkinColumns are the columns the app's check-in writes depend on.
var checkinColumns = []string{
	"id", "user_id", "mood", "stress_level", "sleep_hours",
	"journal_notes", "activities", "created_at",
}

// checkCheckinColumns verifies the check-ins table has the column shape the
// app writes. Missing columns are warnings: an older deployment may predate
// a column and still mostly work.
func (d *Doctor) checkCheckinColumns(ctx context.Context, report *Report) error {
	rows, err := d.db.QueryContext(ctx, `
		SELECT column_name FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
	`, schema.CheckinsTable)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(present) == 0 {
		// Table missing entirely; already reported by checkTable.
		return nil
	}

	var missing []string
	for _, col := range checkinColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		report.AddCheck(CheckResult{
			Category: "Columns",
			Name:     "checkin_columns",
			Status:   StatusWarn,
			Message:  fmt.Sprintf("%s is missing %d expected column(s)", schema.CheckinsTable, len(missing)),
			Details:  strings.Join(missing, ", "),
			FixHint:  "Compare against the CREATE TABLE statement in 'supasetup plan'",
		})
		return nil
	}

	report.AddCheck(CheckResult{
		Category: "Columns",
		Name:     "checkin_columns",
		Status:   StatusPass,
		Message:  fmt.Sprintf("%s has all %d expected columns", schema.CheckinsTable, len(checkinColumns)),
	})
	return nil
}
