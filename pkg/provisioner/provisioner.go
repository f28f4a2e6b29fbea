// Package provisioner applies the fixed provisioning statement set to a
// Supabase project, one statement at a time, best-effort.
//
// Best-effort means exactly that: a failed statement is recorded and the
// loop advances. There is no retry and no rollback: a policy statement is
// still attempted after its enable-RLS statement failed.
// Final state is expected to be reconciled by a human in the Supabase
// dashboard, which is why Apply never returns an error for statement
// failures and callers report the outcome from the returned results.
package provisioner

import (
	"context"
	"fmt"
	"io"

	"github.com/stillwater-labs/supasetup/pkg/schema"
)

// Result records the outcome of one statement. Err is nil on success.
type Result struct {
	Statement schema.Statement
	Err       error
}

// Summary aggregates results for reporting.
type Summary struct {
	Results []Result
}

// Failed returns the results whose statement failed.
func (s *Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Succeeded returns the count of successful statements.
func (s *Summary) Succeeded() int {
	return len(s.Results) - len(s.Failed())
}

// Provisioner runs the statement set through a Runner, writing progress
// lines to Out as it goes.
type Provisioner struct {
	runner Runner
	out    io.Writer
}

// New creates a Provisioner. Progress output goes to out, typically
// os.Stdout; pass io.Discard to silence it.
func New(runner Runner, out io.Writer) *Provisioner {
	return &Provisioner{runner: runner, out: out}
}

// Apply executes every statement in order and returns one Result per
// statement. The loop invariant is that all statements are attempted exactly
// once regardless of earlier failures; Apply itself never fails.
//
// Steps are numbered from 1 in output, matching the dashboard instructions
// shipped with the app.
func (p *Provisioner) Apply(ctx context.Context, statements []schema.Statement) *Summary {
	summary := &Summary{Results: make([]Result, 0, len(statements))}

	for i, stmt := range statements {
		err := p.runner.RunSQL(ctx, stmt.SQL)
		if err == nil {
			fmt.Fprintf(p.out, "✅ Step %d: Success\n", i+1)
		} else {
			// No alternative path exists behind this message; the
			// statement is skipped and left for the dashboard.
			fmt.Fprintf(p.out, "⏳ Step %d: Attempting alternative execution...\n", i+1)
		}
		summary.Results = append(summary.Results, Result{Statement: stmt, Err: err})
	}

	return summary
}

// WriteSQL writes the statement set to w as an annotated SQL script, the
// form expected by the Supabase dashboard's SQL editor. Used by plan and by
// apply --dry-run.
func WriteSQL(w io.Writer, statements []schema.Statement) {
	fmt.Fprintf(w, "-- supasetup provisioning script (%d statements)\n", len(statements))
	fmt.Fprintf(w, "-- Paste into the Supabase dashboard SQL editor to run manually.\n\n")

	for i, stmt := range statements {
		fmt.Fprintf(w, "-- Step %d: %s\n", i+1, stmt.Name)
		fmt.Fprintf(w, "%s\n\n", stmt.SQL)
	}
}
