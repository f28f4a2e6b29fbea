// Package main provides the supasetup CLI, the provisioning tool for the
// Wellness Tracker's Supabase backend.
//
// The CLI supports:
//   - apply: Extract credentials from supabase-config.js and run the
//     provisioning statements against the project
//   - plan: Print the provisioning SQL without touching the network
//   - status: Check provisioned state over a direct database connection
//   - doctor: Run health checks on tables, RLS, and policies
//   - init: Interactively write a supasetup.yaml
//
// apply is best-effort by design: statement failures are reported and
// skipped, and final state is verified separately with status or doctor (or
// in the Supabase dashboard).
package main

func main() {
	Execute()
}
