package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stillwater-labs/supasetup/pkg/provisioner"
	"github.com/stillwater-labs/supasetup/pkg/schema"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the provisioning SQL",
	Long: `Print the provisioning statement set as an annotated SQL script.

The output is suitable for pasting into the Supabase dashboard's SQL
editor, which is the manual fallback when the execute_sql RPC endpoint is
not available. plan never reads credentials and never touches the network.`,
	Example: `  # Print the SQL
  supasetup plan

  # Save it for the dashboard
  supasetup plan > provision.sql`,
	RunE: func(cmd *cobra.Command, args []string) error {
		provisioner.WriteSQL(os.Stdout, schema.Statements())
		return nil
	},
}
