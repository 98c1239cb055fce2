package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	serve := NewServeCmd()

	cmd := &cobra.Command{
		Use:           "authd",
		Short:         "Authentication server",
		Long:          `authd issues, refreshes and revokes session tokens over gRPC and HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          serve.RunE,
	}

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
