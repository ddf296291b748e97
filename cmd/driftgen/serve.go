package main

import (
	"github.com/spf13/cobra"

	"github.com/driftdata/driftgen/api"
)

// newServeCommand creates the serve command, which exposes generation over
// HTTP until interrupted.
func newServeCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the driftgen HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := api.NewServer()
			return server.Start(port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "3000", "Port to listen on")
	return cmd
}
