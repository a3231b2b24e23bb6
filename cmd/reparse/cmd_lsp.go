package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/reparse/lsp"
)

const version = "0.1.0"

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version, a.cfg.LSP.Verify)
			return server.RunStdio()
		},
	}
}
