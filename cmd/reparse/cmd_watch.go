package main

import (
	"os"
	"os/signal"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Reparse .java files incrementally whenever they change",
		Long: `Watches a single file, or every file under a directory selected by the
check.include patterns, and reparses each written file incrementally against
its previous version.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			info, err := os.Stat(path)
			if err != nil {
				return errors.Wrap(err, "watch")
			}

			root := path
			include := a.cfg.Check.Matches
			if !info.IsDir() {
				root = filepath.Dir(path)
				name := filepath.Base(path)
				include = func(rel string) bool { return rel == name }
			}

			w := newFileWatcher(root, include, cmd.OutOrStdout())
			w.verify = verify || a.cfg.LSP.Verify

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return w.run(ctx)
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "compare every incremental parse against a full parse")

	return cmd
}
