package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/reparse/java/incremental"
)

var checkLog = commonlog.GetLogger("reparse.check")

func newCheckCmd(a *app) *cobra.Command {
	var edits, maxInsert, maxDelete int
	var seed uint64
	var include []string

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Compare incremental and full parses under random edits",
		Long: `Applies a series of random edits to every file under dir matched by the
include patterns, reparsing incrementally after each edit and comparing the
result with a full parse of the same text. Fails on the first disagreement
in any file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			opts := a.cfg.Check
			if cmd.Flags().Changed("edits") {
				opts.Edits = edits
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}
			if cmd.Flags().Changed("max-insert") {
				opts.MaxInsert = maxInsert
			}
			if cmd.Flags().Changed("max-delete") {
				opts.MaxDelete = maxDelete
			}
			if cmd.Flags().Changed("include") {
				opts.Include = include
			}

			files, err := checkFiles(dir, opts.Include)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return errors.Newf("no files under %s match %v", dir, opts.Include)
			}

			out := cmd.OutOrStdout()
			pool := incremental.NewCursorPool()
			var total incremental.Stats
			failed := 0
			for i, file := range files {
				data, err := os.ReadFile(filepath.Join(dir, file))
				if err != nil {
					return errors.Wrap(err, "read java file")
				}

				rng := rand.New(rand.NewPCG(opts.Seed, uint64(i)))
				stats, err := checkText(file, string(data), opts, rng, pool)
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: %s\n", file, err)
					var failure *editFailure
					if errors.As(err, &failure) {
						checkLog.Debugf("%s: text before the failing edit:\n%s", file, failure.Before)
					}
					continue
				}
				checkLog.Infof("%s: %d edits ok", file, opts.Edits)

				addStats(&total, stats)
			}

			fmt.Fprintf(out, "checked %d files with %d edits each (seed %d): ", len(files), opts.Edits, opts.Seed)
			printStats(out, total)
			if failed > 0 {
				return errors.Newf("%d of %d files failed", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&edits, "edits", 0, "random edits per file (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default from config)")
	cmd.Flags().IntVar(&maxInsert, "max-insert", 0, "longest inserted text (default from config)")
	cmd.Flags().IntVar(&maxDelete, "max-delete", 0, "longest deleted text (default from config)")
	cmd.Flags().StringSliceVar(&include, "include", nil, "doublestar patterns selecting files (default from config)")

	return cmd
}
