package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/reparse/config"
)

// app carries what every command shares: the loaded configuration.
type app struct {
	cfg *config.Config
}

func main() {
	a := &app{cfg: config.Default()}
	var configPath string
	var verbosity int

	rootCmd := &cobra.Command{
		Use:          "reparse",
		Short:        "Incremental parsing of Java sources",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = config.Discover(".")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			if cmd.Flags().Changed("verbose") {
				cfg.Log.Verbosity = verbosity
			}
			commonlog.Initialize(cfg.Log.Verbosity, cfg.Log.File)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default: nearest "+config.FileName+")")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
