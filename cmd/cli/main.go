package main

import (
	"os"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/presets"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logger      = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	presetsFile string
	verbose     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cli",
		Short:        "Estimate home battery capacity from daily usage or a utility bill",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = logger.Level(level)
		},
	}
	root.PersistentFlags().StringVar(&presetsFile, "presets", os.Getenv("PRESETS_FILE"), "Optional YAML catalog overlaying the builtin presets")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")

	root.AddCommand(newSizeCmd(), newEstimateLoadCmd(), newPresetsCmd())
	return root
}

func loadResolver() (*presets.Resolver, error) {
	r, err := presets.Load(presetsFile)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("presets_file", presetsFile).Int("presets", len(r.List())).Msg("presets loaded")
	return r, nil
}
