package main

import (
	"fmt"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/presets"

	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Inspect regional sizing presets",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List regional presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadResolver()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-7s %-22s %-6s %-9s %-8s %-12s %-8s\n", "code", "name", "dod", "inverter", "reserve", "winter", "autonomy")
			for _, p := range r.List() {
				a := p.Assumptions
				winter := "off"
				if a.WinterBufferEnabled {
					winter = fmt.Sprintf("%.2f", a.WinterBufferPct)
				}
				fmt.Fprintf(w, "%-7s %-22s %-6.2f %-9.2f %-8.2f %-12s %-8g\n",
					p.Code, p.Name, a.DepthOfDischarge, a.InverterEfficiency, a.ReserveBufferPct, winter, a.AutonomyDays)
			}
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show CODE",
		Short: "Show the assumptions a region code resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadResolver()
			if err != nil {
				return err
			}
			p, matched := r.Lookup(args[0])
			if !matched {
				logger.Warn().Str("code", args[0]).Msg("no regional preset, showing global default")
			}
			return writeJSON(cmd.OutOrStdout(), p)
		},
	}

	var out string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the effective preset catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadResolver()
			if err != nil {
				return err
			}
			c := &presets.Catalog{Presets: r.List()}
			if err := presets.SaveCatalogFile(c, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d presets to %s\n", len(c.Presets), out)
			return nil
		},
	}
	export.Flags().StringVar(&out, "out", "presets.yaml", "Output YAML path")

	cmd.AddCommand(list, show, export)
	return cmd
}
