package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/model"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/sizing"

	"github.com/spf13/cobra"
)

type sizeFlags struct {
	dailyKwh   float64
	unit       string
	bill       float64
	rate       float64
	days       int
	region     string
	dod        float64
	efficiency float64
	reserve    float64
	winter     bool
	noWinter   bool
	winterPct  float64
	autonomy   float64
	asJSON     bool
	csvPath    string
}

func newSizeCmd() *cobra.Command {
	var f sizeFlags
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Recommend usable and nameplate battery capacity",
		Example: "  cli size --daily-kwh 10 --region GB\n" +
			"  cli size --bill 120 --rate 0.30 --days 30 --autonomy 2 --csv results/breakdown.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := buildSizeRequest(cmd, f)
			resolver, err := loadResolver()
			if err != nil {
				return err
			}
			oc, err := sizing.New(resolver).Calculate(req)
			if err != nil {
				return err
			}
			logger.Debug().Str("region", oc.Region).Bool("preset_matched", oc.PresetMatched).Str("load_source", string(oc.LoadSource)).Msg("sized")

			rows := sizing.Breakdown(oc)
			if f.csvPath != "" {
				if err := sizing.WriteBreakdownCSV(f.csvPath, rows); err != nil {
					return err
				}
				logger.Info().Str("path", f.csvPath).Int("rows", len(rows)).Msg("wrote breakdown")
			}
			if f.asJSON {
				return writeJSON(cmd.OutOrStdout(), oc)
			}
			printOutcome(cmd.OutOrStdout(), oc, rows)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&f.dailyKwh, "daily-kwh", 0, "Average daily usage (takes precedence over the bill)")
	fl.StringVar(&f.unit, "unit", "kWh", "Unit of --daily-kwh: Wh, kWh or MWh")
	fl.Float64Var(&f.bill, "bill", 0, "Bill amount")
	fl.Float64Var(&f.rate, "rate", 0, "Price per kWh, same currency as --bill")
	fl.IntVar(&f.days, "days", 30, "Billing period in days")
	fl.StringVar(&f.region, "region", "", "Region code, e.g. US, GB, AU (unknown uses the global default)")
	fl.Float64Var(&f.dod, "dod", 0, "Depth of discharge override, (0,1]")
	fl.Float64Var(&f.efficiency, "efficiency", 0, "Inverter efficiency override, (0,1]")
	fl.Float64Var(&f.reserve, "reserve", 0, "Reserve buffer override, e.g. 0.2")
	fl.BoolVar(&f.winter, "winter", false, "Enable the winter buffer")
	fl.BoolVar(&f.noWinter, "no-winter", false, "Disable the winter buffer")
	fl.Float64Var(&f.winterPct, "winter-pct", 0, "Winter buffer override, e.g. 0.3")
	fl.Float64Var(&f.autonomy, "autonomy", 0, "Days of autonomy override")
	fl.BoolVar(&f.asJSON, "json", false, "Print the outcome as JSON")
	fl.StringVar(&f.csvPath, "csv", "", "Also write the step breakdown to this CSV path")
	cmd.MarkFlagsMutuallyExclusive("winter", "no-winter")
	return cmd
}

// buildSizeRequest maps only the flags the user set, so unset overrides keep
// the regional preset.
func buildSizeRequest(cmd *cobra.Command, f sizeFlags) sizing.Request {
	fl := cmd.Flags()
	req := sizing.Request{Region: f.region, DailyUnit: f.unit}
	if fl.Changed("daily-kwh") {
		v := f.dailyKwh
		req.DailyKwh = &v
	}
	if fl.Changed("bill") || fl.Changed("rate") {
		req.Bill = &model.BillInput{BillAmount: f.bill, RatePerKwh: f.rate, BillingPeriodDays: f.days}
	}

	o := &req.Overrides
	setFloat := func(name string, v float64, dst **float64) {
		if fl.Changed(name) {
			*dst = &v
		}
	}
	setFloat("dod", f.dod, &o.DepthOfDischarge)
	setFloat("efficiency", f.efficiency, &o.InverterEfficiency)
	setFloat("reserve", f.reserve, &o.ReserveBufferPct)
	setFloat("winter-pct", f.winterPct, &o.WinterBufferPct)
	setFloat("autonomy", f.autonomy, &o.AutonomyDays)
	switch {
	case fl.Changed("no-winter"):
		w := !f.noWinter
		o.WinterBufferEnabled = &w
	case fl.Changed("winter"):
		w := f.winter
		o.WinterBufferEnabled = &w
	}
	return req
}

func printOutcome(w io.Writer, oc *sizing.Outcome, rows []sizing.BreakdownRow) {
	r := oc.Result
	a := oc.Assumptions
	region := oc.Region
	if !oc.PresetMatched {
		region += " (no regional preset matched)"
	}
	fmt.Fprintf(w, "Region:            %s\n", region)
	fmt.Fprintf(w, "Daily load:        %.2f kWh (%s)\n", model.Round(oc.DailyLoadKwh, 2), oc.LoadSource)
	fmt.Fprintf(w, "Assumptions:       DoD=%.2f inverter=%.2f reserve=%.2f winter=%t/%.2f autonomy=%g\n",
		a.DepthOfDischarge, a.InverterEfficiency, a.ReserveBufferPct, a.WinterBufferEnabled, a.WinterBufferPct, a.AutonomyDays)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-4s %-22s %-3s %-10s %-12s\n", "#", "step", "op", "factor", "kWh")
	for _, row := range rows {
		fmt.Fprintf(w, "%-4d %-22s %-3s %-10.4f %-12.2f\n", row.Index, row.Step, row.Operator, row.Factor, model.Round(row.Kwh, 2))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Usable capacity:   %.2f kWh\n", model.Round(r.UsableCapacityKwh, 2))
	fmt.Fprintf(w, "Nameplate capacity: %.2f kWh\n", model.Round(r.NameplateCapacityKwh, 2))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newEstimateLoadCmd() *cobra.Command {
	var bill model.BillInput
	cmd := &cobra.Command{
		Use:   "estimate-load",
		Short: "Estimate average daily kWh from a utility bill",
		RunE: func(cmd *cobra.Command, args []string) error {
			kwh, ok := bill.DailyKwh()
			if !ok {
				return fmt.Errorf("%w: --bill, --rate and --days must all be positive", model.ErrInsufficientInput)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Daily load:   %.2f kWh\n", model.Round(kwh, 2))
			fmt.Fprintf(cmd.OutOrStdout(), "Monthly load: %.2f kWh (30 days)\n", model.Round(kwh*30, 2))
			return nil
		},
	}
	cmd.Flags().Float64Var(&bill.BillAmount, "bill", 0, "Bill amount")
	cmd.Flags().Float64Var(&bill.RatePerKwh, "rate", 0, "Price per kWh, same currency as --bill")
	cmd.Flags().IntVar(&bill.BillingPeriodDays, "days", 30, "Billing period in days")
	return cmd
}
