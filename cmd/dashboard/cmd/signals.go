package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/market"
	"github.com/wilsonfong56/ETF-Dashboard/internal/infra/mboum"
	"github.com/wilsonfong56/ETF-Dashboard/internal/service/signals"
)

// signalsCmd computes the cross-asset regime snapshot
var signalsCmd = &cobra.Command{
	Use:   "signals",
	Short: "Compute the cross-asset regime snapshot",
	RunE:  runSignals,
}

func runSignals(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	engine := signals.NewEngine(mboum.NewClient(cfg.Mboum), market.DefaultBasket(), cfg.Cache.ChartTTL, cfg.Cache.SignalTTL, nil)

	snap, err := engine.Snapshot(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nREGIME: %s  (generated %s)\n", snap.Label, snap.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Risk-on breadth %.1f%%  Risk-off breadth %.1f%%\n", snap.RiskOn.Breadth, snap.RiskOff.Breadth)
	fmt.Printf("Accumulation %d  Distribution %d\n", snap.AccumCount, snap.DistribCount)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nTICKER\tCLASS\tPRICE\t1MO RET\tMOMENTUM\tREL STR\tFLOW")
	for _, r := range snap.Results {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%+.1f%%\t%.1f\t%.1f\t%s\n",
			r.Ticker, r.Class, r.Price, r.MonthReturn, r.Momentum, r.RelativeStrength, r.Flow)
	}
	w.Flush()
	return nil
}
