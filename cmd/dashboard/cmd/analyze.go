package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/ivhistory"
	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/option"
	"github.com/wilsonfong56/ETF-Dashboard/internal/infra/cboe"
	"github.com/wilsonfong56/ETF-Dashboard/internal/infra/database/memory"
	"github.com/wilsonfong56/ETF-Dashboard/internal/infra/database/postgres"
	"github.com/wilsonfong56/ETF-Dashboard/internal/service/analyzer"
	"github.com/wilsonfong56/ETF-Dashboard/internal/service/ivrank"
)

var (
	analyzeMinDTE     int
	analyzeLiquidOnly bool
)

// analyzeCmd analyzes the options chain for one ticker
var analyzeCmd = &cobra.Command{
	Use:   "analyze <ticker>",
	Short: "Analyze the options chain for a ticker",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeMinDTE, "min-dte", 0, "drop contracts expiring sooner than this many days")
	analyzeCmd.Flags().BoolVar(&analyzeLiquidOnly, "liquid-only", false, "restrict the cheapest table to liquid contracts")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ticker := strings.ToUpper(args[0])
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := analyzer.NewService(cboe.NewClient(cfg.CBOE), ivrank.NewService(ivRepository(ctx), nil), cfg.Cache.ChainTTL, nil)

	analysis, err := svc.Analyze(ctx, ticker, analyzer.Params{MinDTE: analyzeMinDTE})
	if err != nil {
		return err
	}

	printHeader(analysis)
	printSummary(analyzer.Summarize(analysis))
	printContracts("CHEAPEST VOL (iv vs iv30)", analyzer.Cheapest(analysis.Contracts, "", analyzeLiquidOnly))
	printContracts("MOST LIQUID", analyzer.MostLiquid(analysis.Contracts))
	printUnusual(analyzer.UnusualActivity(analysis.Contracts))
	return nil
}

// ivRepository connects to PostgreSQL, falling back to a process-local
// store so the CLI works without a database
func ivRepository(ctx context.Context) ivhistory.Repository {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Database unavailable, IV history will not persist")
		return memory.NewIVRepository()
	}
	repo := postgres.NewIVRepository(pool.Pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Warn().Err(err).Msg("Schema setup failed, IV history will not persist")
		return memory.NewIVRepository()
	}
	return repo
}

func printHeader(a *option.ChainAnalysis) {
	fmt.Printf("\n%s  $%.2f  IV30 %.2f%% (%+.2f)\n", a.Ticker, a.Price, a.IV30, a.IV30Change)
	if a.IVRank != nil && a.IVPercentile != nil {
		fmt.Printf("IV Rank %.1f  IV Percentile %.1f  (%d days of history)\n", *a.IVRank, *a.IVPercentile, a.HistoryDays)
	} else {
		fmt.Printf("IV Rank n/a  (%d days of history, need 2+)\n", a.HistoryDays)
	}
	fmt.Printf("Expirations: %d  Contracts: %d\n", len(a.Expirations), len(a.Contracts))
}

func printSummary(s option.ChainSummary) {
	fmt.Printf("\nAvg call IV %.1f%%  Avg put IV %.1f%%  Skew %+.1f  Assessment: %s\n", s.AvgCallIV, s.AvgPutIV, s.Skew, s.Assessment)
}

func printContracts(title string, contracts []option.AnalyzedContract) {
	fmt.Printf("\n== %s ==\n", title)
	if len(contracts) == 0 {
		fmt.Println("(none)")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tTYPE\tEXP\tDTE\tSTRIKE\tMID\tVOL\tOI\tIV\tIVvs30\tP(ITM)\tP(PROFIT)")
	for _, c := range contracts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%.2f\t%d\t%d\t%.1f\t%+.1f\t%.1f\t%.1f\n",
			c.Symbol, c.Type, c.Expiration.Format("2006-01-02"), c.DTE, c.Strike.String(),
			c.Mid, c.Volume, c.OpenInterest, c.IV, c.IVvsIV30, c.ProbITM, c.ProbProfit)
	}
	w.Flush()
}

func printUnusual(contracts []option.UnusualContract) {
	fmt.Printf("\n== UNUSUAL ACTIVITY (vol >= 3x OI) ==\n")
	if len(contracts) == 0 {
		fmt.Println("(none)")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tTYPE\tEXP\tSTRIKE\tVOL\tOI\tVOL/OI")
	for _, c := range contracts {
		ratio := fmt.Sprintf("%.1fx", c.VolOIRatio)
		if c.Unbounded {
			ratio = "new"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			c.Symbol, c.Type, c.Expiration.Format("2006-01-02"), c.Strike.String(),
			c.Volume, c.OpenInterest, ratio)
	}
	w.Flush()
}
