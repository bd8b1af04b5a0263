package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show network statistics from the node",
	Run:   runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) {
	app := newApp()
	defer func() {
		_ = app.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats := app.Client().GetNetworkStats(ctx)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintf(w, "Total transactions\t%s\n", humanize.Comma(int64(stats.TotalTransactions)))
	_, _ = fmt.Fprintf(w, "Epoch\t%s\n", orDash(stats.Epoch))
	_, _ = fmt.Fprintf(w, "Reference gas price\t%s MIST\n", orDash(formatCount(stats.ReferenceGasPrice)))
	_, _ = fmt.Fprintf(w, "Total stake\t%s\n", orDash(formatSUIOrEmpty(stats.TotalStake)))
	_, _ = fmt.Fprintf(w, "Active validators\t%d\n", stats.ActiveValidators)
	_ = w.Flush()
}

func formatSUIOrEmpty(mist string) string {
	if mist == "" {
		return ""
	}
	return formatSUI(mist)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
