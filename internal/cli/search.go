package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vietddude/suiscope/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Resolve a digest, address or object id against the node",
	Args:  cobra.MinimumNArgs(1),
	Run:   runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print the raw result envelope")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	app := newApp()
	defer func() {
		_ = app.Close()
	}()

	query := strings.Join(args, " ")
	envelope, err := app.Orchestrator().Search(context.Background(), query)
	if err != nil {
		slog.Error("Search failed", "error", err)
		os.Exit(1)
	}

	if searchJSON {
		if err := printJSON(os.Stdout, envelope); err != nil {
			slog.Error("Failed to write result", "error", err)
			os.Exit(1)
		}
		return
	}
	writeEnvelope(os.Stdout, envelope)
}

func writeEnvelope(out io.Writer, envelope domain.SearchResultEnvelope) {
	if envelope.TotalCount == 0 {
		_, _ = fmt.Fprintf(out, "No results for %q\n", envelope.Query)
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	for _, entry := range envelope.Entries {
		switch p := entry.Payload.(type) {
		case *domain.TransactionBlock:
			status := "failure"
			if p.Succeeded() {
				status = "success"
			}
			_, _ = fmt.Fprintf(w, "TRANSACTION\t%s\n", p.Digest)
			_, _ = fmt.Fprintf(w, "  sender\t%s\n", p.Sender())
			_, _ = fmt.Fprintf(w, "  status\t%s\n", status)
			_, _ = fmt.Fprintf(w, "  checkpoint\t%s\n", formatCount(p.Checkpoint))
		case *domain.AddressView:
			_, _ = fmt.Fprintf(w, "ADDRESS\t%s\n", p.Address)
			_, _ = fmt.Fprintf(w, "  balance\t%s\n", formatSUI(p.Balance.TotalBalance))
			_, _ = fmt.Fprintf(w, "  coin objects\t%d\n", p.Balance.CoinObjectCount)
			_, _ = fmt.Fprintf(w, "  recent transactions\t%d\n", len(p.Transactions.Data))
			for _, tx := range p.Transactions.Data {
				_, _ = fmt.Fprintf(w, "    \t%s\n", tx.Digest)
			}
			_, _ = fmt.Fprintf(w, "  owned objects\t%d\n", len(p.Objects.Data))
		case *domain.ObjectResponse:
			_, _ = fmt.Fprintf(w, "OBJECT\t%s\n", p.Data.ObjectID)
			_, _ = fmt.Fprintf(w, "  type\t%s\n", p.Data.Type)
			_, _ = fmt.Fprintf(w, "  version\t%s\n", p.Data.Version)
			_, _ = fmt.Fprintf(w, "  previous transaction\t%s\n", p.Data.PreviousTransaction)
		}
	}
	_ = w.Flush()
}
