package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vietddude/suiscope/internal/search"
	"github.com/vietddude/suiscope/internal/search/classifier"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [input...]",
	Short: "Show how inputs are classified, without contacting the node",
	Args: func(cmd *cobra.Command, args []string) error {
		if showRules {
			return nil
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	Run: runClassify,
}

var showRules bool

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Show autocomplete suggestions for a partial query",
	Args:  cobra.ExactArgs(1),
	Run:   runSuggest,
}

func init() {
	classifyCmd.Flags().BoolVar(&showRules, "rules", false, "print the classification rules in precedence order")
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(suggestCmd)
}

func runClassify(cmd *cobra.Command, args []string) {
	if showRules {
		writeRules(os.Stdout, classifier.Rules())
		if len(args) == 0 {
			return
		}
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, "INPUT\tKIND\tCONFIDENCE\tRULE")

	for _, input := range args {
		result, rule := classifier.ClassifyWithRule(input)
		if rule == "" {
			rule = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", strings.TrimSpace(input), result.Kind, result.Confidence, rule)
	}
	_ = w.Flush()
}

func writeRules(out io.Writer, rules []classifier.Rule) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tRULE\tKIND\tCONFIDENCE")
	for i, r := range rules {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\n", i+1, r.Name, r.Kind, r.Confidence)
	}
	_ = w.Flush()
}

func runSuggest(cmd *cobra.Command, args []string) {
	suggestions := search.Suggest(args[0])
	if len(suggestions) == 0 {
		fmt.Println("No suggestions")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	for _, s := range suggestions {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", s.Label, s.Text)
	}
	_ = w.Flush()
}
