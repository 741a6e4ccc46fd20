// file: cmd/batch.go
// version: 1.0.0
// guid: 4ba4247c-8ad3-4d07-9ae4-e125f2208034

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jdfalk/rankcheck/internal/models"
	"github.com/jdfalk/rankcheck/internal/resultsfile"
)

var (
	batchResultsPath string
	keywordsFile     string
	batchKeywords    []string
	batchJSON        bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rank many keywords against the same results",
	Long: `Rank every keyword from --keywords-file and --keyword against one results
file and print a summary table. Duplicate keywords are ranked once.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keywords, err := collectKeywords(keywordsFile, batchKeywords)
		if err != nil {
			return err
		}
		return runBatch(cmd.OutOrStdout(), cmd.ErrOrStderr(), keywords, batchResultsPath, batchJSON)
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchResultsPath, "results", "r", "", "results file (.json, .yaml or .yml)")
	batchCmd.Flags().StringVarP(&keywordsFile, "keywords-file", "f", "", "file with one keyword per line")
	batchCmd.Flags().StringSliceVarP(&batchKeywords, "keyword", "k", nil, "keyword to rank (repeatable)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "print the verdicts as JSON")
	_ = batchCmd.MarkFlagRequired("results")
}

// collectKeywords merges the keywords file with flag keywords, dropping
// blanks and duplicates while keeping first-seen order.
func collectKeywords(path string, extra []string) ([]string, error) {
	var all []string
	if path != "" {
		fromFile, err := resultsfile.LoadKeywords(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load keywords: %w", err)
		}
		all = append(all, fromFile...)
	}
	all = append(all, extra...)

	seen := make(map[string]struct{}, len(all))
	keywords := make([]string, 0, len(all))
	for _, kw := range all {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("no keywords given: use --keywords-file or --keyword")
	}
	return keywords, nil
}

func runBatch(out, progress io.Writer, keywords []string, path string, asJSON bool) error {
	results, err := loadResults(path)
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(keywords),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("ranking keywords"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	verdicts := make(map[string]models.RankingResult, len(keywords))
	found := 0
	for _, kw := range keywords {
		r := engine.FindRanking(kw, results)
		verdicts[kw] = r
		if r.Found {
			found++
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if asJSON {
		return printJSON(out, verdicts)
	}
	printBatch(out, keywords, verdicts)
	fmt.Fprintf(out, "\n%d of %d keywords found in %d results\n", found, len(keywords), len(results))
	return nil
}
