// file: cmd/find.go
// version: 1.0.0
// guid: 0e82f181-8323-4359-8541-66b4ef830ecb

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	resultsPath string
	jsonOutput  bool
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <keyword>",
	Short: "Find the ranking of a keyword",
	Long:  `Find the position of a keyword in the results file with full match details.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFind(cmd.OutOrStdout(), args[0], resultsPath, jsonOutput)
	},
}

// quickCmd represents the quick command
var quickCmd = &cobra.Command{
	Use:   "quick <keyword>",
	Short: "Print only the position of a keyword",
	Long:  `Print the primary position of a keyword, or 0 when it is not found.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuick(cmd.OutOrStdout(), args[0], resultsPath)
	},
}

func init() {
	for _, c := range []*cobra.Command{findCmd, quickCmd} {
		c.Flags().StringVarP(&resultsPath, "results", "r", "", "results file (.json, .yaml or .yml)")
		_ = c.MarkFlagRequired("results")
	}
	findCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the verdict as JSON")
}

func runFind(w io.Writer, keyword, path string, asJSON bool) error {
	results, err := loadResults(path)
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}

	r := engine.FindRanking(keyword, results)
	if asJSON {
		return printJSON(w, r)
	}
	printRanking(w, keyword, r)
	return nil
}

func runQuick(w io.Writer, keyword, path string) error {
	results, err := loadResults(path)
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}

	pos, confidence, ok := engine.QuickPosition(keyword, results)
	if !ok {
		fmt.Fprintln(w, 0)
		return nil
	}
	fmt.Fprintf(w, "%d\t%s\n", pos, formatConfidence(confidence))
	return nil
}
