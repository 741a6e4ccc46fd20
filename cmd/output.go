// file: cmd/output.go
// version: 1.0.0
// guid: 2c23e8fe-5cf2-4da7-9ade-cc52aa6c0be0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/jdfalk/rankcheck/internal/models"
)

func printTable(writer io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(writer)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(rows)
	table.Render()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatConfidence(c float64) string {
	return strconv.FormatFloat(c, 'f', 1, 64)
}

func formatPositions(positions []int) string {
	if len(positions) == 0 {
		return "-"
	}
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

// printRanking writes a human readable verdict for one keyword.
func printRanking(w io.Writer, keyword string, r models.RankingResult) {
	if !r.Found {
		fmt.Fprintf(w, "%q not found in %d results\n", keyword, r.SearchedCount)
		return
	}

	fmt.Fprintf(w, "%q ranks at position %d (%s match in %s, confidence %s)\n",
		keyword, r.Position, r.MatchKind, r.MatchedField, formatConfidence(r.Confidence))
	if r.MatchedText != "" {
		fmt.Fprintf(w, "matched text: %s\n", r.MatchedText)
	}
	if len(r.Occurrences) == 0 {
		return
	}

	rows := make([][]string, 0, len(r.Occurrences))
	for _, o := range r.Occurrences {
		near := ""
		if o.Near {
			near = "near"
		}
		rows = append(rows, []string{strconv.Itoa(o.Position), string(o.Field), string(o.MatchKind), formatConfidence(o.Confidence), near})
	}
	fmt.Fprintln(w)
	printTable(w, []string{"position", "field", "kind", "confidence", "note"}, rows)
}

// printBatch writes one row per keyword in the given order.
func printBatch(w io.Writer, keywords []string, results map[string]models.RankingResult) {
	rows := make([][]string, 0, len(keywords))
	for _, kw := range keywords {
		r := results[kw]
		row := []string{kw, "-", "-", "-", formatPositions(r.AllPositions)}
		if r.Found {
			row[1] = strconv.Itoa(r.Position)
			row[2] = string(r.MatchKind)
			row[3] = formatConfidence(r.Confidence)
		}
		rows = append(rows, row)
	}
	printTable(w, []string{"keyword", "position", "kind", "confidence", "all positions"}, rows)
}
