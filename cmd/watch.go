// file: cmd/watch.go
// version: 1.0.0
// guid: 47dd8420-bab4-41db-90dc-27ed27fa57cd

package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdfalk/rankcheck/internal/models"
	"github.com/jdfalk/rankcheck/internal/resultsfile"
	"github.com/jdfalk/rankcheck/internal/watcher"
)

var (
	watchResultsPath string
	watchDebounce    time.Duration
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <keyword>...",
	Short: "Re-rank keywords whenever the results file changes",
	Long: `Rank the keywords once, then again every time the results file is
written or replaced, until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runWatch(ctx, cmd.OutOrStdout(), args, watchResultsPath, watchDebounce)
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchResultsPath, "results", "r", "", "results file (.json, .yaml or .yml)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "wait this long after the last change before re-ranking")
	_ = watchCmd.MarkFlagRequired("results")
}

func runWatch(ctx context.Context, w io.Writer, keywords []string, path string, debounce time.Duration) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	var mu sync.Mutex
	rank := func(results []models.SearchResult) {
		verdicts := engine.FindMultiple(keywords, results)
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(w, "[%s] %d results\n", time.Now().Format(time.TimeOnly), len(results))
		printBatch(w, keywords, verdicts)
		fmt.Fprintln(w)
	}

	results, err := loadResults(path)
	if err != nil {
		return err
	}
	lastDigest, _ := resultsfile.Digest(path)
	rank(results)

	var reloadMu sync.Mutex
	fw := watcher.New(func(p string) {
		reloadMu.Lock()
		defer reloadMu.Unlock()

		digest, err := resultsfile.Digest(p)
		if err == nil && digest == lastDigest {
			return
		}
		results, err := loadResults(p)
		if err != nil {
			// keep watching, the next write may fix the file
			log.Printf("[WARN] %v", err)
			return
		}
		lastDigest = digest
		rank(results)
	}, debounce)
	if err := fw.Start(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	defer fw.Stop()

	log.Printf("[INFO] Watching %s", fw.Path())
	<-ctx.Done()
	return nil
}
