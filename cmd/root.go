// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdfalk/rankcheck/internal/config"
	"github.com/jdfalk/rankcheck/internal/models"
	"github.com/jdfalk/rankcheck/internal/ranking"
	"github.com/jdfalk/rankcheck/internal/resultsfile"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rankcheck",
	Short: "Find where a keyword ranks in a list of search results",
	Long: `rankcheck locates the position at which a keyword appears in an ordered
list of search results, using exact, fuzzy and partial matching over titles,
snippets and URLs.

Results are read from a JSON or YAML file holding either a list of results or
an object with a "results" list.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

// flagBinding ties a persistent flag to its viper key.
type flagBinding struct {
	flag string
	key  string
}

var matchingFlags = []flagBinding{
	{"case-sensitive", "matching.case_sensitive"},
	{"fuzzy", "matching.fuzzy_enabled"},
	{"exact-phrase-only", "matching.exact_phrase_only"},
	{"preserve-special-chars", "matching.preserve_special_chars"},
	{"min-word-length", "matching.min_word_length"},
	{"threshold", "matching.fuzzy_threshold"},
	{"min-confidence", "matching.min_confidence"},
	{"snippets", "matching.include_snippets"},
	{"urls", "matching.include_urls"},
	{"all", "matching.find_all_occurrences"},
	{"near", "matching.include_near_matches"},
	{"log-level", "log_level"},
}

func init() {
	d := models.DefaultMatchingOptions()
	pf := rootCmd.PersistentFlags()

	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rankcheck.yaml)")
	pf.Bool("case-sensitive", d.CaseSensitive, "match case exactly")
	pf.Bool("fuzzy", d.FuzzyEnabled, "enable fuzzy matching")
	pf.Bool("exact-phrase-only", d.ExactPhraseOnly, "only accept the keyword as an exact phrase")
	pf.Bool("preserve-special-chars", d.PreserveSpecialChars, "keep punctuation when normalizing")
	pf.Int("min-word-length", d.MinWordLength, "ignore keyword words shorter than this")
	pf.Float64("threshold", d.FuzzyThreshold, "fuzzy similarity threshold (0-1)")
	pf.Float64("min-confidence", d.MinConfidence, "minimum confidence for a primary match (0-100)")
	pf.Bool("snippets", d.IncludeSnippets, "search result snippets")
	pf.Bool("urls", d.IncludeURLs, "search result URLs")
	pf.Bool("all", d.FindAllOccurrences, "report every position the keyword occurs at")
	pf.Bool("near", d.IncludeNearMatches, "include near matches when reporting all occurrences")
	pf.String("log-level", "info", "log level (info or debug)")

	for _, b := range matchingFlags {
		if err := viper.BindPFlag(b.key, pf.Lookup(b.flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", b.flag, err))
		}
	}

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(quickCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rankcheck")
	}

	if err := viper.ReadInConfig(); err == nil {
		log.Printf("[INFO] Using config file: %s", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	return config.InitConfig()
}

// newEngine builds an engine from the loaded configuration.
func newEngine() (*ranking.Engine, error) {
	return ranking.NewEngine(config.AppConfig.Matching)
}

// loadResults reads the results file named by --results.
func loadResults(path string) ([]models.SearchResult, error) {
	if path == "" {
		return nil, fmt.Errorf("--results is required")
	}
	results, err := resultsfile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}
	return results, nil
}
