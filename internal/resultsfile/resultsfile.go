// file: internal/resultsfile/resultsfile.go
// version: 1.1.0
// guid: cde02f07-7e8d-45c3-974a-5a0c87b96c81

// Package resultsfile reads scraper output and keyword lists from disk.
package resultsfile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jdfalk/rankcheck/internal/models"
)

var (
	// ErrUnsupportedFormat is returned for extensions other than .json, .yaml and .yml.
	ErrUnsupportedFormat = errors.New("unsupported results file format")
	// ErrNoResults is returned when a file holds no results.
	ErrNoResults = errors.New("results file contains no results")
	// ErrInvalidPosition is returned for a result whose position is below 1.
	ErrInvalidPosition = errors.New("invalid result position")
)

type envelope struct {
	Results []models.SearchResult `json:"results" yaml:"results"`
}

// Load reads search results from a JSON or YAML file. The file holds either
// a list of results or an object with a "results" list.
func Load(path string) ([]models.SearchResult, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}
	results, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return results, nil
}

// Parse decodes results from JSON or YAML bytes. Input opening with a bracket
// or brace goes through encoding/json; flow-style YAML that is not valid JSON
// falls back to the YAML decoder.
func Parse(data []byte) ([]models.SearchResult, error) {
	data = bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	if len(data) == 0 {
		return nil, ErrNoResults
	}

	var (
		results []models.SearchResult
		err     error
	)
	if data[0] == '[' || data[0] == '{' {
		results, err = parseJSON(data)
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			results, err = parseYAML(data)
		}
	} else {
		results, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, ErrNoResults
	}
	for i, r := range results {
		if r.Position < 1 {
			return nil, fmt.Errorf("%w: result %d has position %d", ErrInvalidPosition, i+1, r.Position)
		}
	}
	return results, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func parseJSON(data []byte) ([]models.SearchResult, error) {
	if data[0] == '[' {
		var results []models.SearchResult
		if err := json.Unmarshal(data, &results); err != nil {
			return nil, fmt.Errorf("failed to decode results: %w", err)
		}
		return results, nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	return env.Results, nil
}

func parseYAML(data []byte) ([]models.SearchResult, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse results: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrNoResults
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var results []models.SearchResult
		if err := root.Decode(&results); err != nil {
			return nil, fmt.Errorf("failed to decode results: %w", err)
		}
		return results, nil
	case yaml.MappingNode:
		var env envelope
		if err := root.Decode(&env); err != nil {
			return nil, fmt.Errorf("failed to decode results: %w", err)
		}
		return env.Results, nil
	default:
		return nil, fmt.Errorf("failed to decode results: expected a list or an object with results, got line %d", root.Line)
	}
}

// LoadKeywords reads one keyword per line. Blank lines and lines starting
// with # are skipped.
func LoadKeywords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keywords file: %w", err)
	}
	defer f.Close()

	var keywords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keywords file: %w", err)
	}
	return keywords, nil
}
