// file: internal/resultsfile/resultsfile_test.go
// version: 1.1.0
// guid: dd62e9d7-636f-4b25-8df2-eeaef6de87da

package resultsfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdfalk/rankcheck/internal/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json list", "results.json", `[{"position":1,"title":"Best Boutique","snippet":"Fashion","url":"https://example.com","kind":"featured_snippet"},{"position":3,"title":"Guide"}]`},
		{"json envelope", "results.json", `{"query":"boutique","results":[{"position":1,"title":"Best Boutique","snippet":"Fashion","url":"https://example.com","kind":"featured_snippet"},{"position":3,"title":"Guide"}]}`},
		{"yaml list", "results.yaml", `
- position: 1
  title: Best Boutique
  snippet: Fashion
  url: https://example.com
  kind: featured_snippet
- position: 3
  title: Guide
`},
		{"yml envelope", "results.yml", `
results:
  - position: 1
    title: Best Boutique
    snippet: Fashion
    url: https://example.com
    kind: featured_snippet
  - position: 3
    title: Guide
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			require.Len(t, results, 2)
			assert.Equal(t, models.SearchResult{
				Position: 1, Title: "Best Boutique", Snippet: "Fashion",
				URL: "https://example.com", Kind: models.KindFeaturedSnippet,
			}, results[0])
			assert.Equal(t, 3, results[1].Position)
			assert.Equal(t, models.ResultKind(""), results[1].Kind)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"empty file", "r.json", "  \n", ErrNoResults},
		{"empty list", "r.json", "[]", ErrNoResults},
		{"empty envelope", "r.yaml", "results: []", ErrNoResults},
		{"zero position", "r.json", `[{"position":0,"title":"x"}]`, ErrInvalidPosition},
		{"negative position", "r.yaml", "- position: -1\n  title: x\n", ErrInvalidPosition},
		{"unsupported", "r.csv", "position,title\n1,x\n", ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_JSONEscapes(t *testing.T) {
	results, err := Parse([]byte(`[{"position":1,"title":"a","url":"https:\/\/x.com\/p"}]`))
	require.NoError(t, err)
	assert.Equal(t, "https://x.com/p", results[0].URL)

	results, err = Parse([]byte(`{"results":[{"position":2,"title":"\ud83d\ude00 x"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600 x", results[0].Title)

	results, err = Parse([]byte("\xEF\xBB\xBF" + `[{"position":4,"title":"bom"}]`))
	require.NoError(t, err)
	assert.Equal(t, 4, results[0].Position)
}

func TestParse_FlowYAML(t *testing.T) {
	results, err := Parse([]byte(`[{position: 1, title: Best Boutique}, {position: 2, title: Guide}]`))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Guide", results[1].Title)

	results, err = Parse([]byte(`{results: [{position: 5, title: x}]}`))
	require.NoError(t, err)
	assert.Equal(t, 5, results[0].Position)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeFile(t, "r.json", `[{"position": "first"}]`))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "r.yaml", "just a string"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadKeywords(t *testing.T) {
	path := writeFile(t, "keywords.txt", "# seo targets\nbest boutique in ahmedabad\n\n  bridal wear  \n#boutique\nethnic wear\n")

	keywords, err := LoadKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"best boutique in ahmedabad", "bridal wear", "ethnic wear"}, keywords)

	_, err = LoadKeywords(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(a, []byte(`[{"position":1,"title":"x"}]`), 0o644))
	require.NoError(t, os.WriteFile(b, []byte(`[{"position":1,"title":"x"}]`), 0o644))

	da, err := Digest(a)
	require.NoError(t, err)
	db, err := Digest(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
	assert.Len(t, da, 64)

	require.NoError(t, os.WriteFile(b, []byte(`[{"position":2,"title":"x"}]`), 0o644))
	db, err = Digest(b)
	require.NoError(t, err)
	assert.NotEqual(t, da, db)

	_, err = Digest(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
