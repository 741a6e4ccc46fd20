// file: internal/textnorm/normalize.go
// version: 1.0.0
// guid: 5c8da10d-7eaf-4dd1-aa2a-349d47f6c4b7

// Package textnorm canonicalizes result text and keywords into a comparable
// form and splits it into significant words.
package textnorm

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jdfalk/rankcheck/internal/models"
)

var (
	htmlTagRe = regexp.MustCompile(`<[^>]*>`)

	// Anything that is not a letter, mark, digit, underscore or hyphen.
	nonWordRe = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\-]+`)
	// Same as nonWordRe but keeps @ # $ % & +.
	nonWordSpecialRe = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\-@#$%&+]+`)

	urlSeparatorRe = regexp.MustCompile(`[/.\-_?=&+:~]+`)

	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	)

	punctuationReplacer = strings.NewReplacer(
		"\u2018", "'", "\u2019", "'", "\u201a", "'", "\u201b", "'",
		"\u201c", `"`, "\u201d", `"`, "\u201e", `"`,
		"\u2010", "-", "\u2011", "-", "\u2012", "-", "\u2013", "-",
		"\u2014", "-", "\u2015", "-", "\u2212", "-",
		"\u00a0", " ",
	)
)

// Normalize canonicalizes text for matching. It never fails and returns ""
// for empty input; Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string, opts models.MatchingOptions) string {
	if text == "" {
		return ""
	}

	s := htmlTagRe.ReplaceAllString(text, " ")
	s = entityReplacer.Replace(s)
	if !opts.CaseSensitive {
		s = strings.ToLower(s)
	}
	s = foldAccents(s)
	s = punctuationReplacer.Replace(s)

	if opts.PreserveSpecialChars {
		s = nonWordSpecialRe.ReplaceAllString(s, " ")
	} else {
		s = nonWordRe.ReplaceAllString(s, " ")
	}
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeURL reduces a URL to its host and path words before normalizing,
// so "https://www.shop.com/best-boutique" reads as "shop com best boutique".
func NormalizeURL(raw string, opts models.MatchingOptions) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Host == "" && u.Path == "") {
		return Normalize(urlSeparatorRe.ReplaceAllString(raw, " "), opts)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	path := u.Path
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return Normalize(urlSeparatorRe.ReplaceAllString(host+" "+path, " "), opts)
}

// foldAccents maps accented Latin letters to their base letter (é -> e).
// A transformer is built per call because chains carry state.
func foldAccents(s string) string {
	if isASCII(s) {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
