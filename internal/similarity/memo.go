// file: internal/similarity/memo.go
// version: 1.0.0
// guid: 7132fa19-c460-42a6-8145-631f3908d89c

package similarity

type pair struct{ a, b string }

// Memo caches Levenshtein similarities for the lifetime of one ranking call.
// It is not safe for concurrent use and must not outlive the call. A nil
// Memo computes every value directly.
type Memo struct {
	levenshtein map[pair]float64
}

// NewMemo returns an empty call-scoped memo.
func NewMemo() *Memo {
	return &Memo{levenshtein: make(map[pair]float64)}
}

// Levenshtein returns the memoized Levenshtein similarity of a and b.
func (m *Memo) Levenshtein(a, b string) float64 {
	if m == nil {
		return Levenshtein(a, b)
	}
	// similarity is symmetric
	if b < a {
		a, b = b, a
	}
	key := pair{a, b}
	if v, ok := m.levenshtein[key]; ok {
		return v
	}
	v := Levenshtein(a, b)
	m.levenshtein[key] = v
	return v
}

// Len reports how many pairs are cached.
func (m *Memo) Len() int {
	if m == nil {
		return 0
	}
	return len(m.levenshtein)
}
