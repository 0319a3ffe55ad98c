package compost

import (
	"sort"

	"github.com/vovakirdan/compost-catch/internal/catalog"
)

// Mistake aggregates wrong catches of a single item.
type Mistake struct {
	Label  string
	Reason string
	Count  int
}

// MistakeLedger records wrongly caught items for the end-of-round summary.
type MistakeLedger struct {
	entries []Mistake      // First-seen order
	index   map[string]int // Label -> position in entries
}

// NewMistakeLedger creates an empty ledger.
func NewMistakeLedger() *MistakeLedger {
	return &MistakeLedger{index: make(map[string]int)}
}

// Record counts a wrong catch of the template.
func (l *MistakeLedger) Record(t catalog.ItemTemplate) {
	if i, ok := l.index[t.Label]; ok {
		l.entries[i].Count++
		return
	}
	l.index[t.Label] = len(l.entries)
	l.entries = append(l.entries, Mistake{Label: t.Label, Reason: t.Reason, Count: 1})
}

// Top returns up to n records by count, highest first. Ties keep the order
// in which the labels were first recorded. n <= 0 returns all records.
func (l *MistakeLedger) Top(n int) []Mistake {
	out := make([]Mistake, len(l.entries))
	copy(out, l.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Len returns the number of distinct labels recorded.
func (l *MistakeLedger) Len() int {
	return len(l.entries)
}

// Total returns the number of wrong catches recorded.
func (l *MistakeLedger) Total() int {
	total := 0
	for _, m := range l.entries {
		total += m.Count
	}
	return total
}

// Reset empties the ledger.
func (l *MistakeLedger) Reset() {
	l.entries = l.entries[:0]
	clear(l.index)
}
