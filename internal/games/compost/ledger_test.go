package compost

import (
	"testing"

	"github.com/vovakirdan/compost-catch/internal/catalog"
)

func TestMistakeLedgerTop(t *testing.T) {
	cup := catalog.ItemTemplate{Label: "cup", Category: catalog.Incorrect, Reason: "plastic"}
	can := catalog.ItemTemplate{Label: "can", Category: catalog.Incorrect, Reason: "metal"}
	bag := catalog.ItemTemplate{Label: "bag", Category: catalog.Incorrect}

	l := NewMistakeLedger()
	for _, it := range []catalog.ItemTemplate{cup, can, bag, can, bag, can} {
		l.Record(it)
	}

	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	if l.Total() != 6 {
		t.Errorf("Total() = %d, want 6", l.Total())
	}

	want := []Mistake{
		{Label: "can", Reason: "metal", Count: 3},
		{Label: "bag", Count: 2},
		{Label: "cup", Reason: "plastic", Count: 1},
	}
	got := l.Top(0)
	if len(got) != len(want) {
		t.Fatalf("Top(0) returned %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Top(0)[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if top := l.Top(2); len(top) != 2 || top[1].Label != "bag" {
		t.Errorf("Top(2) = %+v", top)
	}
}

func TestMistakeLedgerTiesKeepFirstSeenOrder(t *testing.T) {
	l := NewMistakeLedger()
	labels := []string{"e", "d", "c", "b", "a"}
	for _, label := range labels {
		l.Record(catalog.ItemTemplate{Label: label})
	}

	for i, m := range l.Top(0) {
		if m.Label != labels[i] {
			t.Errorf("Top(0)[%d] = %q, want %q", i, m.Label, labels[i])
		}
	}
}

func TestMistakeLedgerCap(t *testing.T) {
	l := NewMistakeLedger()
	for _, label := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		l.Record(catalog.ItemTemplate{Label: label})
	}

	if got := len(l.Top(8)); got != 8 {
		t.Errorf("len(Top(8)) = %d, want 8", got)
	}

	l.Reset()
	if l.Len() != 0 || len(l.Top(8)) != 0 {
		t.Error("Reset() left records behind")
	}
}
