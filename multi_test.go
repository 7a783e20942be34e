package jsonlabel

import (
	"errors"
	"testing"

	"github.com/coregx/jsonlabel/input"
	"github.com/coregx/jsonlabel/query"
)

func TestMultiFinderFindAny(t *testing.T) {
	doc := `{"beta":1,"alpha":{"gamma":2},"alpha":3}`
	in := input.NewBytesInput([]byte(doc))

	finder, err := NewMultiFinder(in,
		query.NewLabel("alpha"),
		query.NewLabel("beta"),
		query.NewLabel("gamma"),
	)
	if err != nil {
		t.Fatalf("NewMultiFinder: %v", err)
	}

	tests := []struct {
		name      string
		from      int
		wantPos   int
		wantLabel int
	}{
		{"earliest_is_beta", 0, 1, 1},
		{"then_alpha", 2, 10, 0},
		{"then_gamma", 11, 19, 2},
		{"second_alpha", 20, 30, 0},
		{"exhausted", 31, -1, -1},
		{"negative_from_clamps", -3, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, labelIdx := finder.FindAny(tt.from)
			if pos != tt.wantPos || labelIdx != tt.wantLabel {
				t.Errorf("FindAny(%d) = (%d, %d), want (%d, %d)",
					tt.from, pos, labelIdx, tt.wantPos, tt.wantLabel)
			}
		})
	}
}

func TestMultiFinderSkipsInvalidHits(t *testing.T) {
	// The first automaton hit for "key" is escaped and must be rejected by
	// member validation; the later real key must still be reported.
	doc := `{"v":"ab\"key","key":2}`
	in := input.NewBytesInput([]byte(doc))

	finder, err := NewMultiFinder(in, query.NewLabel("key"))
	if err != nil {
		t.Fatal(err)
	}

	pos, labelIdx := finder.FindAny(0)
	if pos != 15 || labelIdx != 0 {
		t.Errorf("FindAny = (%d, %d), want (15, 0)", pos, labelIdx)
	}
}

func TestMultiFinderSharedQuotePrefix(t *testing.T) {
	// "key" and "keys" open at the same quote; the hit for the shorter
	// pattern must not shadow the longer key actually present.
	doc := `{"keys":1}`
	in := input.NewBytesInput([]byte(doc))

	finder, err := NewMultiFinder(in, query.NewLabel("key"), query.NewLabel("keys"))
	if err != nil {
		t.Fatal(err)
	}

	pos, labelIdx := finder.FindAny(0)
	if pos != 1 || labelIdx != 1 {
		t.Errorf("FindAny = (%d, %d), want (1, 1)", pos, labelIdx)
	}
}

func TestNewMultiFinderNoLabels(t *testing.T) {
	in := input.NewBytesInput(nil)
	if _, err := NewMultiFinder(in); !errors.Is(err, ErrNoLabels) {
		t.Errorf("err = %v, want ErrNoLabels", err)
	}
}
