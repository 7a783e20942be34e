package memmem

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/coregx/jsonlabel/input"
	"github.com/coregx/jsonlabel/query"
)

var strategies = []struct {
	name  string
	build func(in input.Input, iter *input.BlockIterator) Finder
}{
	{"sequential", func(in input.Input, iter *input.BlockIterator) Finder { return NewSequential(in, iter) }},
	{"mask", func(in input.Input, iter *input.BlockIterator) Finder { return NewMask(in, iter) }},
}

// refFindLabel is the oracle: the smallest position at or after from whose
// span verifies as a member match.
func refFindLabel(in input.SliceInput, from int, label *query.Label) int {
	size := len(label.BytesWithQuotes())
	for i := from; i < len(in.Bytes()); i++ {
		if in.IsMemberMatch(i, i+size-1, label) {
			return i
		}
	}
	return -1
}

func TestFindLabel(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		label string
		want  int
	}{
		{"at_document_start", `{"key":1}`, "key", 1},
		{"second_member", `{"a":1,"key":2}`, "key", 7},
		{"absent", `{"a":1,"b":2}`, "key", -1},
		{"empty_document", ``, "key", -1},
		{"single_char_label", `{"a":1}`, "a", 1},
		{"substring_of_value_rejected", `{"a":"xkeyx","key":1}`, "key", 13},
		{"escaped_open_quote_rejected", `{"v":"ab\"key","key":2}`, "key", 15},
		{"embedded_in_longer_key_rejected", `{"keyring":1,"key":2}`, "key", 13},
		{"deep_in_second_block", `{"pad":"` + strings.Repeat("z", 90) + `","key":1}`, "key", 100},
		{"nothing_but_padding_after", `{"k`, "key", -1},
	}

	for _, strat := range strategies {
		for _, tt := range tests {
			t.Run(strat.name+"/"+tt.name, func(t *testing.T) {
				in := input.NewBytesInput([]byte(tt.doc))
				finder := strat.build(in, in.IterBlocks())

				pos, block, err := finder.FindLabel(nil, 0, query.NewLabel(tt.label))
				if err != nil {
					t.Fatalf("FindLabel: %v", err)
				}
				if pos != tt.want {
					t.Errorf("FindLabel = %d, want %d", pos, tt.want)
				}
				if pos != -1 && block == nil {
					t.Error("match reported without its block")
				}
				if pos == -1 && block != nil {
					t.Error("no match but a block was returned")
				}
			})
		}
	}
}

// TestFindLabelStraddlesBlockBoundary pins the boundary-stitching behavior:
// the opening quote as the last byte of one block, and every other alignment
// of the label around the boundary, must be found at the same offset by both
// strategies.
func TestFindLabelStraddlesBlockBoundary(t *testing.T) {
	label := query.NewLabel("key")

	for _, strat := range strategies {
		// Slide the label across the first block boundary. quotePos is the
		// absolute offset of the opening quote.
		for quotePos := input.BlockSize - 6; quotePos <= input.BlockSize+1; quotePos++ {
			doc := "{" + strings.Repeat(" ", quotePos-1) + `"key":1}`

			in := input.NewBytesInput([]byte(doc))
			finder := strat.build(in, in.IterBlocks())

			pos, _, err := finder.FindLabel(nil, 0, label)
			if err != nil {
				t.Fatalf("%s quotePos=%d: %v", strat.name, quotePos, err)
			}
			if pos != quotePos {
				t.Errorf("%s: quote at %d found at %d", strat.name, quotePos, pos)
			}
		}
	}
}

func TestFindLabelInFirstBlock(t *testing.T) {
	doc := `{"key":1,"key":2,` + strings.Repeat(" ", 60) + `"key":3}`
	label := query.NewLabel("key")

	for _, strat := range strategies {
		t.Run(strat.name, func(t *testing.T) {
			in := input.NewBytesInput([]byte(doc))
			iter := in.IterBlocks()

			block, err := iter.Next()
			if err != nil || block == nil {
				t.Fatalf("Next: (%v, %v)", block, err)
			}

			finder := strat.build(in, iter)

			// The in-hand block is scanned from startIdx, so the first
			// occurrence before it is not reported again.
			pos, got, err := finder.FindLabel(block, 6, label)
			if err != nil {
				t.Fatalf("FindLabel: %v", err)
			}
			if pos != 9 {
				t.Errorf("FindLabel from 6 = %d, want 9", pos)
			}
			if &got[0] != &block[0] {
				t.Error("match in first block did not return that block")
			}

			// Resuming past the in-hand block continues on the iterator.
			pos, _, err = finder.FindLabel(block, 15, label)
			if err != nil {
				t.Fatalf("FindLabel: %v", err)
			}
			if want := len(doc) - 8; pos != want {
				t.Errorf("FindLabel from 15 = %d, want %d", pos, want)
			}
		})
	}
}

func TestFindLabelIdempotent(t *testing.T) {
	doc := `{"a":1,"key":2}`
	label := query.NewLabel("key")

	for _, strat := range strategies {
		t.Run(strat.name, func(t *testing.T) {
			in := input.NewBytesInput([]byte(doc))

			for run := 0; run < 3; run++ {
				finder := strat.build(in, in.IterBlocks())
				pos, _, err := finder.FindLabel(nil, 0, label)
				if err != nil {
					t.Fatal(err)
				}
				if pos != 7 {
					t.Fatalf("run %d: FindLabel = %d, want 7", run, pos)
				}
			}
		})
	}
}

// TestStrategiesAgree cross-checks both strategies against the oracle on
// generated JSON-ish documents dense with near-miss byte patterns.
func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	alphabet := []byte(`"keya:\,{} `)
	labels := []*query.Label{
		query.NewLabel("key"),
		query.NewLabel("k"),
		query.NewLabel("ke"),
		query.NewLabel("a"),
	}

	for i := 0; i < 500; i++ {
		doc := make([]byte, rng.Intn(4*input.BlockSize))
		for j := range doc {
			doc[j] = alphabet[rng.Intn(len(alphabet))]
		}
		in := input.NewBytesInput(doc)

		for _, label := range labels {
			want := refFindLabel(in, 0, label)

			for _, strat := range strategies {
				finder := strat.build(in, in.IterBlocks())
				pos, _, err := finder.FindLabel(nil, 0, label)
				if err != nil {
					t.Fatal(err)
				}
				if pos != want {
					t.Fatalf("%s: doc %q label %q: FindLabel = %d, want %d",
						strat.name, doc, label, pos, want)
				}
			}
		}
	}
}
