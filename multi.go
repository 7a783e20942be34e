package jsonlabel

import (
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/jsonlabel/input"
	"github.com/coregx/jsonlabel/query"
)

// ErrNoLabels is returned by NewMultiFinder when called without labels.
var ErrNoLabels = errors.New("jsonlabel: at least one label is required")

// MultiFinder searches one input for the earliest occurrence of any of
// several labels in a single pass.
//
// The query engine above this package often descends into an object knowing
// the handful of sibling keys it may transition on. Scanning for each one
// separately repeats work; MultiFinder instead compiles the quoted labels
// into an Aho-Corasick automaton and validates each automaton hit with the
// same member-match rules the single-label finders use.
//
// MultiFinder needs the input's bytes contiguously in memory and therefore
// takes an input.SliceInput; both provided backends qualify.
type MultiFinder struct {
	input     input.SliceInput
	labels    []*query.Label
	automaton *ahocorasick.Automaton
}

// NewMultiFinder builds a MultiFinder over the given labels.
func NewMultiFinder(in input.SliceInput, labels ...*query.Label) (*MultiFinder, error) {
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}

	builder := ahocorasick.NewBuilder()
	for _, label := range labels {
		builder.AddPattern(label.BytesWithQuotes())
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("jsonlabel: building label automaton: %w", err)
	}

	return &MultiFinder{
		input:     in,
		labels:    labels,
		automaton: automaton,
	}, nil
}

// FindAny returns the position of the opening quote of the earliest confirmed
// occurrence of any label at or after from, along with the index of the
// matched label in the order passed to NewMultiFinder. Both results are -1
// when no label occurs.
//
// Automaton hits that fail member validation (escaped quotes, spans reaching
// into padding) are skipped, and every label is re-checked at each candidate
// position so a shorter label's hit cannot shadow a longer label opening at
// the same quote.
func (m *MultiFinder) FindAny(from int) (int, int) {
	data := m.input.Bytes()
	if from < 0 {
		from = 0
	}

	for from < len(data) {
		match := m.automaton.Find(data, from)
		if match == nil {
			return -1, -1
		}

		pos := match.Start
		for i, label := range m.labels {
			end := pos + len(label.BytesWithQuotes()) - 1
			if m.input.IsMemberMatch(pos, end, label) {
				return pos, i
			}
		}

		from = pos + 1
	}
	return -1, -1
}

// Labels returns the labels this MultiFinder searches for.
func (m *MultiFinder) Labels() []*query.Label {
	return m.labels
}
