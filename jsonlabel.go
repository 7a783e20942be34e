// Package jsonlabel locates JSON object keys ("labels") in byte streams too
// large or too awkward to parse up front.
//
// jsonlabel never builds a parse tree. It answers exactly one question - does
// this label occur here, as a correctly quoted key, at or after this offset -
// by scanning fixed-size blocks of the input with bit-parallel techniques and
// verifying every candidate against the surrounding quoting and escaping
// context. Matches that straddle a block boundary are stitched together
// correctly, which is what a streaming query engine built on top of this
// package depends on.
//
// Basic usage:
//
//	in := input.NewBytesInput(data)
//	finder := jsonlabel.NewFinder(in, query.NewLabel("phoneNumber"))
//
//	pos, err := finder.Find(0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if pos != -1 {
//	    fmt.Printf("key opens at byte %d\n", pos)
//	}
//
// For file sources, input.MapFile memory-maps the file instead of reading it:
//
//	f, _ := os.Open("large.json")
//	in, err := input.MapFile(f) // caller must not modify the file while mapped
//
// Searching for several sibling keys at once is served by MultiFinder, which
// trades the per-label scan for one multi-pattern automaton pass.
//
// Strategy selection:
//
// Two matching strategies implement the same contract. The mask strategy
// classifies 64-byte windows into marker bitmasks and extracts candidates
// bit-parallel; the sequential strategy scans for the label's first character
// one block at a time. Results are identical; the default configuration picks
// the mask strategy.
package jsonlabel

import (
	"github.com/coregx/jsonlabel/input"
	"github.com/coregx/jsonlabel/memmem"
	"github.com/coregx/jsonlabel/query"
)

// Strategy selects the label-matching implementation used by a Finder.
type Strategy int

const (
	// StrategyAuto lets the Finder pick; it currently resolves to
	// StrategyMask.
	StrategyAuto Strategy = iota

	// StrategySequential scans block bytes for the label's first character.
	// Portable baseline with no bit-parallel requirements.
	StrategySequential

	// StrategyMask extracts candidates from 64-bit marker masks with a
	// carry bit threaded across window boundaries.
	StrategyMask
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategySequential:
		return "sequential"
	case StrategyMask:
		return "mask"
	default:
		return "unknown"
	}
}

// Config tunes a Finder.
type Config struct {
	// Strategy selects the matching implementation. StrategyAuto picks the
	// fastest available one.
	Strategy Strategy
}

// DefaultConfig returns the configuration used by NewFinder.
func DefaultConfig() Config {
	return Config{Strategy: StrategyAuto}
}

func (c Config) resolve() Strategy {
	if c.Strategy == StrategyAuto {
		return StrategyMask
	}
	return c.Strategy
}

// Finder searches one input for occurrences of one label.
//
// A Finder is read-only after construction; every Find call runs on a fresh
// block iterator, so concurrent calls on the same Finder are safe and
// repeated calls with the same start offset return the same result.
type Finder struct {
	input    input.Input
	label    *query.Label
	strategy Strategy
}

// NewFinder builds a Finder with the default configuration.
func NewFinder(in input.Input, label *query.Label) *Finder {
	return NewFinderWithConfig(in, label, DefaultConfig())
}

// NewFinderWithConfig builds a Finder with an explicit configuration.
func NewFinderWithConfig(in input.Input, label *query.Label, config Config) *Finder {
	return &Finder{
		input:    in,
		label:    label,
		strategy: config.resolve(),
	}
}

// Label returns the label this Finder searches for.
func (f *Finder) Label() *query.Label {
	return f.label
}

// Strategy returns the resolved matching strategy.
func (f *Finder) Strategy() Strategy {
	return f.strategy
}

// Find returns the absolute position of the opening quote of the first
// confirmed occurrence of the label as a key, scanning from startIdx, or -1
// if the input is exhausted first. Scanning begins at startIdx itself, so a
// key whose opening quote sits at startIdx-1 with its first character at
// startIdx is still reported.
func (f *Finder) Find(startIdx int) (int, error) {
	if startIdx < 0 {
		startIdx = 0
	}

	iter := f.input.IterBlocks()
	iter.Skip(startIdx / input.BlockSize)

	// A mid-block start needs the spanning block in hand so candidates
	// before startIdx are not reported.
	var firstBlock input.Block
	if startIdx%input.BlockSize != 0 {
		block, err := iter.Next()
		if err != nil {
			return -1, err
		}
		firstBlock = block
	}

	pos, _, err := f.matcher(iter).FindLabel(firstBlock, startIdx, f.label)
	return pos, err
}

// FindAll returns the positions of every confirmed occurrence of the label at
// or after startIdx, in ascending order. A nil slice means none.
func (f *Finder) FindAll(startIdx int) ([]int, error) {
	step := len(f.label.BytesWithQuotes())

	var positions []int
	for {
		pos, err := f.Find(startIdx)
		if err != nil {
			return nil, err
		}
		if pos == -1 {
			return positions, nil
		}
		positions = append(positions, pos)
		startIdx = pos + step
	}
}

func (f *Finder) matcher(iter *input.BlockIterator) memmem.Finder {
	if f.strategy == StrategySequential {
		return memmem.NewSequential(f.input, iter)
	}
	return memmem.NewMask(f.input, iter)
}
