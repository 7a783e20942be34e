package input

// BlockIterator is a forward-only, resumable cursor over an Input, yielding
// blocks of exactly BlockSize bytes. It is a single-threaded pull protocol:
// one logical scan owns the iterator and calls Next until it returns a nil
// block.
type BlockIterator struct {
	data []byte
	idx  int
}

// Next produces the next block and advances the offset by BlockSize. Once the
// logical end (including padding) is reached it returns a nil block and nil
// error; that is exhaustion, not failure.
func (it *BlockIterator) Next() (Block, error) {
	if it.idx >= len(it.data) {
		return nil, nil
	}
	block := Block(it.data[it.idx : it.idx+BlockSize])
	it.idx += BlockSize
	return block, nil
}

// Offset returns the absolute offset of the next block to be produced.
func (it *BlockIterator) Offset() int {
	return it.idx
}

// Skip advances the cursor by count whole blocks without materializing them.
// Used to resume scanning right after a fast-path match found elsewhere.
// A negative count is a programming error and panics.
func (it *BlockIterator) Skip(count int) {
	if count < 0 {
		panic("input: negative block skip")
	}
	it.idx += count * BlockSize
}
