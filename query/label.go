// Package query provides the search-term types consumed by the label matchers.
//
// The central type is Label, an immutable needle representing a JSON object key.
// A Label is constructed once per query term and shared, read-only, across every
// matching attempt for that term.
package query

// Label is a JSON object key being searched for.
//
// A Label stores the key both with and without its delimiting quote characters,
// so matchers can pick whichever form their scanning strategy needs without
// re-allocating. Labels are immutable after construction and safe for
// concurrent use.
//
// Example:
//
//	label := query.NewLabel("phoneNumber")
//	label.Bytes()           // phoneNumber
//	label.BytesWithQuotes() // "phoneNumber"
type Label struct {
	quoted []byte
}

// NewLabel builds a Label for the given key.
//
// The key must be non-empty; matching strategies rely on the quoted form
// having at least three bytes (opening quote, first character, and one more
// byte). NewLabel panics on an empty key, since that indicates a programming
// error in the query layer, not a runtime condition.
func NewLabel(key string) *Label {
	if len(key) == 0 {
		panic("query: NewLabel called with empty key")
	}

	quoted := make([]byte, len(key)+2)
	quoted[0] = '"'
	copy(quoted[1:], key)
	quoted[len(quoted)-1] = '"'

	return &Label{quoted: quoted}
}

// Bytes returns the raw key bytes without the surrounding quotes.
//
// The returned slice is shared with the Label and must not be modified.
func (l *Label) Bytes() []byte {
	return l.quoted[1 : len(l.quoted)-1]
}

// BytesWithQuotes returns the key bytes including the two delimiting quote
// characters. Invariant: len(BytesWithQuotes()) == len(Bytes())+2.
//
// The returned slice is shared with the Label and must not be modified.
func (l *Label) BytesWithQuotes() []byte {
	return l.quoted
}

// String returns the unquoted key as a string.
func (l *Label) String() string {
	return string(l.Bytes())
}
