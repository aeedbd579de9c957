// Package display holds the result shapes understood by every renderer.
package display

// Table is a result shown as rows under a header
type Table interface {
	Header() []string
	Rows() [][]string
}

// Summarizer is a result with a one-line summary. Text renderers print the
// summary after any table; structured renderers ignore it.
type Summarizer interface {
	Summary() string
}
