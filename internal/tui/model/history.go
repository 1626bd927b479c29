package model

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// NoSource marks a record that was not produced by a submitted input line.
const NoSource = -1

// Kind tags where a record's text came from.
type Kind int

const (
	// KindText is typed input or text captured from a command's stdout/stderr.
	KindText Kind = iota
	// KindSpawnFailure records a command whose shell could not be started.
	KindSpawnFailure
	// KindCancelled records a command killed on user request.
	KindCancelled
	// KindTimedOut records a command killed after exceeding its timeout.
	KindTimedOut
)

func (k Kind) String() string {
	switch k {
	case KindSpawnFailure:
		return "spawn-failure"
	case KindCancelled:
		return "cancelled"
	case KindTimedOut:
		return "timed-out"
	default:
		return "text"
	}
}

// Record is one entry of a pane history.
type Record struct {
	Text string
	Kind Kind
	// Source is the index of the input record that produced this entry, or
	// NoSource.
	Source int
}

// History is an ordered, append-only sequence of records. The zero value is
// an empty history ready for use.
type History struct {
	records []Record
}

// Append adds a plain text record and returns its index.
func (h *History) Append(text string) int {
	return h.AppendRecord(Record{Text: text, Source: NoSource})
}

// AppendRecord adds r and returns its index.
func (h *History) AppendRecord(r Record) int {
	h.records = append(h.records, r)
	return len(h.records) - 1
}

// Len returns the number of records.
func (h *History) Len() int { return len(h.records) }

// At returns the record at index i. It panics when i is out of range.
func (h *History) At(i int) Record { return h.records[i] }

// Last returns the most recent record.
func (h *History) Last() (Record, bool) {
	if len(h.records) == 0 {
		return Record{}, false
	}
	return h.records[len(h.records)-1], true
}

// Records returns a copy of all records in insertion order.
func (h *History) Records() []Record { return slices.Clone(h.records) }

// PushRune appends r to the text of the last record. It reports false when
// the history is empty.
func (h *History) PushRune(r rune) bool {
	if len(h.records) == 0 {
		return false
	}
	h.records[len(h.records)-1].Text += string(r)
	return true
}

// PopRune removes the trailing rune of the last record. It reports false when
// there was nothing to remove.
func (h *History) PopRune() bool {
	if len(h.records) == 0 {
		return false
	}
	last := &h.records[len(h.records)-1]
	if last.Text == "" {
		return false
	}
	r := []rune(last.Text)
	last.Text = string(r[:len(r)-1])
	return true
}

// Lines yields the display lines of the history: each record is prefixed
// with its 1-based number, and continuation lines of multi-line records are
// indented to line up with the first. A single trailing newline is not shown
// as an extra line.
func (h *History) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, r := range h.records {
			prefix := fmt.Sprintf("%d) ", i+1)
			indent := strings.Repeat(" ", len(prefix))
			for j, line := range strings.Split(strings.TrimSuffix(r.Text, "\n"), "\n") {
				if j == 0 {
					line = prefix + line
				} else {
					line = indent + line
				}
				if !yield(line) {
					return
				}
			}
		}
	}
}
