package validation

import (
	"sort"
	"strings"
)

// Severity ranks validation messages. Only Error makes a result invalid.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity maps a name onto a Severity, defaulting to Error.
func ParseSeverity(name string) Severity {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return Info
	case "warn", "warning":
		return Warning
	default:
		return Error
	}
}

// Message is a single validation outcome.
type Message struct {
	Severity Severity
	Text     string
}

// Result is an immutable, ordered set of messages. The zero value is a valid,
// empty result.
type Result struct {
	messages []Message
}

// NewResult normalises messages: text is trimmed, empty texts are dropped and
// duplicates (same severity and text) keep their first position.
func NewResult(messages ...Message) Result {
	return Result{messages: normalizeMessages(messages)}
}

// Messages returns a copy of the messages.
func (r Result) Messages() []Message {
	if len(r.messages) == 0 {
		return nil
	}
	return append([]Message(nil), r.messages...)
}

// Texts returns message texts, optionally limited to the given severity.
func (r Result) Texts(severity ...Severity) []string {
	var out []string
	for _, msg := range r.messages {
		if len(severity) > 0 && msg.Severity != severity[0] {
			continue
		}
		out = append(out, msg.Text)
	}
	return out
}

// Valid reports whether the result carries no Error message.
func (r Result) Valid() bool {
	return !r.Contains(Error)
}

// Empty reports whether the result has no messages at all.
func (r Result) Empty() bool {
	return len(r.messages) == 0
}

// Contains reports whether any message has the given severity.
func (r Result) Contains(severity Severity) bool {
	for _, msg := range r.messages {
		if msg.Severity == severity {
			return true
		}
	}
	return false
}

// MaxSeverity returns the highest severity present. The second value is false
// for empty results.
func (r Result) MaxSeverity() (Severity, bool) {
	if len(r.messages) == 0 {
		return Info, false
	}
	max := r.messages[0].Severity
	for _, msg := range r.messages[1:] {
		if msg.Severity > max {
			max = msg.Severity
		}
	}
	return max, true
}

// Merge returns the union of r and others, preserving order.
func (r Result) Merge(others ...Result) Result {
	combined := append([]Message(nil), r.messages...)
	for _, other := range others {
		combined = append(combined, other.messages...)
	}
	return NewResult(combined...)
}

// Equal compares two results message by message.
func (r Result) Equal(other Result) bool {
	if len(r.messages) != len(other.messages) {
		return false
	}
	for idx := range r.messages {
		if r.messages[idx] != other.messages[idx] {
			return false
		}
	}
	return true
}

func normalizeMessages(messages []Message) []Message {
	if len(messages) == 0 {
		return nil
	}
	out := make([]Message, 0, len(messages))
	seen := make(map[Message]struct{}, len(messages))
	for _, msg := range messages {
		msg.Text = strings.TrimSpace(msg.Text)
		if msg.Text == "" {
			continue
		}
		if _, exists := seen[msg]; exists {
			continue
		}
		seen[msg] = struct{}{}
		out = append(out, msg)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// IndexedResult is the outcome of validating a list: an overall result plus
// one result per element index that produced messages.
type IndexedResult struct {
	overall Result
	indexes map[int]Result
	length  int
}

// NewIndexedResult builds an indexed result for a list of the given length.
// Entries outside [0,length) and empty entries are dropped. The overall result
// merges listLevel with every per-index result in index order.
func NewIndexedResult(length int, listLevel Result, perIndex map[int]Result) IndexedResult {
	out := IndexedResult{length: length}
	parts := []Result{}
	for _, idx := range sortedKeys(perIndex) {
		res := perIndex[idx]
		if idx < 0 || idx >= length || res.Empty() {
			continue
		}
		if out.indexes == nil {
			out.indexes = make(map[int]Result)
		}
		out.indexes[idx] = res
		parts = append(parts, res)
	}
	out.overall = listLevel.Merge(parts...)
	return out
}

// Result returns the overall result.
func (r IndexedResult) Result() Result { return r.overall }

// Len returns the list length the result was computed for.
func (r IndexedResult) Len() int { return r.length }

// At returns the result for index; indexes without messages are valid.
func (r IndexedResult) At(index int) Result {
	return r.indexes[index]
}

// Indexes lists the indexes that carry messages, ascending.
func (r IndexedResult) Indexes() []int {
	return sortedKeys(r.indexes)
}

// Valid reports whether the overall result is valid.
func (r IndexedResult) Valid() bool { return r.overall.Valid() }

func sortedKeys(m map[int]Result) []int {
	if len(m) == 0 {
		return nil
	}
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
