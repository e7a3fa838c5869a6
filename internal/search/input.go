package search

// DefaultPlaceholder 검색창 placeholder
const DefaultPlaceholder = "Поиск..."

// MaxQueryLength upper bound on a query accepted from the outside, in
// characters. Input itself never truncates.
const MaxQueryLength = 200

// State is the logical state of an Input
type State int

const (
	StateEmpty State = iota
	StateNonEmpty
)

func (s State) String() string {
	if s == StateNonEmpty {
		return "non-empty"
	}
	return "empty"
}

// Input holds the query being typed and reports every change to its owner.
// The callback receives the full current text, never a diff.
type Input struct {
	value       []rune
	placeholder string
	onSearch    func(query string)
}

// NewInput creates an empty Input. onSearch may be nil.
func NewInput(onSearch func(query string)) *Input {
	return &Input{
		placeholder: DefaultPlaceholder,
		onSearch:    onSearch,
	}
}

// Placeholder returns the placeholder text
func (in *Input) Placeholder() string {
	return in.placeholder
}

// Value returns the current query text
func (in *Input) Value() string {
	return string(in.value)
}

// State returns StateEmpty or StateNonEmpty
func (in *Input) State() State {
	if len(in.value) == 0 {
		return StateEmpty
	}
	return StateNonEmpty
}

// Insert appends one character
func (in *Input) Insert(r rune) {
	in.value = append(in.value, r)
	in.notify()
}

// InsertString appends s one character at a time, one callback per character
func (in *Input) InsertString(s string) {
	for _, r := range s {
		in.Insert(r)
	}
}

// Backspace removes the last character. On an empty input the text stays
// empty but the callback still fires.
func (in *Input) Backspace() {
	if len(in.value) > 0 {
		in.value = in.value[:len(in.value)-1]
	}
	in.notify()
}

// SetValue replaces the whole text, the way a form field change event does
func (in *Input) SetValue(s string) {
	in.value = []rune(s)
	in.notify()
}

func (in *Input) notify() {
	if in.onSearch != nil {
		in.onSearch(string(in.value))
	}
}
