package tagtree

// EventKind identifies the kind of a parse event.
type EventKind int

const (
	EventStartTag EventKind = iota + 1
	EventCharData
	EventEndTag
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStartTag:
		return "start-tag"
	case EventCharData:
		return "char-data"
	case EventEndTag:
		return "end-tag"
	default:
		return "unknown"
	}
}

// Event is a single low-level parse event. Name and Attrs are set for start
// tags, Text for character data.
type Event struct {
	Kind  EventKind
	Name  string
	Attrs []Attribute
	Text  string
	Pos   Pos
}

// Source produces the events of one document in order. Next returns io.EOF
// once the document is exhausted.
type Source interface {
	Next() (Event, error)
}
