package domain

// Position is a zero-based line/column location in a buffer.
// Col counts runes, not bytes.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p sorts before other in reading order
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// After reports whether p sorts after other in reading order
func (p Position) After(other Position) bool {
	return other.Before(p)
}

// Span is a half-open range on a single line: [Start, End)
type Span struct {
	Start Position
	End   Position
}

// Len returns the number of runes covered by the span
func (s Span) Len() int {
	return s.End.Col - s.Start.Col
}

// LineRange is an inclusive range of buffer lines
type LineRange struct {
	First int
	Last  int
}

// Contains reports whether line falls inside the range
func (r LineRange) Contains(line int) bool {
	return line >= r.First && line <= r.Last
}

// Match is a literal occurrence found by a scan
type Match struct {
	Span Span
	Text string
}

// Mode is the host editing mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeVisual
	ModeVisualLine
	ModeVisualBlock
	ModeJump // jump search in progress
)

// IsVisual reports whether m is one of the visual selection modes
func (m Mode) IsVisual() bool {
	return m == ModeVisual || m == ModeVisualLine || m == ModeVisualBlock
}

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "V-LINE"
	case ModeVisualBlock:
		return "V-BLOCK"
	case ModeJump:
		return "JUMP"
	default:
		return "UNKNOWN"
	}
}
