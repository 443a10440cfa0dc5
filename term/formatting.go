package term

const (

	// Terminal font colors
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"

	// Terminal font attributes
	BOLD = "\033[1m"
	DIM  = "\033[2m"

	// Reset formatting
	NC = "\033[0m"
)

// Painter wraps text in terminal formatting
// codes unless it has been disabled.
type Painter struct {
	enabled bool
}

func NewPainter(enabled bool) Painter {
	return Painter{enabled: enabled}
}

func (p Painter) Paint(format, text string) string {
	if !p.enabled || len(text) == 0 {
		return text
	}
	return format + text + NC
}

func (p Painter) Success(text string) string {
	return p.Paint(GREEN, text)
}

func (p Painter) Failure(text string) string {
	return p.Paint(RED+BOLD, text)
}

func (p Painter) Note(text string) string {
	return p.Paint(DIM, text)
}
