package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Mode selects how marks are shown.
type Mode uint8

const (
	// ModePlain prints the text unchanged.
	ModePlain Mode = iota
	// ModeANSI wraps marks in terminal colour escapes.
	ModeANSI
	// ModeMarkup wraps marks in Options.MarkerOpen/MarkerClose.
	ModeMarkup
)

func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeANSI:
		return "ansi"
	case ModeMarkup:
		return "markup"
	default:
		return "unknown"
	}
}

// Options configures a Highlighter.
type Options struct {
	Mode        Mode
	Color       string // e.g. "red", "hi-yellow", "red+bold"
	MarkerOpen  string
	MarkerClose string
}

// DefaultOptions returns plain mode with a red highlight and square
// bracket markers.
func DefaultOptions() Options {
	return Options{
		Mode:        ModePlain,
		Color:       "red",
		MarkerOpen:  "[",
		MarkerClose: "]",
	}
}

// Highlighter applies a Mode to Rendered values. Safe for concurrent use.
type Highlighter struct {
	mode  Mode
	color *color.Color
	open  string
	close string
}

// NewHighlighter validates opts and builds a Highlighter.
func NewHighlighter(opts Options) (*Highlighter, error) {
	attrs, err := ParseColor(opts.Color)
	if err != nil {
		return nil, err
	}
	h := &Highlighter{mode: opts.Mode, open: opts.MarkerOpen, close: opts.MarkerClose}
	if opts.Mode == ModeANSI {
		h.color = color.New(attrs...)
		// решение о цвете уже принято вызывающим (--color / TTY)
		h.color.EnableColor()
	}
	return h, nil
}

// Mode returns the highlight mode.
func (h *Highlighter) Mode() Mode { return h.mode }

// String renders r with its marks highlighted.
func (h *Highlighter) String(r Rendered) string {
	if h.mode == ModePlain || !r.Marked() {
		return r.Text
	}
	var sb strings.Builder
	sb.Grow(len(r.Text) + len(r.Marks)*8)
	r.Segments(func(text string, marked bool) {
		if !marked {
			sb.WriteString(text)
			return
		}
		switch h.mode {
		case ModeANSI:
			sb.WriteString(h.color.Sprint(text))
		case ModeMarkup:
			sb.WriteString(h.open)
			sb.WriteString(text)
			sb.WriteString(h.close)
		default:
			sb.WriteString(text)
		}
	})
	return sb.String()
}

var colorNames = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

var modifierNames = map[string]color.Attribute{
	"bold":      color.Bold,
	"faint":     color.Faint,
	"italic":    color.Italic,
	"underline": color.Underline,
	"reverse":   color.ReverseVideo,
}

// ParseColor converts a colour spec to fatih/color attributes. A spec is
// a colour name, optionally prefixed with "hi-", followed by any number
// of "+modifier" parts. An empty spec means red.
func ParseColor(spec string) ([]color.Attribute, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if spec == "" {
		return []color.Attribute{color.FgRed}, nil
	}
	parts := strings.Split(spec, "+")
	name := parts[0]
	hi := false
	if rest, ok := strings.CutPrefix(name, "hi-"); ok {
		name, hi = rest, true
	}
	fg, ok := colorNames[name]
	if !ok {
		return nil, fmt.Errorf("unknown colour %q", parts[0])
	}
	if hi {
		// FgHi* идут с тем же шагом, что и Fg*
		fg += color.FgHiBlack - color.FgBlack
	}
	attrs := []color.Attribute{fg}
	for _, mod := range parts[1:] {
		a, ok := modifierNames[mod]
		if !ok {
			return nil, fmt.Errorf("unknown colour modifier %q", mod)
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}
