package config

import (
	"fmt"
	"sort"
	"strings"

	"glyphwatch/internal/detect"
	"glyphwatch/internal/render"
	"glyphwatch/internal/script"
)

// ValidationError is one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid field of a Config.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Cache.Capacity < 1 {
		errs = append(errs, ValidationError{
			Field:   "cache.capacity",
			Message: fmt.Sprintf("must be positive, got %d", c.Cache.Capacity),
		})
	}
	if _, err := detect.ParseTieBreak(c.Script.TieBreak); err != nil {
		errs = append(errs, ValidationError{Field: "script.tie_break", Message: err.Error()})
	}

	// порядок ключей map случаен, сортируем для стабильных сообщений
	names := make([]string, 0, len(c.Script.Fold))
	for from := range c.Script.Fold {
		names = append(names, from)
	}
	sort.Strings(names)
	for _, from := range names {
		to := c.Script.Fold[from]
		src, ok := script.Lookup(from)
		if !ok {
			errs = append(errs, ValidationError{Field: "script.fold", Message: fmt.Sprintf("unknown block %q", from)})
			continue
		}
		if src == script.BasicLatin {
			errs = append(errs, ValidationError{Field: "script.fold", Message: "Basic Latin cannot be folded"})
		}
		if _, ok := script.Lookup(to); !ok {
			errs = append(errs, ValidationError{Field: "script.fold." + from, Message: fmt.Sprintf("unknown block %q", to)})
		}
	}

	if _, err := render.ParseColor(c.Render.Color); err != nil {
		errs = append(errs, ValidationError{Field: "render.color", Message: err.Error()})
	}
	if (c.Render.MarkerOpen == "") != (c.Render.MarkerClose == "") {
		errs = append(errs, ValidationError{Field: "render.marker_open", Message: "marker_open and marker_close must be set together"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
