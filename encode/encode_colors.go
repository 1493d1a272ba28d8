package encode

import (
	"github.com/fatih/color"
)

// Colors maps the syntactic parts of a rendered line to sprint
// functions. Zero fields fall back to identity.
type Colors struct {
	Tag     func(format string, a ...any) string
	Sep     func(format string, a ...any) string
	Value   func(format string, a ...any) string
	Comment func(format string, a ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Tag:     color.RGB(128, 168, 196).SprintfFunc(),
		Sep:     color.RGB(196, 128, 128).SprintfFunc(),
		Value:   color.RGB(8, 196, 16).SprintfFunc(),
		Comment: color.BlueString,
	}
}
