package controller

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	m "github.com/mouse-blink/lox/internal/model"
)

const diagnosisIndent = "    "

// RenderDiagnosis lays a diagnosis out as the offending line, a caret under
// the failing column and the message:
//
//	    "a" + 1
//	        ^
//	runtime error: invalid operands ...
//
// The caret is padded with the display width of the characters before it,
// tabs being copied so that they expand the same way as in the line above.
func RenderDiagnosis(d m.Diagnosis) string {
	var b strings.Builder

	b.WriteString(diagnosisIndent)
	b.WriteString(d.Line)
	b.WriteString("\n")
	b.WriteString(diagnosisIndent)
	b.WriteString(caretPadding(d.Line, d.Column))
	b.WriteString("^\n")
	fmt.Fprintf(&b, "%s error: %s", d.Kind, d.Message)

	return b.String()
}

// RenderLocation names the source and line a diagnosis points at.
func RenderLocation(d m.Diagnosis) string {
	return fmt.Sprintf("%s:%d:%d", d.SourceID, d.LineNumber, d.Column+1)
}

func caretPadding(line string, column int) string {
	var b strings.Builder

	i := 0
	for _, r := range line {
		if i >= column {
			break
		}

		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}

		i++
	}

	// A column past the end of the line points right after its last character.
	if column > i {
		b.WriteString(strings.Repeat(" ", column-i))
	}

	return b.String()
}
