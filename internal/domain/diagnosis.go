package domain

import (
	"errors"
	"unicode/utf8"

	m "github.com/mouse-blink/lox/internal/model"
)

// Diagnosable is an error that can be explained with a source line and a
// caret. *LexError, *ParseError and *RuntimeError implement it.
type Diagnosable interface {
	error
	Diagnose() m.Diagnosis
}

// Diagnose returns the diagnosis of the first Diagnosable error in err's
// chain.
func Diagnose(err error) (m.Diagnosis, bool) {
	var diagnosable Diagnosable
	if !errors.As(err, &diagnosable) {
		return m.Diagnosis{}, false
	}

	return diagnosable.Diagnose(), true
}

// diagnoseAt finds the line owning loc's first character and the column of
// that character within it.
func diagnoseAt(kind m.DiagnosisKind, msg string, loc m.Location) m.Diagnosis {
	src := loc.Source
	column := loc.Offset
	line := 0

	// Each line is followed by the newline the split removed.
	for line < src.LineCount()-1 {
		length := utf8.RuneCountInString(src.Line(line))
		if column <= length {
			break
		}

		column -= length + 1
		line++
	}

	return m.Diagnosis{
		Kind:       kind,
		Message:    msg,
		SourceID:   src.ID(),
		Line:       src.Line(line),
		LineNumber: line + 1,
		Column:     column,
	}
}

// diagnoseEOF points right after the last character of the last line. The
// empty line created by a terminating newline is skipped.
func diagnoseEOF(kind m.DiagnosisKind, msg string, src *m.Source) m.Diagnosis {
	last := src.LineCount() - 1
	if last > 0 && src.Line(last) == "" {
		last--
	}

	line := src.Line(last)

	return m.Diagnosis{
		Kind:       kind,
		Message:    msg,
		SourceID:   src.ID(),
		Line:       line,
		LineNumber: last + 1,
		Column:     utf8.RuneCountInString(line),
	}
}
