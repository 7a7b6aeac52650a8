package controller

import (
	"time"

	m "github.com/mouse-blink/lox/internal/model"
)

// Message types.
type tickMsg time.Time

type evaluatedMsg struct {
	line   string
	report m.Report
}

// List item types.
type reportItem struct {
	run    string
	report m.Report
}

func (r reportItem) FilterValue() string {
	return string(r.report.Source)
}
