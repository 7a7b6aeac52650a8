// Package controller provides the terminal front-ends of the lox CLI.
package controller

import (
	m "github.com/mouse-blink/lox/internal/model"
)

// DefaultPrompt is shown in front of every REPL line.
const DefaultPrompt = "lox> "

// DefaultHistorySize is the number of REPL lines kept for recall.
const DefaultHistorySize = 100

// QuitCommand ends the REPL.
const QuitCommand = ":q"

// EvalFunc evaluates one REPL line.
type EvalFunc func(line string) m.Report

// ReplOption is a functional option for the Repl method.
type ReplOption func(*ReplConfig)

// ReplConfig holds the configuration of a REPL session.
type ReplConfig struct {
	prompt      string
	historySize int
}

// WithPrompt sets the REPL prompt.
func WithPrompt(prompt string) ReplOption {
	return func(c *ReplConfig) {
		if prompt != "" {
			c.prompt = prompt
		}
	}
}

// WithHistorySize sets how many lines the REPL remembers.
func WithHistorySize(size int) ReplOption {
	return func(c *ReplConfig) {
		if size > 0 {
			c.historySize = size
		}
	}
}

func newReplConfig(options ...ReplOption) ReplConfig {
	cfg := ReplConfig{prompt: DefaultPrompt, historySize: DefaultHistorySize}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines how evaluation results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayValue prints the value of a successful evaluation.
	DisplayValue(report m.Report)
	// DisplayDiagnosis explains a failed evaluation.
	DisplayDiagnosis(diagnosis m.Diagnosis)
	// DisplayTokens dumps a token stream.
	DisplayTokens(tokens []m.Token)
	// DisplayTree prints an expression tree in prefix form.
	DisplayTree(tree string)
	// DisplayReports summarizes a batch run.
	DisplayReports(run m.Run) error
	// BrowseReports shows previously saved runs.
	BrowseReports(runs []m.Run) error
	// Repl reads lines until the quit command or end of input and evaluates
	// each of them with eval.
	Repl(eval EvalFunc, options ...ReplOption) error
}

const replBanner = "Welcome to lox. Type " + QuitCommand + " or Control-C to exit."
