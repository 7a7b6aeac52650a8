package model

// DiagnosisKind names the pipeline stage an error comes from.
type DiagnosisKind string

const (
	// DiagnosisLexing is used for unterminated strings and unrecognized input.
	DiagnosisLexing DiagnosisKind = "lexing"
	// DiagnosisParsing is used for grammar violations.
	DiagnosisParsing DiagnosisKind = "parsing"
	// DiagnosisRuntime is used for operand type mismatches during evaluation.
	DiagnosisRuntime DiagnosisKind = "runtime"
)

// Diagnosis is the human-facing form of an error: the offending source line,
// its 1-based number, the 0-based character column to put a caret under, and
// a message.
type Diagnosis struct {
	Kind       DiagnosisKind `json:"kind"`
	Message    string        `json:"message"`
	SourceID   string        `json:"source_id"`
	Line       string        `json:"line"`
	LineNumber int           `json:"line_number"`
	Column     int           `json:"column"`
}
