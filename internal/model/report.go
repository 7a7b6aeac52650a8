package model

import "time"

// Report represents the outcome of evaluating one source.
type Report struct {
	ID      string        `json:"id"`
	Source  Path          `json:"source"`
	Hash    string        `json:"hash,omitempty"`
	Type    string        `json:"type,omitempty"`  // value type, empty on failure
	Value   string        `json:"value,omitempty"` // debug form of the value
	Elapsed time.Duration `json:"elapsed"`
	// Diagnosis is set when the evaluation failed.
	Diagnosis *Diagnosis `json:"diagnosis,omitempty"`
}

// Failed reports whether the evaluation ended with an error.
func (r Report) Failed() bool {
	return r.Diagnosis != nil
}

// Run groups the reports produced by one batch evaluation.
type Run struct {
	ID      string    `json:"id"`
	Started time.Time `json:"started"`
	Reports []Report  `json:"reports"`
}
