package types

import "time"

// Case is a regression case: a puzzle input and the answer it must produce.
type Case struct {
	Name  string `json:"name"`
	Day   Day    `json:"day"`
	Part  Part   `json:"part"`
	Input string `json:"-"` // input text, already loaded
	Want  int64  `json:"want"`
}

// Status is the outcome of running a case.
type Status string

const (
	StatusPass  Status = "pass"
	StatusFail  Status = "fail"
	StatusError Status = "error"
)

// Outcome records what a case produced.
type Outcome struct {
	Case     Case          `json:"case"`
	Status   Status        `json:"status"`
	Got      int64         `json:"got"`
	Err      error         `json:"-"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// NewOutcome classifies a solver result against the case's expectation.
func NewOutcome(c Case, got int64, err error, elapsed time.Duration) Outcome {
	o := Outcome{Case: c, Got: got, Err: err, Duration: elapsed}
	switch {
	case err != nil:
		o.Status = StatusError
		o.Message = err.Error()
	case got == c.Want:
		o.Status = StatusPass
	default:
		o.Status = StatusFail
	}
	return o
}

// Passed reports whether the case produced its expected answer.
func (o Outcome) Passed() bool {
	return o.Status == StatusPass
}
