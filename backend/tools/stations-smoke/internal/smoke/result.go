package smoke

import "net/http"

// ExpectedStatus is the only status treated as success.
const ExpectedStatus = http.StatusCreated

// Outcome is the state reached by a smoke run.
type Outcome int

const (
	NotSent Outcome = iota
	Succeeded
	Failed
)

func (o Outcome) String() string {
	switch o {
	case NotSent:
		return "not_sent"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of the single request.
// Err is set for transport faults, in which case StatusCode and Body are not meaningful.
type Result struct {
	Outcome    Outcome
	StatusCode int
	Body       []byte
	Err        error
}

// TransportFault reports whether the exchange never completed.
func (r Result) TransportFault() bool {
	return r.Err != nil
}

func classify(status int, body []byte, err error) Result {
	if err != nil {
		return Result{Outcome: Failed, StatusCode: status, Err: err}
	}
	res := Result{Outcome: Failed, StatusCode: status, Body: body}
	if status == ExpectedStatus {
		res.Outcome = Succeeded
	}
	return res
}
