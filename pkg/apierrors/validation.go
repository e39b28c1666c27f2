package apierrors

import "strings"

// FieldError is a single failed rule, shaped like the validation errors form
// handlers and API clients already understand.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

// ValidationErrs is the response body for rejected input.
type ValidationErrs struct {
	Errors []FieldError `json:"errors"`
}

func (e ValidationErrs) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Param+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ByParam indexes the first message per field, for inline form messages.
func (e ValidationErrs) ByParam() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		if _, seen := out[fe.Param]; !seen {
			out[fe.Param] = fe.Msg
		}
	}
	return out
}
