package gemini

import (
	"strings"

	"github.com/tidwall/gjson"
)

// OK reports whether the API answered 200.
func (r Result) OK() bool {
	return r.Failure == nil
}

// Err returns the failure as an error, or nil on success.
func (r Result) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}

// Text concatenates the text parts of the first candidate.
func (r Result) Text() string {
	if r.Failure != nil || len(r.Body) == 0 {
		return ""
	}
	var b strings.Builder
	gjson.GetBytes(r.Body, "candidates.0.content.parts.#.text").ForEach(func(_, v gjson.Result) bool {
		b.WriteString(v.String())
		return true
	})
	return b.String()
}

// FinishReason returns the finish reason of the first candidate, if any.
func (r Result) FinishReason() string {
	if r.Failure != nil {
		return ""
	}
	return gjson.GetBytes(r.Body, "candidates.0.finishReason").String()
}
