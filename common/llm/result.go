package llm

import (
	"encoding/json"
	"strings"
)

// Result holds either a decoded JSON reply or the raw text when the reply was not valid JSON.
type Result[T any] struct {
	Parsed *T
	Raw    string
}

func (r Result[T]) OK() bool {
	return r.Parsed != nil
}

// ParseJSON decodes content into T. Blank content decodes as empty, which is "{}" for
// objects and "[]" for arrays. A reply wrapped in a markdown code fence is unwrapped first.
// It never fails: undecodable content comes back as Raw.
func ParseJSON[T any](content, empty string) Result[T] {
	body := strings.TrimSpace(content)
	if body == "" {
		body = empty
	}
	body = stripCodeFence(body)

	var v T
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return Result[T]{Raw: content}
	}
	return Result[T]{Parsed: &v}
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
