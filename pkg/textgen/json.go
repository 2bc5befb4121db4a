package textgen

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
)

// DecodeJSON unmarshals a model reply into v, tolerating markdown code
// fences and prose around the JSON payload. Models are asked for bare JSON
// but do not reliably comply.
func DecodeJSON(reply string, v any) error {
	payload := extractJSON(reply)
	if payload == "" {
		return eris.New("textgen: no JSON payload in reply")
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return eris.Wrap(err, "textgen: decode reply")
	}
	return nil
}

// extractJSON pulls the first JSON object or array out of a reply.
func extractJSON(reply string) string {
	s := strings.TrimSpace(reply)

	// Strip a markdown fence if the reply is wrapped in one.
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return ""
	}
	open := s[start]
	var closeCh byte = '}'
	if open == '[' {
		closeCh = ']'
	}

	depth := 0
	inString := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
