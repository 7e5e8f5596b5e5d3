package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedResponse means the model's output could not be parsed as JSON
// after the tolerated cleanups. Distinct from network/timeout failures: this
// is usually transient model misbehavior and worth a retry by the user.
var ErrMalformedResponse = errors.New("malformed AI response")

// Models occasionally emit a trailing comma before a closing bracket.
var trailingCommaRe = regexp.MustCompile(`,\s*([\]}])`)

// ExtractJSON parses the model's response text into a generic JSON tree.
// It tolerates a surrounding ```json code fence and trailing commas; any
// remaining parse failure wraps ErrMalformedResponse.
func ExtractJSON(text string) (map[string]interface{}, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	s = trailingCommaRe.ReplaceAllString(s, "$1")

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return raw, nil
}
