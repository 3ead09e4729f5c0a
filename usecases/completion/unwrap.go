package completion

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBodyNotFound means the envelope has no string "body"
	ErrBodyNotFound = errors.New("completion envelope has no string body")
	// ErrMalformedBody means "body" is not JSON or carries no string "completion"
	ErrMalformedBody = errors.New("completion body is malformed")
	// ErrMalformedCompletion means "completion" is not JSON or carries no string "result"
	ErrMalformedCompletion = errors.New("completion payload is malformed")
)

// UnwrapCompletion extracts the result string from a response shaped as
// {"body": "{\"completion\": \"{\\\"result\\\": ...}\"}"}. The completion string is trimmed
// before the last decode.
func UnwrapCompletion(raw []byte) (string, error) {
	body, err := stringField(raw, "body")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBodyNotFound, err)
	}

	completion, err := stringField([]byte(body), "completion")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	result, err := stringField([]byte(strings.TrimSpace(completion)), "result")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
	}
	if result == "" {
		return "", fmt.Errorf("%w: result is empty", ErrMalformedCompletion)
	}

	return result, nil
}

// ReplyForError maps an unwrap failure to the message shown to the user
func ReplyForError(err error) string {
	if errors.Is(err, ErrBodyNotFound) {
		return ReplyNotFound
	}
	return ReplyProcessingError
}

// stringField decodes doc as a JSON object and returns its key member, which must be a
// JSON string. Keys match exactly.
func stringField(doc []byte, key string) (string, error) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(doc, &object); err != nil {
		return "", fmt.Errorf("not a JSON object: %w", err)
	}

	value, ok := object[key]
	if !ok {
		return "", fmt.Errorf("missing %q field", key)
	}
	if len(value) == 0 || value[0] != '"' {
		return "", fmt.Errorf("%q is not a string", key)
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return s, nil
}
