package completion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapCompletion_Success(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "padded completion",
			raw:      `{"body": "{\"completion\": \" {\\\"result\\\": \\\"X\\\"} \"}"}`,
			expected: "X",
		},
		{
			name:     "newline padded completion",
			raw:      `{"statusCode": 200, "body": "{\"completion\": \"\\n{\\\"result\\\": \\\"Hola, ¿en qué puedo ayudarte?\\\"}\\n\"}"}`,
			expected: "Hola, ¿en qué puedo ayudarte?",
		},
		{
			name:     "result is kept verbatim",
			raw:      `{"body": "{\"completion\": \"{\\\"result\\\": \\\"  línea 1\\\\nlínea 2  \\\"}\"}"}`,
			expected: "  línea 1\nlínea 2  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnwrapCompletion([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestUnwrapCompletion_Failures(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		expectedErr   error
		expectedReply string
	}{
		{
			name:          "body absent",
			raw:           `{"statusCode": 200}`,
			expectedErr:   ErrBodyNotFound,
			expectedReply: ReplyNotFound,
		},
		{
			name:          "body is not a string",
			raw:           `{"body": {"completion": "x"}}`,
			expectedErr:   ErrBodyNotFound,
			expectedReply: ReplyNotFound,
		},
		{
			name:          "body is null",
			raw:           `{"body": null}`,
			expectedErr:   ErrBodyNotFound,
			expectedReply: ReplyNotFound,
		},
		{
			name:          "response is not an object",
			raw:           `Internal Server Error`,
			expectedErr:   ErrBodyNotFound,
			expectedReply: ReplyNotFound,
		},
		{
			name:          "body is not JSON",
			raw:           `{"body": "not json"}`,
			expectedErr:   ErrMalformedBody,
			expectedReply: ReplyProcessingError,
		},
		{
			name:          "completion missing",
			raw:           `{"body": "{\"other\": 1}"}`,
			expectedErr:   ErrMalformedBody,
			expectedReply: ReplyProcessingError,
		},
		{
			name:          "completion is not a string",
			raw:           `{"body": "{\"completion\": 42}"}`,
			expectedErr:   ErrMalformedBody,
			expectedReply: ReplyProcessingError,
		},
		{
			name:          "completion key is case sensitive",
			raw:           `{"body": "{\"Completion\": \"{}\"}"}`,
			expectedErr:   ErrMalformedBody,
			expectedReply: ReplyProcessingError,
		},
		{
			name:          "completion is not JSON",
			raw:           `{"body": "{\"completion\": \"plain text answer\"}"}`,
			expectedErr:   ErrMalformedCompletion,
			expectedReply: ReplyProcessingError,
		},
		{
			name:          "result missing",
			raw:           `{"body": "{\"completion\": \"{\\\"answer\\\": \\\"X\\\"}\"}"}`,
			expectedErr:   ErrMalformedCompletion,
			expectedReply: ReplyProcessingError,
		},
		{
			name:          "result is not a string",
			raw:           `{"body": "{\"completion\": \"{\\\"result\\\": [1]}\"}"}`,
			expectedErr:   ErrMalformedCompletion,
			expectedReply: ReplyProcessingError,
		},
		{
			name:          "result is empty",
			raw:           `{"body": "{\"completion\": \"{\\\"result\\\": \\\"\\\"}\"}"}`,
			expectedErr:   ErrMalformedCompletion,
			expectedReply: ReplyProcessingError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnwrapCompletion([]byte(tt.raw))

			assert.Empty(t, got)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedErr), "got %v, want %v", err, tt.expectedErr)
			assert.Equal(t, tt.expectedReply, ReplyForError(err))
		})
	}
}
