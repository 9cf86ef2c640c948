package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"decode", NewDecodeError("bad pdf", cause), KindDecode},
		{"io", NewIOError("render", cause), KindIO},
		{"upstream", NewUpstreamError(503, "unavailable", nil), KindUpstream},
		{"parse", NewParseError("no valid answer received", nil), KindParse},
		{"store", NewStoreError("insert", cause), KindStore},
		{"config", NewConfigError("DB_URL is required"), KindConfig},
		{"wrapped", fmt.Errorf("save chunk 0 page 2: %w", NewStoreError("insert", cause)), KindStore},
		{"plain error", cause, ErrorKind("")},
		{"nil", nil, ErrorKind("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestPipelineErrorMessages(t *testing.T) {
	cause := errors.New("connection reset")

	withCause := NewIOError("write source file", cause)
	assert.Equal(t, "[io] write source file: connection reset", withCause.Error())
	require.ErrorIs(t, withCause, cause)

	withoutCause := NewParseError("no valid answer received", nil)
	assert.Equal(t, "[parse] no valid answer received", withoutCause.Error())

	upstream := NewUpstreamError(429, `{"error": "rate limited"}`, nil)
	assert.Contains(t, upstream.Error(), "upstream status 429")
	assert.Contains(t, upstream.Error(), "rate limited")
}
