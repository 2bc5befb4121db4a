package resilience

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"transient wrapper", NewTransientError(errors.New("503"), 503), true},
		{"wrapped transient", fmt.Errorf("fetch: %w", NewTransientError(errors.New("503"), 503)), true},
		{"eris wrapped transient", eris.Wrap(NewTransientError(errors.New("503"), 503), "engine: fetch"), true},
		{"plain error", errors.New("parse failure"), false},
		{"connection reset string", errors.New("read tcp: connection reset by peer"), true},
		{"no such host string", errors.New("dial tcp: lookup x: no such host"), true},
		{"io timeout string", errors.New("context deadline: i/o timeout"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestTransientError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	te := NewTransientError(inner, 429)
	assert.ErrorIs(t, te, inner)
	assert.Equal(t, "inner", te.Error())
	assert.Equal(t, 429, te.StatusCode)
}

func TestIsTransientHTTPStatus(t *testing.T) {
	for _, code := range []int{408, 500, 502, 503, 504} {
		assert.True(t, IsTransientHTTPStatus(code), "status %d", code)
	}
	for _, code := range []int{200, 301, 400, 403, 404, 429} {
		assert.False(t, IsTransientHTTPStatus(code), "status %d", code)
	}
}
