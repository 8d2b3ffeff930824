package httpclient

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusError_Message(t *testing.T) {
	err := &StatusError{StatusCode: 500, Body: []byte(`{"success":false}`)}
	assert.Equal(t, `server error 500: {"success":false}`, err.Error())
}

func TestAsStatusError_Wrapped(t *testing.T) {
	inner := &StatusError{StatusCode: http.StatusBadGateway}
	wrapped := fmt.Errorf("load orders: %w", inner)

	se, ok := AsStatusError(wrapped)
	assert.True(t, ok)
	assert.Same(t, inner, se)
}

func TestAsStatusError_Other(t *testing.T) {
	_, ok := AsStatusError(fmt.Errorf("dial tcp: refused"))
	assert.False(t, ok)
}

func TestIsClientError(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, false},
		{http.StatusBadRequest, true},
		{http.StatusUnauthorized, true},
		{http.StatusNotFound, true},
		{499, true},
		{http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, IsClientError(tt.status))
		})
	}
}
