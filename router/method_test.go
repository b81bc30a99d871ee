package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token    string
		expected Method
		ok       bool
	}{
		{"GET", MethodGet, true},
		{"POST", MethodPost, true},
		{"PUT", MethodPut, true},
		{"DELETE", MethodDelete, true},
		{"HEAD", MethodHead, true},
		{"PATCH", MethodPatch, true},
		{"TRACE", MethodTrace, true},
		{"CONNECT", MethodConnect, true},
		{"OPTIONS", MethodOptions, true},
		{"get", MethodGet, true},
		{"Options", MethodOptions, true},
		{"PROPFIND", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			method, ok := ParseMethod(tt.token)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, method)
			}
		})
	}
}

func TestMethod_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GET", MethodGet.String())
	assert.Equal(t, "OPTIONS", MethodOptions.String())
	assert.Equal(t, "", Method(42).String())
}

func TestMethods(t *testing.T) {
	t.Parallel()

	all := Methods()
	require.Len(t, all, methodCount)

	// Round-trips through the token form.
	for _, m := range all {
		parsed, ok := ParseMethod(m.String())
		require.True(t, ok)
		assert.Equal(t, m, parsed)
	}
}
