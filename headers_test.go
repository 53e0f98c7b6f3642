package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeadersDefaultRoster(t *testing.T) {
	h := NewHeaders()
	result, ok := h.Get("Result")
	require.True(t, ok)
	require.Equal(t, "*", result)
}

func TestHeadersKeysOrdersRosterFirst(t *testing.T) {
	h := NewHeaders()
	h.Set("Annotator", "me")
	h.Set("White", "Carlsen")
	keys := h.Keys()
	require.Equal(t, sevenTagRoster, keys[:len(sevenTagRoster)])
	require.Equal(t, "Annotator", keys[len(keys)-1])
}

func TestHeadersDeleteRemovesFromOrder(t *testing.T) {
	h := NewHeaders()
	h.Set("Annotator", "me")
	h.Delete("Annotator")
	_, ok := h.Get("Annotator")
	require.False(t, ok)
	for _, k := range h.Keys() {
		require.NotEqual(t, "Annotator", k)
	}
}
