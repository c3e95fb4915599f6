package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodesDefaultsForNewChat(t *testing.T) {
	store := NewMemoryStore()
	assert.Equal(t, FactoryCodes, store.Codes("chat-1"))
}

func TestToggleDisablesAndEnables(t *testing.T) {
	store := NewMemoryStore()

	enabled := store.Toggle("chat-1", "RUB")
	assert.False(t, enabled)
	assert.NotContains(t, store.Codes("chat-1"), "RUB")

	enabled = store.Toggle("chat-1", "RUB")
	assert.True(t, enabled)
	assert.Contains(t, store.Codes("chat-1"), "RUB")
}

func TestToggleEnablesNonFactoryCode(t *testing.T) {
	store := NewMemoryStore()

	require.True(t, store.Toggle("chat-1", "PLN"))
	assert.Contains(t, store.Codes("chat-1"), "PLN")
	assert.Contains(t, store.Codes("chat-1"), "UAH")
}

func TestChatsAreIndependent(t *testing.T) {
	store := NewMemoryStore()

	store.Toggle("chat-1", "USD")
	assert.NotContains(t, store.Codes("chat-1"), "USD")
	assert.Contains(t, store.Codes("chat-2"), "USD")
}
