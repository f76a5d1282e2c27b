package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerRegistry_Register_SpecificTypes(t *testing.T) {
	registry := NewHandlerRegistry()
	handler := newTestHandler("A", "B")

	registry.Register(handler, "A", "B")

	assert.Len(t, registry.GetHandlers("A"), 1)
	assert.Len(t, registry.GetHandlers("B"), 1)
	assert.Empty(t, registry.GetHandlers("C"))
}

func TestHandlerRegistry_Register_Wildcard(t *testing.T) {
	registry := NewHandlerRegistry()
	handler := newTestHandler()

	registry.Register(handler)

	assert.Len(t, registry.GetHandlers("A"), 1)
	assert.Len(t, registry.GetHandlers("anything"), 1)
}

func TestHandlerRegistry_Register_Order(t *testing.T) {
	registry := NewHandlerRegistry()
	first := newTestHandler("A")
	second := newTestHandler("A")
	wildcard := newTestHandler()

	registry.Register(wildcard)
	registry.Register(first, "A")
	registry.Register(second, "A")

	handlers := registry.GetHandlers("A")
	require.Len(t, handlers, 3)
	assert.Same(t, first, handlers[0])
	assert.Same(t, second, handlers[1])
	assert.Same(t, wildcard, handlers[2])
}

func TestHandlerRegistry_Register_Duplicate(t *testing.T) {
	registry := NewHandlerRegistry()
	handler := newTestHandler("A")

	registry.Register(handler, "A")
	registry.Register(handler, "A")
	registry.Register(handler)
	registry.Register(handler)

	assert.Len(t, registry.GetHandlers("A"), 2) // once typed, once wildcard
	assert.Equal(t, 1, registry.Len())
}

func TestHandlerRegistry_Unregister(t *testing.T) {
	registry := NewHandlerRegistry()
	keep := newTestHandler("A")
	drop := newTestHandler("A", "B")
	wildcard := newTestHandler()

	registry.Register(keep, "A")
	registry.Register(drop, "A", "B")
	registry.Register(wildcard)
	assert.Equal(t, 3, registry.Len())

	registry.Unregister(drop)
	registry.Unregister(wildcard)

	handlers := registry.GetHandlers("A")
	require.Len(t, handlers, 1)
	assert.Same(t, keep, handlers[0])
	assert.Empty(t, registry.GetHandlers("B"))
	assert.Equal(t, 1, registry.Len())
}

func TestHandlerRegistry_GetHandlers_ReturnsCopy(t *testing.T) {
	registry := NewHandlerRegistry()
	registry.Register(newTestHandler("A"), "A")

	handlers := registry.GetHandlers("A")
	handlers[0] = nil

	assert.NotNil(t, registry.GetHandlers("A")[0])
}
