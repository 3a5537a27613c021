package events

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmitter() (*Emitter, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return New(logger), &buf
}

func TestEmit_DeliversPayload(t *testing.T) {
	e, _ := newTestEmitter()

	var got []any
	e.On("data-updated", func(payload any) { got = append(got, payload) })

	e.Emit("data-updated", 3)
	e.Emit("data-updated", 4)

	assert.Equal(t, []any{3, 4}, got)
}

func TestEmit_OnlyNamedEvent(t *testing.T) {
	e, _ := newTestEmitter()

	calls := 0
	e.On("activity-added", func(any) { calls++ })

	e.Emit("activity-deleted", nil)
	assert.Equal(t, 0, calls)
}

func TestOff_RemovesListener(t *testing.T) {
	e, _ := newTestEmitter()

	calls := 0
	id := e.On("x", func(any) { calls++ })
	e.Off("x", id)

	e.Emit("x", nil)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, e.ListenerCount("x"))
}

func TestOff_UnknownIDIgnored(t *testing.T) {
	e, _ := newTestEmitter()
	e.On("x", func(any) {})
	e.Off("x", 999)
	assert.Equal(t, 1, e.ListenerCount("x"))
}

func TestEmit_UnsubscribeDuringDispatchDoesNotAffectCurrentEmission(t *testing.T) {
	e, _ := newTestEmitter()

	var order []string
	var secondID int
	e.On("x", func(any) {
		order = append(order, "first")
		e.Off("x", secondID)
	})
	secondID = e.On("x", func(any) { order = append(order, "second") })

	e.Emit("x", nil)
	assert.Equal(t, []string{"first", "second"}, order, "snapshot dispatch still runs the second listener")

	e.Emit("x", nil)
	assert.Equal(t, []string{"first", "second", "first"}, order)
}

func TestOnce_RunsExactlyOnce(t *testing.T) {
	e, _ := newTestEmitter()

	calls := 0
	e.Once("x", func(any) { calls++ })

	e.Emit("x", nil)
	e.Emit("x", nil)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, e.ListenerCount("x"))
}

func TestEmit_PanickingListenerIsIsolated(t *testing.T) {
	e, buf := newTestEmitter()

	calls := 0
	e.On("x", func(any) { panic("boom") })
	e.On("x", func(any) { calls++ })

	require.NotPanics(t, func() { e.Emit("x", nil) })
	assert.Equal(t, 1, calls, "sibling listener still runs")
	assert.Contains(t, buf.String(), "listener panic")
	assert.Contains(t, buf.String(), "boom")
}

func TestRegister_SoftCapWarnsButAllows(t *testing.T) {
	e, buf := newTestEmitter()

	for i := 0; i <= SoftListenerCap; i++ {
		e.On("x", func(any) {})
	}

	assert.Equal(t, SoftListenerCap+1, e.ListenerCount("x"))
	assert.Contains(t, buf.String(), "possible listener leak")
}
