package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	pointers, wheels, resizes int
}

func (r *recorder) Pointer(PointerEvent) { r.pointers++ }
func (r *recorder) Wheel(WheelEvent)     { r.wheels++ }
func (r *recorder) Resize(ResizeEvent)   { r.resizes++ }

func TestMuxRoutesToSubscriber(t *testing.T) {
	var m Mux
	r := &recorder{}
	unsubscribe := m.Subscribe(r)

	m.DispatchPointer(PointerEvent{})
	m.DispatchWheel(WheelEvent{})
	m.DispatchResize(ResizeEvent{})
	assert.Equal(t, recorder{1, 1, 1}, *r)

	unsubscribe()
	unsubscribe()
	m.DispatchPointer(PointerEvent{})
	assert.Equal(t, 1, r.pointers)
	assert.False(t, m.Attached())
}

func TestMuxStaleUnsubscribeKeepsNewTarget(t *testing.T) {
	var m Mux
	first, second := &recorder{}, &recorder{}
	stale := m.Subscribe(first)
	m.Subscribe(second)
	stale()

	m.DispatchWheel(WheelEvent{})
	assert.Equal(t, 0, first.wheels)
	assert.Equal(t, 1, second.wheels)
}
