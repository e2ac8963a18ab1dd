package sdlui

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// AudioGate pauses SDL audio for the duration of a menu session. The
// flag makes Pause/Resume idempotent so nested sessions cannot resume
// audio the emulator still expects to be silent.
type AudioGate struct {
	paused atomic.Bool
}

func (g *AudioGate) Pause() {
	if g.paused.CompareAndSwap(false, true) {
		sdl.PauseAudio(true)
	}
}

func (g *AudioGate) Resume() {
	if g.paused.CompareAndSwap(true, false) {
		sdl.PauseAudio(false)
	}
}
