package braciole

import (
	"errors"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/braciole/internal"
	"go.uber.org/atomic"
)

// frameDelay bounds CPU usage on platforms whose presents do not block on
// vertical sync.
const frameDelay = 5 * time.Millisecond

var (
	ErrNoRenderer = errors.New("session requires a renderer")
	ErrNoInput    = errors.New("session requires an input adapter")
)

// SessionConfig wires a Session to its collaborators. Renderer and Input
// are required; everything else has a usable default.
type SessionConfig struct {
	Renderer Renderer
	Input    Input
	Machine  Machine
	Audio    Audio

	// Theme overrides the stock palette when non-nil.
	Theme *Theme

	// Sleep is called once per loop iteration; tests inject a no-op.
	Sleep func(time.Duration)

	Logger *slog.Logger
}

// Session is the navigation state machine. It owns the active menu and,
// through it, the active entry index; both are mutated only by dispatched
// actions and hooks.
type Session struct {
	root     *Menu
	menu     *Menu
	renderer Renderer
	input    Input
	machine  Machine
	audio    Audio
	theme    Theme
	sleep    func(time.Duration)
	logger   *slog.Logger

	running atomic.Bool
}

// NewSession prepares a session rooted at the given menu. The session
// starts on the root menu; Run drives it to completion.
func NewSession(root *Menu, cfg SessionConfig) (*Session, error) {
	if cfg.Renderer == nil {
		return nil, ErrNoRenderer
	}
	if cfg.Input == nil {
		return nil, ErrNoInput
	}

	s := &Session{
		root:     root,
		menu:     root,
		renderer: cfg.Renderer,
		input:    cfg.Input,
		machine:  cfg.Machine,
		audio:    cfg.Audio,
		theme:    DefaultTheme(),
		sleep:    cfg.Sleep,
		logger:   cfg.Logger,
	}
	if cfg.Theme != nil {
		s.theme = *cfg.Theme
	}
	if s.sleep == nil {
		s.sleep = time.Sleep
	}
	if s.logger == nil {
		s.logger = internal.GetLogger()
	}
	return s, nil
}

// Current returns the active menu; nil once the session has terminated.
func (s *Session) Current() *Menu { return s.menu }

// SetCurrent switches the active menu. Hooks call this to descend into a
// submenu or to terminate the session (nil). Lifecycle hooks of the old
// and new menu run after the triggering step completes, not here.
func (s *Session) SetCurrent(m *Menu) { s.menu = m }

// ActiveIndex returns the cursor position within the active menu.
func (s *Session) ActiveIndex() int {
	if s.menu == nil {
		return 0
	}
	return s.menu.ActiveIndex
}

// SetActiveIndex moves the cursor within the active menu.
func (s *Session) SetActiveIndex(i int) {
	if s.menu != nil {
		s.menu.ActiveIndex = i
	}
}

// ActiveEntry returns the entry under the cursor, or nil after
// termination.
func (s *Session) ActiveEntry() *Entry { return s.menu.ActiveEntry() }

// Renderer exposes the drawing surface to display hooks.
func (s *Session) Renderer() Renderer { return s.renderer }

// Machine exposes the emulated machine to action hooks.
func (s *Session) Machine() Machine { return s.machine }

// Theme returns the active color pairings.
func (s *Session) Theme() Theme { return s.theme }

// Logger returns the session's structured logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// Running reports whether a Run loop is in progress. It is safe to call
// from other goroutines (e.g. the power-button watcher).
func (s *Session) Running() bool { return s.running.Load() }

// Step applies one logical action to the navigation state. Entry-level
// hooks (Enter/Left/Right) resolve against the active entry, menu-level
// hooks (Up/Down/Leave) against the active menu; a nil hook falls back to
// the default for that slot. If the step switched menus, the old menu's
// End hook runs, then the new menu's Init hook.
func (s *Session) Step(a Action) {
	if s.menu == nil {
		return
	}
	prev := s.menu

	switch a {
	case ActionEnter:
		if e := s.ActiveEntry(); e != nil {
			hook := e.OnEnter
			if hook == nil {
				hook = defaultEnter
			}
			hook(s)
		}
	case ActionLeave:
		hook := s.menu.OnLeave
		if hook == nil {
			hook = defaultLeave
		}
		hook(s)
	case ActionUp:
		hook := s.menu.OnUp
		if hook == nil {
			hook = defaultUp
		}
		hook(s)
	case ActionDown:
		hook := s.menu.OnDown
		if hook == nil {
			hook = defaultDown
		}
		hook(s)
	case ActionLeft:
		if e := s.ActiveEntry(); e != nil {
			hook := e.OnLeft
			if hook == nil {
				hook = defaultLeft
			}
			hook(s, e)
		}
	case ActionRight:
		if e := s.ActiveEntry(); e != nil {
			hook := e.OnRight
			if hook == nil {
				hook = defaultRight
			}
			hook(s, e)
		}
	}

	if s.menu != prev {
		if prev.End != nil {
			prev.End(s, prev)
		}
		if s.menu != nil && s.menu.Init != nil {
			s.menu.Init(s, s.menu)
		}
	}
}

// Run drives the menu session to completion: pause audio, then poll,
// step and redraw until a hook terminates the session by switching to a
// nil menu. Held buttons are drained before returning so the emulated
// machine does not see the keypress that closed the menu.
func (s *Session) Run() error {
	s.running.Store(true)
	defer s.running.Store(false)

	if s.audio != nil {
		s.audio.Pause()
		defer s.audio.Resume()
	}

	s.menu = s.root
	if s.root != nil && s.root.Init != nil {
		s.root.Init(s, s.root)
	}

	for s.menu != nil {
		s.drawFrame()
		s.renderer.Present()
		s.sleep(frameDelay)
		s.Step(s.input.PollAction())
	}

	for s.input.PressedButtons() != 0 {
		s.renderer.Present()
		s.sleep(frameDelay)
	}
	return nil
}

// drawFrame renders the active menu: background, title, then the entry
// rows, each through its override or default.
func (s *Session) drawFrame() {
	m := s.menu

	background := m.DisplayBackground
	if background == nil {
		background = defaultDisplayBackground
	}
	background(s, m)

	title := m.DisplayTitle
	if title == nil {
		title = defaultDisplayTitle
	}
	title(s, m)

	data := m.DisplayData
	if data == nil {
		data = defaultDisplayData
	}
	data(s, m, m.ActiveEntry())
}
