package braciole

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

// drawnText records one DrawOutlinedText call.
type drawnText struct {
	Text    string
	FG      Color
	Outline Color
	X, Y    int
}

// fakeRenderer measures text at a fixed 8x16 per character and records
// what the current frame drew. FillBackground starts a new frame.
type fakeRenderer struct {
	texts    []drawnText
	fills    int
	presents int
}

func (r *fakeRenderer) TextWidth(text string) int  { return 8 * len(text) }
func (r *fakeRenderer) TextHeight(text string) int { return 16 }

func (r *fakeRenderer) DrawOutlinedText(text string, fg, outline Color, x, y int) {
	r.texts = append(r.texts, drawnText{Text: text, FG: fg, Outline: outline, X: x, Y: y})
}

func (r *fakeRenderer) FillBackground(Color) {
	r.fills++
	r.texts = r.texts[:0]
}

func (r *fakeRenderer) Present()         { r.presents++ }
func (r *fakeRenderer) Size() (int, int) { return 320, 240 }

func (r *fakeRenderer) drewText(text string) bool {
	for _, d := range r.texts {
		if d.Text == text {
			return true
		}
	}
	return false
}

// scriptedInput replays fixed sequences. Exhausted scripts yield
// ActionNone and an empty button mask.
type scriptedInput struct {
	actions []Action
	buttons []Buttons
}

func (in *scriptedInput) PollAction() Action {
	if len(in.actions) == 0 {
		return ActionNone
	}
	a := in.actions[0]
	in.actions = in.actions[1:]
	return a
}

func (in *scriptedInput) PressedButtons() Buttons {
	if len(in.buttons) == 0 {
		return 0
	}
	b := in.buttons[0]
	in.buttons = in.buttons[1:]
	return b
}

type fakeMachine struct {
	resets int
	exits  int
}

func (m *fakeMachine) Reset()       { m.resets++ }
func (m *fakeMachine) RequestExit() { m.exits++ }

type fakeAudio struct {
	pauses  int
	resumes int
}

func (a *fakeAudio) Pause()  { a.pauses++ }
func (a *fakeAudio) Resume() { a.resumes++ }

func newTestSession(t *testing.T, root *Menu, in Input) (*Session, *fakeRenderer) {
	t.Helper()
	if in == nil {
		in = &scriptedInput{}
	}
	r := &fakeRenderer{}
	s, err := NewSession(root, SessionConfig{
		Renderer: r,
		Input:    in,
		Sleep:    func(time.Duration) {},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, r
}
