package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-dodger/internal/core"
)

// fakeGame ends after overAt steps and records what it was given.
type fakeGame struct {
	overAt int
	steps  int
	resets int
	seed   int64
	dts    []float64
	frames []core.InputFrame
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seed = cfg.Seed
	g.steps = 0
}

func (g *fakeGame) Step(dt float64, in core.InputFrame) core.StepResult {
	g.steps++
	g.dts = append(g.dts, dt)
	g.frames = append(g.frames, in)
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE", core.ColorWhite)
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{
		Score:    g.steps * 10,
		Lives:    1,
		GameOver: g.overAt > 0 && g.steps >= g.overAt,
	}
}

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(g *fakeGame) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, DefaultHoldWindow)
	m.now = func() time.Time { return t0 }
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestGameOverReportedOnce(t *testing.T) {
	g := &fakeGame{overAt: 3}
	m := newTestModel(g)

	for i := 0; i < 2; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg(t0.Add(time.Duration(i)*16*time.Millisecond)))
		if cmd == nil {
			t.Fatalf("tick %d: expected next tick to be scheduled", i)
		}
	}

	m, cmd := update(t, m, TickMsg(t0.Add(48*time.Millisecond)))
	if !isQuit(cmd) {
		t.Fatal("expected quit on game over")
	}
	res := m.Result()
	if !res.GameOver || res.Lightyears != 30 {
		t.Errorf("Result() = %+v, expected game over at 30", res)
	}

	m, cmd = update(t, m, TickMsg(t0.Add(64*time.Millisecond)))
	if cmd != nil {
		t.Error("no command expected after game over")
	}
	if g.steps != 3 {
		t.Errorf("game stepped %d times, expected 3", g.steps)
	}
	if m.View() != "" {
		t.Error("view should be empty after game over")
	}
}

func TestFirstTickHasZeroDelta(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, TickMsg(t0))
	update(t, m, TickMsg(t0.Add(20*time.Millisecond)))

	if len(g.dts) != 2 || g.dts[0] != 0 {
		t.Fatalf("dts = %v, expected first delta 0", g.dts)
	}
	if g.dts[1] < 0.0199 || g.dts[1] > 0.0201 {
		t.Errorf("second delta = %v, expected 0.02", g.dts[1])
	}
}

func TestQuitAndCancelKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &fakeGame{}
			m := newTestModel(g)

			m, cmd := update(t, m, tc.msg)
			if !isQuit(cmd) {
				t.Fatal("expected quit command")
			}
			if m.Result().GameOver {
				t.Error("quitting is not a game over")
			}

			_, cmd = update(t, m, TickMsg(t0))
			if cmd != nil || g.steps != 0 {
				t.Error("no frames should run after quitting")
			}
		})
	}
}

func TestKeyHeldWithinWindow(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m, _ = update(t, m, TickMsg(t0.Add(100*time.Millisecond)))
	update(t, m, TickMsg(t0.Add(200*time.Millisecond)))

	if !g.frames[0].Has(core.ActionLeft) {
		t.Error("left should be held 100ms after the press")
	}
	if g.frames[1].Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestShiftedKeyRuns(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		run    bool
	}{
		{"W", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'W'}}, core.ActionUp, true},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionUp, false},
		{"shift+left", tea.KeyMsg{Type: tea.KeyShiftLeft}, core.ActionLeft, true},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"D", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'D'}}, core.ActionRight, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &fakeGame{}
			m := newTestModel(g)

			m, _ = update(t, m, tc.msg)
			update(t, m, TickMsg(t0))

			in := g.frames[0]
			if !in.Has(tc.action) {
				t.Errorf("expected %v held", tc.action)
			}
			if in.Has(core.ActionRun) != tc.run {
				t.Errorf("run = %v, expected %v", in.Has(core.ActionRun), tc.run)
			}
		})
	}
}

func TestResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
}

func TestViewShowsGameAndHelp(t *testing.T) {
	m := newTestModel(&fakeGame{})

	view := m.View()

	if !strings.Contains(view, "FAKE") {
		t.Error("view missing game output")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view missing help footer")
	}
}

func TestRunReleasedByUnshiftedKey(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'W'}})
	m.now = func() time.Time { return t0.Add(50 * time.Millisecond) }
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	update(t, m, TickMsg(t0.Add(60*time.Millisecond)))

	in := g.frames[0]
	if !in.Has(core.ActionLeft) {
		t.Error("left should be held")
	}
	if in.Has(core.ActionRun) {
		t.Error("run should be released by a lowercase key")
	}
}

func TestZeroSeedUsesTime(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}, DefaultHoldWindow)
	m.Init()

	if g.seed == 0 {
		t.Error("seed 0 should be replaced before the game is reset")
	}

	g = &fakeGame{}
	m = NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 99}, DefaultHoldWindow)
	m.Init()
	if g.seed != 99 {
		t.Errorf("seed = %d, expected 99", g.seed)
	}
}

func TestTickIntervalFollowsRate(t *testing.T) {
	m := NewModel(&fakeGame{}, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1}, DefaultHoldWindow)

	if got := m.clock.Interval(); got != time.Second/30 {
		t.Errorf("frame interval = %v, expected %v", got, time.Second/30)
	}
}
