package main

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/sway"
	"github.com/phanxgames/sway/preset"
)

const (
	frameTime  = 16 * time.Millisecond // ~60 FPS
	labelWidth = 18
	headerRows = 2
)

var (
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTrack  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleMarker = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleFlash  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// term renders a board and routes keys to its animator.
type term struct {
	screen tcell.Screen
	board  *board
	anim   *sway.Animator[board]
	sound  *chime
	sink   sway.EventSink

	// Preset mode only.
	lib     *preset.Library
	path    string
	name    string
	lenses  preset.Lenses[board]
	status  string
	lastErr error
}

func newTerm(screen tcell.Screen, b *board, root sway.Tweenable[board], sound *chime) *term {
	t := &term{
		screen: screen,
		board:  b,
		anim:   sway.NewAnimator(root),
		sound:  sound,
	}
	t.sink = sway.SinkFunc(t.completed)
	return t
}

func (t *term) completed(ev sway.TweenCompleted) {
	row := int(ev.UserData)
	if t.board.flash(row) {
		t.sound.play(row)
	}
}

func (t *term) update(dt time.Duration) {
	t.board.decay(dt)
	t.anim.Tick(dt, t.board, 0, t.sink)
}

func (t *term) reset() {
	t.board.clear()
	t.anim.Reset()
}

// reload rebuilds the animation from the preset file after an edit.
func (t *term) reload() {
	if t.lib == nil {
		return
	}
	if err := t.lib.Reload(t.path); err != nil {
		t.lastErr = err
		return
	}
	root, err := preset.Build(t.lib, t.name, t.lenses)
	if err != nil {
		t.lastErr = err
		return
	}
	t.lastErr = nil
	t.board.clear()
	t.anim.SetTweenable(root)
	t.status = "reloaded " + t.name
}

// handleKey returns false when the program should exit.
func (t *term) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			if t.anim.State() == sway.Playing {
				t.anim.Pause()
			} else {
				t.anim.Play()
			}
		case 'r':
			t.reset()
		case '+':
			t.anim.SetSpeed(t.anim.Speed() * 2)
		case '-':
			t.anim.SetSpeed(t.anim.Speed() / 2)
		}
	}
	return true
}

func (t *term) draw() {
	t.screen.Clear()
	w, h := t.screen.Size()

	status := fmt.Sprintf(" %s x%.2f  %3.0f%%  space pause  r reset  +/- speed  q quit ",
		t.anim.State(), t.anim.Speed(), t.anim.Progress()*100)
	if t.status != "" {
		status += " " + t.status + " "
	}
	t.text(0, 0, status, styleStatus)
	if t.lastErr != nil {
		t.text(0, 1, t.lastErr.Error(), styleError)
	}

	trackW := w - labelWidth - 1
	for i, label := range t.board.Labels {
		y := headerRows + i
		if y >= h {
			break
		}
		t.text(0, y, label, styleLabel)
		for x := 0; x < trackW; x++ {
			t.screen.SetContent(labelWidth+x, y, '·', nil, styleTrack)
		}
		if trackW <= 0 {
			continue
		}
		style := styleMarker
		if t.board.Flash[i] > 0 {
			style = styleFlash
		}
		t.screen.SetContent(labelWidth+markerColumn(t.board.Pos[i], trackW), y, '●', nil, style)
	}
	t.screen.Show()
}

func (t *term) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// markerColumn maps a position to a track column, clamping overshoot.
func markerColumn(pos float32, width int) int {
	col := int(math.Round(float64(pos) * float64(width-1)))
	if col < 0 {
		return 0
	}
	if col >= width {
		return width - 1
	}
	return col
}

func (t *term) run(reloads <-chan string) {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !t.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case path, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			if filepath.Clean(path) == t.path {
				t.reload()
			}
		case now := <-ticker.C:
			t.update(now.Sub(last))
			last = now
			t.draw()
		}
	}
}
