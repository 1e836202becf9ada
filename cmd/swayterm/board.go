package main

import (
	"fmt"
	"time"

	"github.com/phanxgames/sway"
	"github.com/phanxgames/sway/preset"
)

const flashTime = 250 * time.Millisecond

// board is the animated target: one marker per row, each at a position in
// [0, 1] along its track. Overshooting curves may leave that range briefly.
type board struct {
	Labels []string
	Pos    []float32
	Flash  []time.Duration
}

func newBoard(labels []string) *board {
	return &board{
		Labels: labels,
		Pos:    make([]float32, len(labels)),
		Flash:  make([]time.Duration, len(labels)),
	}
}

func easeLabels() []string {
	fns := sway.EaseFunctions()
	labels := make([]string, len(fns))
	for i, fn := range fns {
		labels[i] = fn.String()
	}
	return labels
}

func slotLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("#%d", i)
	}
	return labels
}

// Clone copies the slices so the start snapshot does not alias the live rows.
func (b board) Clone() board {
	return board{
		Labels: b.Labels,
		Pos:    append([]float32(nil), b.Pos...),
		Flash:  append([]time.Duration(nil), b.Flash...),
	}
}

func (b *board) flash(row int) bool {
	if row < 0 || row >= len(b.Flash) {
		return false
	}
	b.Flash[row] = flashTime
	return true
}

func (b *board) decay(dt time.Duration) {
	for i, f := range b.Flash {
		if f > dt {
			b.Flash[i] = f - dt
		} else {
			b.Flash[i] = 0
		}
	}
}

func (b *board) clear() {
	clear(b.Pos)
	clear(b.Flash)
}

// markerLens moves the marker of one row toward to.
func markerLens(row int, to float32) sway.Lens[board] {
	return sway.LensFunc[board](func(b, start *board, r float32) {
		b.Pos[row] = sway.Lerp(start.Pos[row], to, r)
	})
}

// curveTracks plays every built-in curve side by side, one row each. Each
// row's tween reports its row index as user data.
func curveTracks(repeat sway.RepeatPolicy, count int, d time.Duration) (sway.Tweenable[board], error) {
	fns := sway.EaseFunctions()
	members := make([]sway.Tweenable[board], len(fns))
	for i, fn := range fns {
		tw, err := sway.NewTween(sway.Easing(fn), repeat, d, markerLens(i, 1))
		if err != nil {
			return nil, err
		}
		members[i] = tw.WithRepeatCount(count).WithCompletedEvent(uint64(i))
	}
	return sway.NewTracks(members...)
}

// boardLenses resolves the lens names a preset file may use:
//
//	marker: {row: 3, to: 1}
func boardLenses(rows int) preset.Lenses[board] {
	return preset.Lenses[board]{
		"marker": func(p map[string]float64) (sway.Lens[board], error) {
			if err := preset.RequireParams(p, "row"); err != nil {
				return nil, err
			}
			row := int(p["row"])
			if row < 0 || row >= rows {
				return nil, fmt.Errorf("row %d out of range [0, %d)", row, rows)
			}
			return markerLens(row, float32(preset.Param(p, "to", 1))), nil
		},
	}
}
