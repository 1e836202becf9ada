package preset

import (
	"fmt"
	"sort"
	"time"

	"github.com/phanxgames/sway"
	"github.com/phanxgames/sway/script"
	"github.com/phanxgames/sway/spring"
)

// LensFactory builds a lens from the params map of a tween definition.
type LensFactory[T any] func(params map[string]float64) (sway.Lens[T], error)

// Lenses maps the lens names used in preset files to factories for target
// type T.
type Lenses[T any] map[string]LensFactory[T]

// Build constructs a fresh Tweenable tree from the named preset. Every call
// returns independent state, so one preset can drive many targets.
func Build[T any](lib *Library, name string, lenses Lenses[T]) (sway.Tweenable[T], error) {
	n, ok := lib.Preset(name)
	if !ok {
		return nil, fmt.Errorf("preset: unknown preset %q", name)
	}
	t, err := BuildNode(n, lenses)
	if err != nil {
		return nil, fmt.Errorf("preset: %s: %w", name, err)
	}
	return t, nil
}

// BuildNode constructs a Tweenable tree from a single node.
func BuildNode[T any](n Node, lenses Lenses[T]) (sway.Tweenable[T], error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	switch {
	case n.Tween != nil:
		return buildTween(n.Tween, lenses)

	case n.Delay != nil:
		d, err := sway.NewDelay[T](time.Duration(*n.Delay))
		if err != nil {
			return nil, err
		}
		if n.Event != nil {
			d.WithCompletedEvent(*n.Event)
		}
		return d, nil

	case n.Sequence != nil:
		steps, err := buildChildren(n.Sequence, lenses, "sequence")
		if err != nil {
			return nil, err
		}
		seq, err := sway.NewSequence(steps...)
		if err != nil {
			return nil, err
		}
		if n.Event != nil {
			seq.WithCompletedEvent(*n.Event)
		}
		return seq, nil

	default:
		members, err := buildChildren(n.Tracks, lenses, "tracks")
		if err != nil {
			return nil, err
		}
		tracks, err := sway.NewTracks(members...)
		if err != nil {
			return nil, err
		}
		if n.Event != nil {
			tracks.WithCompletedEvent(*n.Event)
		}
		return tracks, nil
	}
}

func buildChildren[T any](nodes []Node, lenses Lenses[T], kind string) ([]sway.Tweenable[T], error) {
	out := make([]sway.Tweenable[T], 0, len(nodes))
	for i, c := range nodes {
		t, err := BuildNode(c, lenses)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", kind, i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func buildTween[T any](def *TweenDef, lenses Lenses[T]) (*sway.Tween[T], error) {
	factory, ok := lenses[def.Lens]
	if !ok {
		return nil, fmt.Errorf("tween: unknown lens %q (have %v)", def.Lens, lensNames(lenses))
	}
	lens, err := factory(def.Params)
	if err != nil {
		return nil, fmt.Errorf("tween: lens %q: %w", def.Lens, err)
	}
	easing, err := resolveEasing(def)
	if err != nil {
		return nil, fmt.Errorf("tween: %w", err)
	}
	repeat := sway.Once
	if def.Repeat != "" {
		if repeat, err = sway.ParseRepeatPolicy(def.Repeat); err != nil {
			return nil, fmt.Errorf("tween: %w", err)
		}
	}

	tw, err := sway.NewTween(easing, repeat, time.Duration(def.Duration), lens)
	if err != nil {
		return nil, fmt.Errorf("tween: %w", err)
	}
	if def.Count < 0 {
		return nil, fmt.Errorf("tween: %w", sway.ErrInvalidRepeat)
	}
	tw.WithRepeatCount(def.Count)
	if def.Backward {
		tw.WithDirection(sway.Backward)
	}
	if def.Event != nil {
		tw.WithCompletedEvent(*def.Event)
	}
	return tw, nil
}

func resolveEasing(def *TweenDef) (sway.Easing, error) {
	if def.Script != "" {
		return script.NewEasing(def.Script)
	}
	if def.Spring != nil {
		return spring.NewEasing(def.Spring.Frequency, def.Spring.Damping)
	}
	if def.Ease == "" {
		return sway.Linear, nil
	}
	return sway.ParseEaseFunction(def.Ease)
}

func lensNames[T any](lenses Lenses[T]) []string {
	names := make([]string, 0, len(lenses))
	for name := range lenses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Param returns params[key], or def when the key is absent.
func Param(params map[string]float64, key string, def float64) float64 {
	if v, ok := params[key]; ok {
		return v
	}
	return def
}

// RequireParams returns an error naming the first key missing from params.
func RequireParams(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("missing param %q", k)
		}
	}
	return nil
}
