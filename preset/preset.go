// Package preset loads named animation trees from YAML.
//
// A preset file maps names to nodes. A node is exactly one of tween, delay,
// sequence or tracks:
//
//	presets:
//	  pulse:
//	    tween: {ease: sine_in_out, repeat: ping_pong, duration: 400ms, lens: scale, params: {to: 1.2}}
//	  intro:
//	    event: 1
//	    sequence:
//	      - tween: {ease: quadratic_out, duration: 1s, lens: fade, params: {to: 1}}
//	      - delay: 250ms
//	      - tracks:
//	          - tween: {ease: back_out, duration: 600ms, lens: slide, params: {x: 120}}
//	          - tween: {script: "t * t * (3 - 2 * t)", duration: 600ms, lens: scale, params: {to: 1}}
//	  pop:
//	    tween: {spring: {frequency: 14, damping: 0.35}, duration: 800ms, lens: scale, params: {to: 1}}
//
// Lens names are resolved against a caller-supplied [Lenses] registry when a
// preset is built, so the same file can serve any target type.
package preset

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration written as a Go duration string ("750ms").
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(v)
	return nil
}

// TweenDef describes a single tween.
type TweenDef struct {
	// Ease names a built-in curve; defaults to Linear.
	Ease string `yaml:"ease"`
	// Script is a Tengo easing expression; it takes precedence over Ease
	// and Spring.
	Script string `yaml:"script"`
	// Spring replaces Ease with a damped spring response.
	Spring   *SpringDef         `yaml:"spring"`
	Repeat   string             `yaml:"repeat"`
	Count    int                `yaml:"count"`
	Duration Duration           `yaml:"duration"`
	Backward bool               `yaml:"backward"`
	Lens     string             `yaml:"lens"`
	Params   map[string]float64 `yaml:"params"`
	Event    *uint64            `yaml:"event"`
}

// SpringDef parameterizes a spring easing curve.
type SpringDef struct {
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}

// Node is one element of a preset tree.
type Node struct {
	Tween    *TweenDef `yaml:"tween"`
	Delay    *Duration `yaml:"delay"`
	Sequence []Node    `yaml:"sequence"`
	Tracks   []Node    `yaml:"tracks"`
	// Event applies to delay, sequence and tracks nodes; tweens carry their own.
	Event *uint64 `yaml:"event"`
}

type file struct {
	Presets map[string]Node `yaml:"presets"`
}

// Validate checks the node's shape. It does not resolve lens or ease names.
func (n Node) Validate() error {
	kinds := 0
	if n.Tween != nil {
		kinds++
	}
	if n.Delay != nil {
		kinds++
	}
	if n.Sequence != nil {
		kinds++
	}
	if n.Tracks != nil {
		kinds++
	}
	if kinds != 1 {
		return fmt.Errorf("node must set exactly one of tween, delay, sequence, tracks (got %d)", kinds)
	}
	switch {
	case n.Tween != nil:
		if n.Tween.Duration <= 0 {
			return fmt.Errorf("tween: duration must be positive")
		}
		if n.Tween.Lens == "" {
			return fmt.Errorf("tween: lens is required")
		}
	case n.Delay != nil:
		if *n.Delay <= 0 {
			return fmt.Errorf("delay: duration must be positive")
		}
	case n.Sequence != nil:
		if len(n.Sequence) == 0 {
			return fmt.Errorf("sequence: no steps")
		}
		for i, c := range n.Sequence {
			if err := c.Validate(); err != nil {
				return fmt.Errorf("sequence[%d]: %w", i, err)
			}
		}
	case n.Tracks != nil:
		if len(n.Tracks) == 0 {
			return fmt.Errorf("tracks: no members")
		}
		for i, c := range n.Tracks {
			if err := c.Validate(); err != nil {
				return fmt.Errorf("tracks[%d]: %w", i, err)
			}
		}
	}
	return nil
}

// Library holds presets loaded from one or more files. It is safe for
// concurrent use so a watcher goroutine can reload while systems build.
type Library struct {
	mu      sync.RWMutex
	presets map[string]Node
	origin  map[string]string // preset name -> source
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		presets: make(map[string]Node),
		origin:  make(map[string]string),
	}
}

// Load parses YAML data and adds its presets under the given source name.
// Presets previously loaded from the same source are replaced as a whole, so
// reloading an edited file drops presets that were removed from it. On error
// the library is left unchanged.
func (l *Library) Load(source string, data []byte) error {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("preset: unmarshal %s: %w", source, err)
	}
	if len(f.Presets) == 0 {
		return fmt.Errorf("preset: %s: no presets", source)
	}
	for name, n := range f.Presets {
		if err := n.Validate(); err != nil {
			return fmt.Errorf("preset: %s: %s: %w", source, name, err)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for name := range f.Presets {
		if src, ok := l.origin[name]; ok && src != source {
			return fmt.Errorf("preset: %s: %q already defined in %s", source, name, src)
		}
	}
	l.forgetLocked(source)
	for name, n := range f.Presets {
		l.presets[name] = n
		l.origin[name] = source
	}
	return nil
}

func (l *Library) forgetLocked(source string) {
	for name, src := range l.origin {
		if src == source {
			delete(l.presets, name)
			delete(l.origin, name)
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadFile reads and loads a preset file; the path is the source name.
func (l *Library) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("preset: load %s: %w", path, err)
	}
	return l.Load(path, data)
}

// Preset returns the named preset.
func (l *Library) Preset(name string) (Node, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n, ok := l.presets[name]
	return n, ok
}

// Names returns all preset names, sorted.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.presets))
	for name := range l.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
