// Command swayterm draws every easing curve as a moving marker in the
// terminal. With -preset it plays a named preset instead and reloads it
// whenever the file changes.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/sway"
	"github.com/phanxgames/sway/preset"
)

func main() {
	duration := flag.Duration("duration", 2*time.Second, "cycle duration of each curve")
	repeat := flag.String("repeat", "PingPong", "repeat policy: Once, Loop or PingPong")
	count := flag.Int("count", 0, "cycles before stopping; 0 repeats forever")
	presetPath := flag.String("preset", "", "YAML preset file to play instead of the curve list")
	presetName := flag.String("name", "", "preset to play from -preset")
	rows := flag.Int("rows", 8, "marker rows available to presets")
	mute := flag.Bool("mute", false, "disable completion chimes")
	logPath := flag.String("log", "", "append animator debug lines to this file")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "swayterm: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		sway.SetDebugOutput(f)
		sway.SetDebugMode(true)
	}

	var (
		b     *board
		root  sway.Tweenable[board]
		lib   *preset.Library
		err   error
		watch *preset.Watcher
	)
	if *presetPath != "" {
		*presetPath = filepath.Clean(*presetPath)
		b = newBoard(slotLabels(*rows))
		lib = preset.NewLibrary()
		if err = lib.LoadFile(*presetPath); err == nil {
			if *presetName == "" {
				*presetName = lib.Names()[0]
			}
			root, err = preset.Build(lib, *presetName, boardLenses(*rows))
		}
		if err == nil {
			watch, err = preset.NewWatcher(filepath.Dir(*presetPath))
		}
	} else {
		b = newBoard(easeLabels())
		var policy sway.RepeatPolicy
		if policy, err = sway.ParseRepeatPolicy(*repeat); err == nil {
			root, err = curveTracks(policy, *count, *duration)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "swayterm: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	sound := newChime(*mute)
	t := newTerm(screen, b, root, sound)

	var reloads <-chan string
	if watch != nil {
		defer watch.Close()
		t.lib, t.name, t.lenses = lib, *presetName, boardLenses(*rows)
		t.path = *presetPath
		reloads = watch.Events
	}

	t.run(reloads)
	sound.close()
	screen.Fini()
}
