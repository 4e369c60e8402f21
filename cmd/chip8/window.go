package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/emulator"
	"github.com/ezrec/chip8/io"
)

// window runs the emulator one frame per ebiten update.
type window struct {
	emu     *emulator.Emulator
	palette io.Palette
	keys    map[ebiten.Key]string // Host key to keymap name.
	scale   int
	status  bool // Show the status line, toggled by Tab.

	canvas *ebiten.Image // DISPLAY_WIDTH x DISPLAY_HEIGHT, reused
	pix    []byte        // RGBA of the last changed frame
}

// keyBindings resolves keymap names against the ebiten key names.
// Digit and arrow keys also match without their prefix, so "1" binds
// Digit1 and "up" binds ArrowUp.
func keyBindings(keymap io.Keymap) (keys map[ebiten.Key]string) {
	keys = map[ebiten.Key]string{}
	for key := ebiten.Key(0); key <= ebiten.KeyMax; key++ {
		name := strings.ToLower(key.String())
		for _, alias := range []string{name, strings.TrimPrefix(name, "digit"), strings.TrimPrefix(name, "arrow")} {
			if _, ok := keymap.Lookup(alias); ok {
				keys[key] = alias
				break
			}
		}
	}

	return
}

func newWindow(emu *emulator.Emulator) (w *window) {
	w = &window{
		emu:     emu,
		palette: io.Palette{Foreground: emu.Config.Foreground, Background: emu.Config.Background},
		keys:    keyBindings(emu.Config.Keymap),
		scale:   emu.Config.Scale,
		pix:     make([]byte, cpu.DISPLAY_WIDTH*cpu.DISPLAY_HEIGHT*4),
	}

	w.palette.Render(emu.Snapshot(), w.pix)
	return
}

func (w *window) Update() (err error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		w.status = !w.status
	}

	for key, name := range w.keys {
		switch {
		case inpututil.IsKeyJustPressed(key):
			err = w.emu.HostKey(name, true)
		case inpututil.IsKeyJustReleased(key):
			err = w.emu.HostKey(name, false)
		}
		if err != nil {
			return
		}
	}

	frame, err := w.emu.Frame()
	if err != nil {
		return
	}

	if frame.Changed {
		w.palette.Render(frame, w.pix)
	}

	return
}

func (w *window) Draw(screen *ebiten.Image) {
	if w.canvas == nil {
		w.canvas = ebiten.NewImage(cpu.DISPLAY_WIDTH, cpu.DISPLAY_HEIGHT)
	}

	w.canvas.WritePixels(w.pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.canvas, op)

	if w.status {
		ebitenutil.DebugPrintAt(screen, w.emu.Status().String(), 2, 2)
	}
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cpu.DISPLAY_WIDTH * w.scale, cpu.DISPLAY_HEIGHT * w.scale
}

// runWindow runs the emulator in a window until it is closed or Escape
// is pressed. Updates run at the timer rate.
func runWindow(emu *emulator.Emulator, title string) (err error) {
	w := newWindow(emu)

	ebiten.SetTPS(emu.Config.TimerHz)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cpu.DISPLAY_WIDTH*w.scale, cpu.DISPLAY_HEIGHT*w.scale)
	ebiten.SetWindowTitle("chip8: " + title)

	err = ebiten.RunGame(w)
	return
}
