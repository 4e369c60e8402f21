package cpu

import (
	"strings"
)

const (
	DISPLAY_WIDTH  = 64 // Pixels per row.
	DISPLAY_HEIGHT = 32 // Rows.
)

// Pixels is a monochrome pixel grid, indexed [y][x].
type Pixels [DISPLAY_HEIGHT][DISPLAY_WIDTH]bool

// Display is the framebuffer, with a flag recording changes since the
// last snapshot.
type Display struct {
	Pixel Pixels
	Dirty bool
}

// Frame is a read-only snapshot of the display.
type Frame struct {
	Pixel   Pixels
	Changed bool // Set if the display changed since the previous snapshot.
}

// Clear turns off every pixel.
func (d *Display) Clear() {
	d.Pixel = Pixels{}
	d.Dirty = true
}

// Sprite XORs 8 pixel wide rows onto the display at (x, y), wrapping at
// the edges. Returns true if any lit pixel was turned off.
func (d *Display) Sprite(x, y uint8, rows []byte) (collision bool) {
	for r, bits := range rows {
		py := (int(y) + r) % DISPLAY_HEIGHT
		for c := range 8 {
			if bits&(0x80>>c) == 0 {
				continue
			}
			px := (int(x) + c) % DISPLAY_WIDTH
			if d.Pixel[py][px] {
				collision = true
			}
			d.Pixel[py][px] = !d.Pixel[py][px]
		}
	}

	d.Dirty = true
	return
}

// Snapshot copies the display and clears the dirty flag.
func (d *Display) Snapshot() (frame Frame) {
	frame = Frame{Pixel: d.Pixel, Changed: d.Dirty}
	d.Dirty = false
	return
}

// Lit returns the number of pixels turned on.
func (frame Frame) Lit() (count int) {
	for _, row := range frame.Pixel {
		for _, on := range row {
			if on {
				count++
			}
		}
	}
	return
}

// String renders the frame as rows of '#' (on) and '.' (off).
func (frame Frame) String() string {
	var sb strings.Builder
	sb.Grow(DISPLAY_HEIGHT * (DISPLAY_WIDTH + 1))
	for _, row := range frame.Pixel {
		for _, on := range row {
			if on {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
