package io

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/ezrec/chip8/cpu"
)

// Palette colors a frame. Colors are 0xRRGGBB.
type Palette struct {
	Foreground uint32
	Background uint32
}

func rgba(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// Image renders a frame at one image pixel per display pixel.
func (pal Palette) Image(frame cpu.Frame) (img *image.RGBA) {
	img = image.NewRGBA(image.Rect(0, 0, cpu.DISPLAY_WIDTH, cpu.DISPLAY_HEIGHT))
	pal.Render(frame, img.Pix)
	return
}

// Render writes the frame as RGBA bytes, row by row, into pix.
// pix must hold at least DISPLAY_WIDTH * DISPLAY_HEIGHT * 4 bytes.
func (pal Palette) Render(frame cpu.Frame, pix []byte) {
	fg, bg := rgba(pal.Foreground), rgba(pal.Background)
	for y, row := range frame.Pixel {
		for x, on := range row {
			c := bg
			if on {
				c = fg
			}
			n := (y*cpu.DISPLAY_WIDTH + x) * 4
			pix[n+0] = c.R
			pix[n+1] = c.G
			pix[n+2] = c.B
			pix[n+3] = c.A
		}
	}
}

// Scaled renders a frame with each display pixel as a scale x scale block.
func (pal Palette) Scaled(frame cpu.Frame, scale int) (img *image.RGBA) {
	src := pal.Image(frame)
	if scale <= 1 {
		return src
	}

	img = image.NewRGBA(image.Rect(0, 0, cpu.DISPLAY_WIDTH*scale, cpu.DISPLAY_HEIGHT*scale))
	draw.NearestNeighbor.Scale(img, img.Bounds(), src, src.Bounds(), draw.Src, nil)
	return
}

// WriteImage encodes a scaled frame. A name ending in ".bmp" selects BMP,
// anything else PNG.
func (pal Palette) WriteImage(w io.Writer, name string, frame cpu.Frame, scale int) (err error) {
	img := pal.Scaled(frame, scale)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".bmp":
		err = bmp.Encode(w, img)
	default:
		err = png.Encode(w, img)
	}

	return
}
