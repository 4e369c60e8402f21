package io

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/bmp"

	"github.com/ezrec/chip8/cpu"
)

func testFrame() (frame cpu.Frame) {
	frame.Pixel[0][0] = true
	frame.Pixel[31][63] = true
	frame.Pixel[1][2] = true
	return
}

func TestPalette_Image(t *testing.T) {
	assert := assert.New(t)

	pal := Palette{Foreground: 0x33ff66, Background: 0x102030}
	img := pal.Image(testFrame())

	fg := color.RGBA{0x33, 0xff, 0x66, 0xff}
	bg := color.RGBA{0x10, 0x20, 0x30, 0xff}

	assert.Equal(image.Rect(0, 0, 64, 32), img.Bounds())
	assert.Equal(fg, img.RGBAAt(0, 0))
	assert.Equal(fg, img.RGBAAt(63, 31))
	assert.Equal(fg, img.RGBAAt(2, 1))
	assert.Equal(bg, img.RGBAAt(1, 2))
	assert.Equal(bg, img.RGBAAt(1, 0))
}

func TestPalette_Scaled(t *testing.T) {
	assert := assert.New(t)

	pal := Palette{Foreground: 0xffffff}
	img := pal.Scaled(testFrame(), 3)

	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	black := color.RGBA{0, 0, 0, 0xff}

	assert.Equal(image.Rect(0, 0, 192, 96), img.Bounds())
	for y := range 3 {
		for x := range 3 {
			assert.Equal(white, img.RGBAAt(x, y))
			assert.Equal(white, img.RGBAAt(189+x, 93+y))
			assert.Equal(white, img.RGBAAt(6+x, 3+y))
		}
	}
	assert.Equal(black, img.RGBAAt(3, 0))
	assert.Equal(black, img.RGBAAt(0, 3))

	img = pal.Scaled(testFrame(), 1)
	assert.Equal(image.Rect(0, 0, 64, 32), img.Bounds())
}

func TestPalette_WriteImage(t *testing.T) {
	assert := assert.New(t)

	pal := Palette{Foreground: 0xffffff}

	table := [](struct {
		name   string
		decode func(r *bytes.Reader) (image.Image, error)
	}){
		{"frame.png", func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) }},
		{"FRAME.PNG", func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) }},
		{"frame", func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) }},
		{"frame.bmp", func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) }},
	}

	for _, entry := range table {
		var buf bytes.Buffer
		err := pal.WriteImage(&buf, entry.name, testFrame(), 2)
		if !assert.NoError(err, entry.name) {
			continue
		}

		img, err := entry.decode(bytes.NewReader(buf.Bytes()))
		if !assert.NoError(err, entry.name) {
			continue
		}
		assert.Equal(image.Rect(0, 0, 128, 64), img.Bounds(), entry.name)

		r, g, b, _ := img.At(1, 1).RGBA()
		assert.Equal([]uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b}, entry.name)
		r, g, b, _ = img.At(2, 0).RGBA()
		assert.Equal([]uint32{0, 0, 0}, []uint32{r, g, b}, entry.name)
	}
}
