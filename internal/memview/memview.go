// Package memview renders a memory image as a PNG bitmap for debugging.
// It has no effect on, and no dependency from, cpu execution semantics;
// it exists so a failing scenario's memory state can be inspected visually
// alongside a go-spew dump of the chip.
package memview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/mpiresgro/cpu-6502-emu/memory"
)

const (
	side  = 256 // one row/column per possible zero-page-style byte value; 256x256 == 65536 bytes
	scale = 2    // upscale factor for the human-viewable PNG
)

// Dump renders mem as a grayscale 256x256 bitmap (one pixel per byte,
// row-major over the 64 KiB address space) upscaled by scale, and returns
// it PNG-encoded.
func Dump(mem memory.Memory) ([]byte, error) {
	src := image.NewGray(image.Rect(0, 0, side, side))
	addr := 0
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			src.SetGray(x, y, color.Gray{Y: mem.Read(uint16(addr))})
			addr++
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, side*scale, side*scale))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
