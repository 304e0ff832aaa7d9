// Package imageio turns a rendered film into an on-disk PNG.
package imageio

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yunhao-qian/light2d/pkg/renderer"
)

// Gamma is the default gamma used when encoding a film to 8-bit color.
const Gamma = 2.2

// WritePNG gamma-corrects, clips, and casts the film's linear radiance
// to 8-bit color, flips it vertically (the film's row 0 is the
// world-space bottom, but image.RGBA's row 0 is the top), and writes
// it as a PNG to w.
func WritePNG(w io.Writer, film renderer.Film) error {
	img := image.NewRGBA(image.Rect(0, 0, film.Width, film.Height))
	for row := 0; row < film.Height; row++ {
		imgRow := film.Height - 1 - row // flip: film row 0 (bottom) -> image's last row
		for col := 0; col < film.Width; col++ {
			pixel := film.At(row, col).Clamp(0, 1).GammaCorrect(Gamma)
			img.Set(col, imgRow, color.RGBA{
				R: to8Bit(pixel.R),
				G: to8Bit(pixel.G),
				B: to8Bit(pixel.B),
				A: 255,
			})
		}
	}
	return png.Encode(w, img)
}

func to8Bit(channel float64) uint8 {
	return uint8(channel*255 + 0.5)
}
