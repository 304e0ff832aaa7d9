// Package renderer assembles a film by dispatching independent pixel
// tiles to a worker pool.
package renderer

import "github.com/yunhao-qian/light2d/pkg/core"

// Film is a grid of radiance values, row 0 representing the
// world-space bottom row of the render region.
type Film struct {
	Width, Height int
	Pixels        []core.Spectrum // row-major, length Width*Height
}

// NewFilm allocates a zeroed film of the given size.
func NewFilm(width, height int) Film {
	return Film{Width: width, Height: height, Pixels: make([]core.Spectrum, width*height)}
}

// At returns the pixel at (row, col).
func (f Film) At(row, col int) core.Spectrum {
	return f.Pixels[row*f.Width+col]
}

// Set writes the pixel at (row, col).
func (f Film) Set(row, col int, value core.Spectrum) {
	f.Pixels[row*f.Width+col] = value
}
