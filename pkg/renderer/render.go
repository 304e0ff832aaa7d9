package renderer

import (
	"math/rand"
	"runtime"

	"github.com/yunhao-qian/light2d/pkg/core"
	"github.com/yunhao-qian/light2d/pkg/integrator"
)

// ConfigError reports an invalid Render parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "renderer: invalid " + e.Field + ": " + e.Reason
}

// Render produces a film of the given pixel size by sampling
// integrator over region, split into an nTiles x nTiles grid of
// independently-seeded tiles dispatched to a worker pool. Each tile
// seed is drawn from a master RNG seeded by masterSeed before
// dispatch, so reusing the same masterSeed reproduces a bit-identical
// film. The aspect ratio of the film is not required to match that of
// region; a mismatch silently produces non-square pixels rather than
// an error, per this renderer's external contract.
func Render(
	integ integrator.Integrator,
	region core.Region,
	filmWidth, filmHeight int,
	nTiles int,
	masterSeed int64,
) (Film, error) {
	if !region.Valid() {
		return Film{}, &ConfigError{Field: "region", Reason: "must have positive width and height"}
	}
	if filmWidth <= 0 || filmHeight <= 0 {
		return Film{}, &ConfigError{Field: "filmSize", Reason: "width and height must be positive"}
	}
	if nTiles <= 0 {
		return Film{}, &ConfigError{Field: "nTiles", Reason: "must be positive"}
	}

	grid := tiles(region, filmWidth, filmHeight, nTiles)

	master := rand.New(rand.NewSource(masterSeed))
	tasks := make([]tileTask, len(grid))
	for i, tile := range grid {
		tasks[i] = tileTask{index: i, tile: tile, seed: master.Int63()}
	}

	results := runWorkerPool(integ, tasks, runtime.NumCPU())

	film := NewFilm(filmWidth, filmHeight)
	for _, result := range results {
		if result.err != nil {
			return Film{}, result.err
		}
		writeTile(&film, result.tile, result.pixels)
	}
	return film, nil
}

func writeTile(film *Film, tile Tile, pixels []core.Spectrum) {
	cols := tile.ColEnd - tile.ColStart
	for row := tile.RowStart; row < tile.RowEnd; row++ {
		for col := tile.ColStart; col < tile.ColEnd; col++ {
			film.Set(row, col, pixels[(row-tile.RowStart)*cols+(col-tile.ColStart)])
		}
	}
}
