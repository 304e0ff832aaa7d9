package renderer

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/yunhao-qian/light2d/pkg/core"
	"github.com/yunhao-qian/light2d/pkg/integrator"
)

// tileTask is one unit of dispatched work: everything a worker needs
// to render a tile without touching any state outside this struct.
type tileTask struct {
	index int
	tile  Tile
	seed  int64
}

// tileResult carries a rendered tile's pixels back to the driver, or
// an error if the worker failed.
type tileResult struct {
	index  int
	tile   Tile
	pixels []core.Spectrum
	err    error
}

// renderTile is a pure function of (integrator, tile, seed): it owns
// no shared mutable state, so tiles can be rendered in any order or
// concurrently without affecting each other's output.
func renderTile(integ integrator.Integrator, tile Tile, seed int64) []core.Spectrum {
	rows := tile.RowEnd - tile.RowStart
	cols := tile.ColEnd - tile.ColStart
	pixels := make([]core.Spectrum, rows*cols)

	rng := rand.New(rand.NewSource(seed))

	xs := make([]float64, cols+1)
	for i := range xs {
		xs[i] = tile.Region.Min.X + (tile.Region.Max.X-tile.Region.Min.X)*float64(i)/float64(cols)
	}
	ys := make([]float64, rows+1)
	for i := range ys {
		ys[i] = tile.Region.Min.Y + (tile.Region.Max.Y-tile.Region.Min.Y)*float64(i)/float64(rows)
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pixelRegion := core.NewRegion(
				core.NewVec2(xs[col], ys[row]),
				core.NewVec2(xs[col+1], ys[row+1]),
			)
			pixels[row*cols+col] = integ.Estimate(pixelRegion, rng)
		}
	}

	return pixels
}

// renderTileTask runs one task and recovers a panicking sample so that
// a single bad tile is reported as a fatal error to the caller of
// Render rather than crashing the whole process.
func renderTileTask(integ integrator.Integrator, task tileTask) (result tileResult) {
	result = tileResult{index: task.index, tile: task.tile}
	defer func() {
		if r := recover(); r != nil {
			result.err = fmt.Errorf("renderer: tile %d panicked: %v", task.index, r)
		}
	}()
	result.pixels = renderTile(integ, task.tile, task.seed)
	return result
}

// runWorkerPool dispatches tasks to a fixed number of goroutines, each
// pulling tasks from a shared channel and pure in the sense that no
// task touches another task's state.
func runWorkerPool(integ integrator.Integrator, tasks []tileTask, numWorkers int) []tileResult {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if numWorkers > len(tasks) {
		numWorkers = len(tasks)
	}

	taskQueue := make(chan tileTask, len(tasks))
	resultQueue := make(chan tileResult, len(tasks))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskQueue {
				resultQueue <- renderTileTask(integ, task)
			}
		}()
	}

	for _, task := range tasks {
		taskQueue <- task
	}
	close(taskQueue)

	wg.Wait()
	close(resultQueue)

	results := make([]tileResult, len(tasks))
	for result := range resultQueue {
		results[result.index] = result
	}
	return results
}
