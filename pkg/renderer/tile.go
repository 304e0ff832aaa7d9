package renderer

import "github.com/yunhao-qian/light2d/pkg/core"

// Tile is one independently-rendered rectangle of pixels together with
// the world-space sub-region it covers.
type Tile struct {
	RowStart, RowEnd int // pixel row range [RowStart, RowEnd)
	ColStart, ColEnd int // pixel column range [ColStart, ColEnd)
	Region           core.Region
}

// partitionRange splits [0, length) into nParts contiguous ranges of
// width ceil(length/nParts), with the last range absorbing whatever
// remainder is left over.
func partitionRange(length, nParts int) []int {
	width := (length + nParts - 1) / nParts
	bounds := make([]int, nParts+1)
	for i := 0; i <= nParts; i++ {
		b := i * width
		if b > length {
			b = length
		}
		bounds[i] = b
	}
	bounds[nParts] = length
	return bounds
}

// tiles partitions a (width, height) film into an nTiles x nTiles grid
// and derives each tile's world-space sub-region from the outer region
// by linearly interpolating against pixel boundaries. Row 0 is the
// world-space bottom, so pixel row maps to increasing world y.
func tiles(region core.Region, width, height, nTiles int) []Tile {
	colBounds := partitionRange(width, nTiles)
	rowBounds := partitionRange(height, nTiles)

	result := make([]Tile, 0, nTiles*nTiles)
	for ti := 0; ti < nTiles; ti++ {
		rowStart, rowEnd := rowBounds[ti], rowBounds[ti+1]
		for tj := 0; tj < nTiles; tj++ {
			colStart, colEnd := colBounds[tj], colBounds[tj+1]

			min := region.Lerp(float64(colStart)/float64(width), float64(rowStart)/float64(height))
			max := region.Lerp(float64(colEnd)/float64(width), float64(rowEnd)/float64(height))

			result = append(result, Tile{
				RowStart: rowStart, RowEnd: rowEnd,
				ColStart: colStart, ColEnd: colEnd,
				Region: core.NewRegion(min, max),
			})
		}
	}
	return result
}
