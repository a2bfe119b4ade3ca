package salayouts

import (
	"math"

	"oss.terrastruct.com/smartart/lib/go2"
	"oss.terrastruct.com/smartart/sagraph"
)

// layoutSnake flows nodes row by row (or column by column) through
// the bounds, starting at the corner given by grDir. With
// contDir=revDir each completed row reverses direction, giving a true
// zig-zag; otherwise all rows flow the same way.
func layoutSnake(nodes []*sagraph.TreeNode, ctx *LayoutContext) *LayoutResult {
	n := len(nodes)
	if n == 0 {
		return emptyResult()
	}

	w := ctx.NodeWidth()
	h := ctx.NodeHeight()
	sp := ctx.Spacing()
	bounds := ctx.Bounds

	byRow := ctx.Param("flowDir", "row") == "row"
	grDir := ctx.Param("grDir", "tL")
	zigzag := ctx.Param("contDir", "sameDir") == "revDir"

	fromRight := grDir == "tR" || grDir == "bR"
	fromBottom := grDir == "bL" || grDir == "bR"

	// nodes per line; formula degrades to 1 for degenerate bounds.
	var perLine int
	if byRow {
		perLine = perLineCount(bounds.Width, w, sp)
	} else {
		perLine = perLineCount(bounds.Height, h, sp)
	}

	out := make([]*LayoutNode, 0, n)
	for i, tn := range nodes {
		line := i / perLine
		cell := i % perLine
		if zigzag && line%2 == 1 {
			cell = perLine - 1 - cell
		}

		var col, row int
		if byRow {
			col, row = cell, line
		} else {
			col, row = line, cell
		}

		x := bounds.TopLeft.X + float64(col)*(w+sp)
		if fromRight {
			x = bounds.TopLeft.X + bounds.Width - w - float64(col)*(w+sp)
		}
		y := bounds.TopLeft.Y + float64(row)*(h+sp)
		if fromBottom {
			y = bounds.TopLeft.Y + bounds.Height - h - float64(row)*(h+sp)
		}

		out = append(out, &LayoutNode{TreeNode: tn, X: x, Y: y, Width: w, Height: h})
	}

	return &LayoutResult{Nodes: out, Bounds: resultBounds(out)}
}

func perLineCount(extent, size, sp float64) int {
	if size+sp <= 0 {
		return 1
	}
	return go2.IntMax(int(math.Floor((extent+sp)/(size+sp))), 1)
}
