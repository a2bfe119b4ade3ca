package salayouts

import (
	"oss.terrastruct.com/smartart/lib/go2"
	"oss.terrastruct.com/smartart/sagraph"
)

// layoutPyramid stacks one horizontally centered level per node. The
// first node is the apex; level widths interpolate linearly from the
// apex width to the full bounds width over n-1 steps. linDir=fromT
// puts the apex on top, fromB at the bottom.
func layoutPyramid(nodes []*sagraph.TreeNode, ctx *LayoutContext) *LayoutResult {
	n := len(nodes)
	if n == 0 {
		return emptyResult()
	}

	sp := ctx.Spacing()
	bounds := ctx.Bounds
	apexWidth := go2.Min(ctx.NodeWidth(), bounds.Width)

	levelHeight := (bounds.Height - float64(n-1)*sp) / float64(n)
	if levelHeight < 0 {
		levelHeight = 0
	}

	apexOnTop := ctx.Param("linDir", "fromT") != "fromB"

	out := make([]*LayoutNode, 0, n)
	for i, tn := range nodes {
		var t float64
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		width := apexWidth + (bounds.Width-apexWidth)*t

		level := i
		if !apexOnTop {
			level = n - 1 - i
		}
		y := bounds.TopLeft.Y + float64(level)*(levelHeight+sp)

		out = append(out, &LayoutNode{
			TreeNode: tn,
			X:        alignHorizontal(bounds, width, "ctr"),
			Y:        y,
			Width:    width,
			Height:   levelHeight,
		})
	}

	return &LayoutResult{Nodes: out, Bounds: resultBounds(out)}
}
