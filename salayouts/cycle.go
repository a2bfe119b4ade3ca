package salayouts

import (
	"math"

	"oss.terrastruct.com/smartart/lib/geo"
	"oss.terrastruct.com/smartart/lib/go2"
	"oss.terrastruct.com/smartart/sagraph"
)

// layoutCycle places nodes on a ring centered on the bounds. The
// angular walk starts at stAng offset by -90 degrees so angle zero
// sits at 12 o'clock.
func layoutCycle(nodes []*sagraph.TreeNode, ctx *LayoutContext) *LayoutResult {
	n := len(nodes)
	if n == 0 {
		return emptyResult()
	}

	w := ctx.NodeWidth()
	h := ctx.NodeHeight()
	center := ctx.Bounds.Center()

	diam, ok := ctx.ConstraintValue(ConstraintDiameter)
	if !ok {
		diam = go2.Min(ctx.Bounds.Width, ctx.Bounds.Height)
	}
	radius := go2.Max(diam/2-go2.Max(w, h)/2, 0)

	stAng := ctx.FloatParam("stAng", 0)
	spanAng := ctx.FloatParam("spanAng", 360)
	alongPath := ctx.Param("rotPath", "none") == "alongPath"

	out := make([]*LayoutNode, 0, n)
	ring := nodes
	if ctx.Param("ctrShpMap", "none") == "fNode" {
		// First node takes the circle's center and leaves the ring.
		out = append(out, &LayoutNode{
			TreeNode: nodes[0],
			X:        center.X - w/2,
			Y:        center.Y - h/2,
			Width:    w,
			Height:   h,
		})
		ring = nodes[1:]
	}

	m := len(ring)
	if m > 0 {
		// A full span divides by n so first and last don't overlap;
		// a partial span spreads nodes across it end-to-end.
		denom := float64(m)
		if math.Abs(spanAng) < 360 {
			denom = float64(go2.IntMax(m-1, 1))
		}
		for i, tn := range ring {
			ang := stAng + spanAng*float64(i)/denom
			rad := geo.Radians(ang - 90)
			ln := &LayoutNode{
				TreeNode: tn,
				X:        center.X + radius*math.Cos(rad) - w/2,
				Y:        center.Y + radius*math.Sin(rad) - h/2,
				Width:    w,
				Height:   h,
			}
			if alongPath {
				ln.Rotation = ang
			}
			out = append(out, ln)
		}
	}

	return &LayoutResult{Nodes: out, Bounds: resultBounds(out)}
}
