package salayouts

import (
	"oss.terrastruct.com/smartart/lib/geo"
	"oss.terrastruct.com/smartart/lib/go2"
	"oss.terrastruct.com/smartart/sagraph"
)

// layoutHierChild lays out a hierarchy level along the primary axis
// (linDir) and recurses each node's children into the remaining
// bounds on the far side of the level band. A node with children is
// re-centered on its children's total extent; its advance is
// max(own size, child extent) + spacing. hierRoot delegates here with
// the root as the only level node.
func layoutHierChild(nodes []*sagraph.TreeNode, ctx *LayoutContext) *LayoutResult {
	if len(nodes) == 0 {
		return emptyResult()
	}
	out := hierPlace(nodes, ctx.Bounds, ctx)
	return &LayoutResult{Nodes: out, Bounds: deepBounds(out)}
}

func hierPlace(nodes []*sagraph.TreeNode, bounds *geo.Box, ctx *LayoutContext) []*LayoutNode {
	dir := ctx.Param("linDir", "fromL")
	horizontal := dir == "fromL" || dir == "fromR"
	reversed := dir == "fromR" || dir == "fromB"

	ordered := nodes
	if reversed {
		ordered = make([]*sagraph.TreeNode, len(nodes))
		for i, tn := range nodes {
			ordered[len(nodes)-1-i] = tn
		}
	}

	w := ctx.NodeWidth()
	h := ctx.NodeHeight()
	sp := ctx.Spacing()

	size := h
	if horizontal {
		size = w
	}

	pos := bounds.TopLeft.Y
	if horizontal {
		pos = bounds.TopLeft.X
	}

	out := make([]*LayoutNode, 0, len(ordered))
	for _, tn := range ordered {
		var kids []*LayoutNode
		childExtent := 0.0
		if len(tn.Children) > 0 {
			kids = hierPlace(tn.Children, childBand(bounds, pos, w, h, sp, horizontal), ctx)
			kb := deepBounds(kids)
			if horizontal {
				childExtent = kb.Width
			} else {
				childExtent = kb.Height
			}
		}

		// With children, the node sits at the midpoint of their
		// extent; alone, it takes the next sequential slot.
		ownPos := pos
		if childExtent > 0 {
			ownPos = pos + childExtent/2 - size/2
		}

		ln := &LayoutNode{TreeNode: tn, Width: w, Height: h, Children: kids}
		if horizontal {
			ln.X = ownPos
			ln.Y = bounds.TopLeft.Y
		} else {
			ln.X = bounds.TopLeft.X
			ln.Y = ownPos
		}
		out = append(out, ln)

		pos += go2.Max(size, childExtent) + sp
	}
	return out
}

// childBand is the remaining bounds for a node's children: the
// current bounds minus the level band and spacing, starting at the
// node's primary position.
func childBand(bounds *geo.Box, pos, w, h, sp float64, horizontal bool) *geo.Box {
	if horizontal {
		return geo.NewBox(
			geo.NewPoint(pos, bounds.TopLeft.Y+h+sp),
			go2.Max(bounds.Width-(pos-bounds.TopLeft.X), 0),
			go2.Max(bounds.Height-h-sp, 0),
		)
	}
	return geo.NewBox(
		geo.NewPoint(bounds.TopLeft.X+w+sp, pos),
		go2.Max(bounds.Width-w-sp, 0),
		go2.Max(bounds.Height-(pos-bounds.TopLeft.Y), 0),
	)
}

// deepBounds unions node boxes through nested children.
func deepBounds(nodes []*LayoutNode) *geo.Box {
	var b *geo.Box
	for _, n := range nodes {
		b = b.Union(n.Box())
		if len(n.Children) > 0 {
			b = b.Union(deepBounds(n.Children))
		}
	}
	if b == nil {
		b = geo.NewBox(geo.NewPoint(0, 0), 0, 0)
	}
	return b
}
