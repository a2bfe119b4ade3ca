package salayouts

import (
	"oss.terrastruct.com/smartart/sagraph"
)

const DefaultConnectorDistance = 20

// layoutConnector reserves geometry for transition nodes. One layout
// node per input, marked IsConnector, sized from the connDist
// constraint. Point-to-point routing is not computed here.
func layoutConnector(nodes []*sagraph.TreeNode, ctx *LayoutContext) *LayoutResult {
	n := len(nodes)
	if n == 0 {
		return emptyResult()
	}

	dist, ok := ctx.ConstraintValue(ConstraintConnectorDistance)
	if !ok {
		dist = DefaultConnectorDistance
	}
	h := ctx.NodeHeight()
	sp := ctx.Spacing()

	total := float64(n)*dist + float64(n-1)*sp
	x := alignHorizontal(ctx.Bounds, total, ctx.Param("nodeHorzAlign", "ctr"))
	y := alignVertical(ctx.Bounds, h, ctx.Param("nodeVertAlign", "mid"))

	out := make([]*LayoutNode, 0, n)
	for _, tn := range nodes {
		out = append(out, &LayoutNode{
			TreeNode:    tn,
			X:           x,
			Y:           y,
			Width:       dist,
			Height:      h,
			IsConnector: true,
		})
		x += dist + sp
	}
	return &LayoutResult{Nodes: out, Bounds: resultBounds(out)}
}
