package salayouts

import (
	"strconv"

	"oss.terrastruct.com/smartart/lib/go2"
	"oss.terrastruct.com/smartart/sagraph"
)

// ForEach selects the subset of tree nodes a layout level operates
// on: an axis walk from the current node, filtered by point type,
// then windowed by start/count/step.
type ForEach struct {
	Name string `json:"name,omitempty"`

	// Axis: self, ch, des, desOrSelf, par, root. Empty means ch.
	Axis []string `json:"axis,omitempty"`
	// PointTypes filters the walk; empty keeps everything.
	PointTypes []sagraph.PointType `json:"pointTypes,omitempty"`

	// Start is 1-based per the source markup conventions. Zero means
	// from the beginning.
	Start int `json:"start,omitempty"`
	Count int `json:"count,omitempty"`
	Step  int `json:"step,omitempty"`
}

// Select runs the forEach selection relative to node. A nil receiver
// selects the node's children of content point types, the engine-wide
// default.
func (fe *ForEach) Select(node *sagraph.TreeNode) []*sagraph.TreeNode {
	if node == nil {
		return nil
	}
	if fe == nil {
		return ContentChildren(node)
	}

	var walked []*sagraph.TreeNode
	axes := fe.Axis
	if len(axes) == 0 {
		axes = []string{"ch"}
	}
	for _, axis := range axes {
		switch axis {
		case "self":
			walked = append(walked, node)
		case "ch":
			walked = append(walked, node.Children...)
		case "des":
			for _, c := range node.Children {
				walked = append(walked, c.Descendants()...)
			}
		case "desOrSelf":
			walked = append(walked, node.Descendants()...)
		case "par":
			if node.Parent != nil {
				walked = append(walked, node.Parent)
			}
		case "root":
			walked = append(walked, node.Root())
		}
		// Unknown axes select nothing, mirroring the recoverable-gap
		// policy everywhere else.
	}

	if len(fe.PointTypes) > 0 {
		walked = go2.Filter(walked, func(n *sagraph.TreeNode) bool {
			for _, pt := range fe.PointTypes {
				if n.Type == pt {
					return true
				}
			}
			return false
		})
	}

	start := go2.IntMax(fe.Start-1, 0)
	if start >= len(walked) {
		return nil
	}
	walked = walked[start:]

	step := go2.IntMax(fe.Step, 1)
	if step > 1 {
		stepped := make([]*sagraph.TreeNode, 0, (len(walked)+step-1)/step)
		for i := 0; i < len(walked); i += step {
			stepped = append(stepped, walked[i])
		}
		walked = stepped
	}

	if fe.Count > 0 && fe.Count < len(walked) {
		walked = walked[:fe.Count]
	}
	return walked
}

// ContentChildren is the default selection: child nodes of the
// content point types, skipping transitions and presentation points.
func ContentChildren(node *sagraph.TreeNode) []*sagraph.TreeNode {
	return go2.Filter(node.Children, IsContentNode)
}

func IsContentNode(n *sagraph.TreeNode) bool {
	switch n.Type {
	case sagraph.PointTypeNode, sagraph.PointTypeDocument, sagraph.PointTypeAssistant:
		return true
	}
	return false
}

// ChooseBranch is one alternative of a choose block. A branch with a
// nil If is the else arm.
type ChooseBranch struct {
	If         *IfCondition    `json:"if,omitempty"`
	LayoutNode *DefinitionNode `json:"layoutNode"`
}

// IfCondition is a simple boolean function over the data graph,
// evaluated with the constraint operators.
type IfCondition struct {
	// Func: cnt, depth, maxDepth. Unknown functions evaluate false.
	Func string `json:"func"`
	// ForEach scopes cnt; nil counts content children.
	ForEach *ForEach     `json:"forEach,omitempty"`
	Op      ConstraintOp `json:"op"`
	Val     string       `json:"val"`
}

// Evaluate resolves the condition relative to node.
func (c *IfCondition) Evaluate(node *sagraph.TreeNode) bool {
	if c == nil {
		return true
	}
	var value float64
	switch c.Func {
	case "cnt":
		value = float64(len(c.ForEach.Select(node)))
	case "depth":
		value = float64(node.Depth)
	case "maxDepth":
		value = float64(maxDepthBelow(node))
	default:
		return false
	}

	comparand, err := strconv.ParseFloat(c.Val, 64)
	if err != nil {
		return false
	}
	return EvaluateConstraintOperator(value, c.Op, comparand)
}

func maxDepthBelow(node *sagraph.TreeNode) int {
	deepest := 0
	for _, c := range node.Children {
		deepest = go2.IntMax(deepest, 1+maxDepthBelow(c))
	}
	return deepest
}

// EvaluateChoose picks the first branch whose condition holds. The
// else arm (nil If) always matches; no match returns nil.
func EvaluateChoose(branches []*ChooseBranch, node *sagraph.TreeNode) *DefinitionNode {
	for _, br := range branches {
		if br.If.Evaluate(node) {
			return br.LayoutNode
		}
	}
	return nil
}
