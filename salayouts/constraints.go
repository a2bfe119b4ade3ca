package salayouts

import (
	"oss.terrastruct.com/smartart/lib/geo"
	"oss.terrastruct.com/smartart/lib/go2"
)

// ConstraintType selects the attribute a constraint reads or writes.
type ConstraintType string

const (
	ConstraintWidth   ConstraintType = "w"
	ConstraintHeight  ConstraintType = "h"
	ConstraintLeft    ConstraintType = "l"
	ConstraintTop     ConstraintType = "t"
	ConstraintRight   ConstraintType = "r"
	ConstraintBottom  ConstraintType = "b"
	ConstraintCenterX ConstraintType = "ctrX"
	ConstraintCenterY ConstraintType = "ctrY"
	// Offsets are additive to the node's current position.
	ConstraintLeftOffset ConstraintType = "lOff"
	ConstraintTopOffset  ConstraintType = "tOff"

	ConstraintSpacing           ConstraintType = "sp"
	ConstraintSiblingSpacing    ConstraintType = "sibSp"
	ConstraintDiameter          ConstraintType = "diam"
	ConstraintConnectorDistance ConstraintType = "connDist"
	ConstraintPrimaryFontSize   ConstraintType = "primFontSz"
)

type ConstraintOp string

const (
	OpNone  ConstraintOp = "none"
	OpEqual ConstraintOp = "equ"
	OpGTE   ConstraintOp = "gte"
	OpLTE   ConstraintOp = "lte"
)

// Constraint is a declarative post-layout override. Resolution order:
// base value, times factor (default 1), clamped to [Min, Max].
type Constraint struct {
	Type          ConstraintType `json:"type"`
	Value         *float64       `json:"value,omitempty"`
	Factor        *float64       `json:"factor,omitempty"`
	Min           *float64       `json:"min,omitempty"`
	Max           *float64       `json:"max,omitempty"`
	ReferenceType ConstraintType `json:"referenceType,omitempty"`
	Operator      ConstraintOp   `json:"operator,omitempty"`
}

// resolve applies factor and clamps to a base value.
func (c *Constraint) resolve(base float64) float64 {
	v := base
	if c.Factor != nil {
		v *= *c.Factor
	}
	if c.Min != nil && v < *c.Min {
		v = *c.Min
	}
	if c.Max != nil && v > *c.Max {
		v = *c.Max
	}
	return v
}

// ConstraintContext scopes one node's constraint resolution: fixed
// bounds plus the map of already-resolved values that ReferenceType
// copies from.
type ConstraintContext struct {
	Bounds   *geo.Box
	Resolved map[ConstraintType]float64
}

func NewConstraintContext(bounds *geo.Box) *ConstraintContext {
	return &ConstraintContext{
		Bounds:   bounds,
		Resolved: make(map[ConstraintType]float64),
	}
}

// currentValue derives a constraint's base from the node's geometry
// when neither an explicit value nor a resolvable reference exists.
func currentValue(t ConstraintType, node *LayoutNode, cctx *ConstraintContext) float64 {
	switch t {
	case ConstraintWidth:
		return node.Width
	case ConstraintHeight:
		return node.Height
	case ConstraintLeft:
		return node.X
	case ConstraintTop:
		return node.Y
	case ConstraintRight:
		return node.X + node.Width
	case ConstraintBottom:
		return node.Y + node.Height
	case ConstraintCenterX:
		return node.X + node.Width/2
	case ConstraintCenterY:
		return node.Y + node.Height/2
	case ConstraintDiameter:
		if cctx.Bounds != nil {
			return go2.Min(cctx.Bounds.Width, cctx.Bounds.Height)
		}
	}
	return 0
}

// ApplyConstraints resolves constraints against one node in
// declaration order, last write per attribute winning, and returns a
// new node. The input node is never mutated.
func ApplyConstraints(node *LayoutNode, constraints []*Constraint, cctx *ConstraintContext) *LayoutNode {
	if len(constraints) == 0 {
		return node
	}
	if cctx == nil {
		cctx = NewConstraintContext(nil)
	}
	out := node.Copy()

	for _, c := range constraints {
		var base float64
		switch {
		case c.Value != nil:
			base = *c.Value
		case c.ReferenceType != "":
			if v, ok := cctx.Resolved[c.ReferenceType]; ok {
				base = v
			} else {
				base = currentValue(c.ReferenceType, out, cctx)
			}
		default:
			base = currentValue(c.Type, out, cctx)
		}
		v := c.resolve(base)
		cctx.Resolved[c.Type] = v

		switch c.Type {
		case ConstraintWidth:
			out.Width = v
		case ConstraintHeight:
			out.Height = v
		case ConstraintLeft:
			out.X = v
		case ConstraintTop:
			out.Y = v
		case ConstraintRight:
			out.X = v - out.Width
		case ConstraintBottom:
			out.Y = v - out.Height
		case ConstraintCenterX:
			out.X = v - out.Width/2
		case ConstraintCenterY:
			out.Y = v - out.Height/2
		case ConstraintLeftOffset:
			out.X += v
		case ConstraintTopOffset:
			out.Y += v
		}
		// Non-geometry types (sp, diam, connDist, ...) only feed the
		// resolved map for later references.
	}
	return out
}

// ApplyConstraintsToLayout applies the same constraint list to every
// node independently, each with its own fresh ConstraintContext.
func ApplyConstraintsToLayout(nodes []*LayoutNode, constraints []*Constraint, bounds *geo.Box) []*LayoutNode {
	if len(constraints) == 0 {
		return nodes
	}
	out := make([]*LayoutNode, len(nodes))
	for i, n := range nodes {
		out[i] = ApplyConstraints(n, constraints, NewConstraintContext(bounds))
	}
	return out
}

// EvaluateConstraintOperator backs the boolean tests of choose
// branches. It is not part of geometry resolution.
func EvaluateConstraintOperator(value float64, op ConstraintOp, comparand float64) bool {
	switch op {
	case OpEqual:
		return value == comparand
	case OpGTE:
		return value >= comparand
	case OpLTE:
		return value <= comparand
	case OpNone:
		return true
	}
	return false
}
