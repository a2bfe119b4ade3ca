// Package sastyle maps tree nodes onto style and color definitions:
// a style label selects per-channel color lists, and a cycling policy
// assigns list entries across siblings.
package sastyle

import (
	"oss.terrastruct.com/smartart/lib/color"
	"oss.terrastruct.com/smartart/sagraph"
)

// ColorMethod is the policy for assigning a color list across a set
// of sibling nodes.
type ColorMethod string

const (
	MethodCycle  ColorMethod = "cycle"
	MethodRepeat ColorMethod = "repeat"
	MethodSpan   ColorMethod = "span"
)

// ColorSpec is one entry of a color list. Exactly one of the source
// fields is normally set; resolution tries them in order.
type ColorSpec struct {
	// SRGB is an explicit hex value, with or without '#'.
	SRGB string `json:"srgb,omitempty"`
	// Scheme names a theme slot (accent1, dk1, tx2, ...).
	Scheme string `json:"scheme,omitempty"`
	// System names a system color (window, windowText, ...).
	System string `json:"system,omitempty"`
	// Preset names a CSS/office preset color (red, steelblue, ...).
	Preset string `json:"preset,omitempty"`

	Transforms *color.Transforms `json:"-"`
}

type ColorList struct {
	Method ColorMethod  `json:"method,omitempty"`
	Colors []*ColorSpec `json:"colors,omitempty"`
}

// ColorLabel is one style label's color lists, per channel.
type ColorLabel struct {
	Fill       *ColorList `json:"fill,omitempty"`
	Line       *ColorList `json:"line,omitempty"`
	Effect     *ColorList `json:"effect,omitempty"`
	TextFill   *ColorList `json:"textFill,omitempty"`
	TextLine   *ColorList `json:"textLine,omitempty"`
	TextEffect *ColorList `json:"textEffect,omitempty"`
}

type ColorsDefinition struct {
	StyleLabels map[string]*ColorLabel `json:"styleLabels"`
}

// StyleLabel is one style label's shape style reference.
type StyleLabel struct {
	ShapeStyle string   `json:"shapeStyle,omitempty"`
	LineWidth  *float64 `json:"lineWidth,omitempty"`
}

type StyleDefinition struct {
	StyleLabels map[string]*StyleLabel `json:"styleLabels"`
}

// ResolvedStyle is the per-node output. Empty strings mean "use
// caller default". Computed fresh per node, never cached.
type ResolvedStyle struct {
	FillColor       string
	LineColor       string
	EffectColor     string
	TextFillColor   string
	TextLineColor   string
	TextEffectColor string
	ShapeStyle      string
	LineWidth       *float64
}

// Context carries the definitions one resolution pass reads.
type Context struct {
	Style  *StyleDefinition
	Colors *ColorsDefinition
	// ThemeColors overrides scheme slots; nil keeps the stock theme.
	ThemeColors map[string]string
}

// CalculateColorIndex picks the list index for the node at nodeIndex
// among totalNodes siblings.
func CalculateColorIndex(nodeIndex, totalNodes, colorCount int, method ColorMethod) int {
	if colorCount <= 0 {
		return 0
	}
	switch method {
	case MethodRepeat:
		if totalNodes <= 0 {
			return 0
		}
		group := (totalNodes + colorCount - 1) / colorCount
		if group <= 0 {
			return 0
		}
		idx := nodeIndex / group
		if idx > colorCount-1 {
			idx = colorCount - 1
		}
		return idx
	case MethodSpan:
		if totalNodes <= 1 {
			return 0
		}
		idx := int(float64(nodeIndex) / float64(totalNodes-1) * float64(colorCount))
		if idx > colorCount-1 {
			idx = colorCount - 1
		}
		return idx
	default: // cycle
		return nodeIndex % colorCount
	}
}

// resolveColorFromList picks and resolves the node's entry from a
// channel's color list. Missing lists and garbage entries resolve to
// empty, never an error.
func resolveColorFromList(list *ColorList, nodeIndex, totalNodes int, theme map[string]string) string {
	if list == nil || len(list.Colors) == 0 {
		return ""
	}
	method := list.Method
	if method == "" {
		method = MethodCycle
	}
	spec := list.Colors[CalculateColorIndex(nodeIndex, totalNodes, len(list.Colors), method)]
	return resolveColorSpec(spec, theme)
}

func resolveColorSpec(spec *ColorSpec, theme map[string]string) string {
	if spec == nil {
		return ""
	}
	var base string
	switch {
	case spec.SRGB != "":
		b, ok := color.Normalize(spec.SRGB)
		if !ok {
			return ""
		}
		base = b
	case spec.Scheme != "":
		b, ok := color.Scheme(spec.Scheme, theme)
		if !ok {
			return ""
		}
		base = b
	case spec.System != "":
		b, ok := color.System(spec.System)
		if !ok {
			return ""
		}
		base = b
	case spec.Preset != "":
		b, ok := color.Normalize(spec.Preset)
		if !ok {
			return ""
		}
		base = b
	default:
		return ""
	}

	if !spec.Transforms.IsZero() {
		out, err := spec.Transforms.Apply(base)
		if err != nil {
			return base
		}
		return out
	}
	return base
}

// ResolveNodeStyle resolves the style of the node at nodeIndex among
// totalNodes siblings, using the node's own style label.
func ResolveNodeStyle(node *sagraph.TreeNode, nodeIndex, totalNodes int, rctx *Context) *ResolvedStyle {
	label := ""
	if node != nil && node.PropertySet != nil {
		label = node.PropertySet.StyleLabel
	}
	return ResolveLabelStyle(label, nodeIndex, totalNodes, rctx)
}

// ResolveLabelStyle is ResolveNodeStyle with an explicit label, for
// layout-definition overrides.
func ResolveLabelStyle(label string, nodeIndex, totalNodes int, rctx *Context) *ResolvedStyle {
	out := &ResolvedStyle{}
	if rctx == nil {
		return out
	}

	if rctx.Style != nil {
		if sl, ok := rctx.Style.StyleLabels[label]; ok && sl != nil {
			out.ShapeStyle = sl.ShapeStyle
			out.LineWidth = sl.LineWidth
		}
	}

	if rctx.Colors != nil {
		if cl, ok := rctx.Colors.StyleLabels[label]; ok && cl != nil {
			out.FillColor = resolveColorFromList(cl.Fill, nodeIndex, totalNodes, rctx.ThemeColors)
			out.LineColor = resolveColorFromList(cl.Line, nodeIndex, totalNodes, rctx.ThemeColors)
			out.EffectColor = resolveColorFromList(cl.Effect, nodeIndex, totalNodes, rctx.ThemeColors)
			out.TextFillColor = resolveColorFromList(cl.TextFill, nodeIndex, totalNodes, rctx.ThemeColors)
			out.TextLineColor = resolveColorFromList(cl.TextLine, nodeIndex, totalNodes, rctx.ThemeColors)
			out.TextEffectColor = resolveColorFromList(cl.TextEffect, nodeIndex, totalNodes, rctx.ThemeColors)
		}
	}
	return out
}
