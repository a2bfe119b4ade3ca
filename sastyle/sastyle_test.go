package sastyle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/smartart/lib/color"
	"oss.terrastruct.com/smartart/lib/go2"
	"oss.terrastruct.com/smartart/sagraph"
	"oss.terrastruct.com/smartart/sastyle"
)

func TestCalculateColorIndex(t *testing.T) {
	t.Parallel()

	t.Run("cycle_is_periodic", func(t *testing.T) {
		c := 3
		for i := 0; i < 20; i++ {
			assert.Equal(t,
				sastyle.CalculateColorIndex(i, 20, c, sastyle.MethodCycle),
				sastyle.CalculateColorIndex(i+c, 20, c, sastyle.MethodCycle))
		}
		assert.Equal(t, 0, sastyle.CalculateColorIndex(0, 20, c, sastyle.MethodCycle))
		assert.Equal(t, 2, sastyle.CalculateColorIndex(5, 20, c, sastyle.MethodCycle))
	})

	t.Run("span_monotonic_and_reaches_last", func(t *testing.T) {
		n, c := 7, 4
		prev := -1
		for i := 0; i < n; i++ {
			idx := sastyle.CalculateColorIndex(i, n, c, sastyle.MethodSpan)
			assert.GreaterOrEqual(t, idx, prev)
			prev = idx
		}
		assert.Equal(t, c-1, sastyle.CalculateColorIndex(n-1, n, c, sastyle.MethodSpan))
		// single node keeps the first color
		assert.Equal(t, 0, sastyle.CalculateColorIndex(0, 1, c, sastyle.MethodSpan))
	})

	t.Run("repeat_groups", func(t *testing.T) {
		// 6 nodes over 3 colors: groups of 2
		n, c := 6, 3
		exp := []int{0, 0, 1, 1, 2, 2}
		for i, e := range exp {
			assert.Equal(t, e, sastyle.CalculateColorIndex(i, n, c, sastyle.MethodRepeat), "i=%d", i)
		}
		// clamped to the last color when indexes run past
		assert.Equal(t, c-1, sastyle.CalculateColorIndex(n-1, n, c, sastyle.MethodRepeat))
	})

	t.Run("degenerate_counts", func(t *testing.T) {
		assert.Equal(t, 0, sastyle.CalculateColorIndex(3, 5, 0, sastyle.MethodCycle))
		assert.Equal(t, 0, sastyle.CalculateColorIndex(0, 0, 3, sastyle.MethodRepeat))
	})
}

func rgb(hex string) *sastyle.ColorSpec {
	return &sastyle.ColorSpec{SRGB: hex}
}

func TestResolveLabelStyle(t *testing.T) {
	t.Parallel()

	colors := &sastyle.ColorsDefinition{
		StyleLabels: map[string]*sastyle.ColorLabel{
			"node0": {
				Fill: &sastyle.ColorList{Colors: []*sastyle.ColorSpec{rgb("FF0000"), rgb("00ff00"), rgb("0000FF")}},
				Line: &sastyle.ColorList{Colors: []*sastyle.ColorSpec{rgb("333333")}},
			},
		},
	}
	style := &sastyle.StyleDefinition{
		StyleLabels: map[string]*sastyle.StyleLabel{
			"node0": {ShapeStyle: "subtle", LineWidth: go2.Pointer(2.0)},
		},
	}
	rctx := &sastyle.Context{Style: style, Colors: colors}

	t.Run("cycle_across_siblings", func(t *testing.T) {
		got := sastyle.ResolveLabelStyle("node0", 0, 5, rctx)
		assert.Equal(t, "#FF0000", got.FillColor)
		assert.Equal(t, "#333333", got.LineColor)
		assert.Equal(t, "subtle", got.ShapeStyle)

		got = sastyle.ResolveLabelStyle("node0", 1, 5, rctx)
		assert.Equal(t, "#00FF00", got.FillColor)

		got = sastyle.ResolveLabelStyle("node0", 3, 5, rctx)
		assert.Equal(t, "#FF0000", got.FillColor)
	})

	t.Run("missing_label_is_zero_style", func(t *testing.T) {
		got := sastyle.ResolveLabelStyle("nothere", 0, 1, rctx)
		assert.Equal(t, "", got.FillColor)
		assert.Equal(t, "", got.ShapeStyle)
	})

	t.Run("nil_definitions_never_error", func(t *testing.T) {
		got := sastyle.ResolveLabelStyle("node0", 0, 1, &sastyle.Context{})
		assert.Equal(t, "", got.FillColor)
		got = sastyle.ResolveLabelStyle("node0", 0, 1, nil)
		assert.Equal(t, "", got.FillColor)
	})
}

func TestResolveNodeStyle(t *testing.T) {
	t.Parallel()

	rctx := &sastyle.Context{
		Colors: &sastyle.ColorsDefinition{
			StyleLabels: map[string]*sastyle.ColorLabel{
				"accent": {
					Fill: &sastyle.ColorList{Colors: []*sastyle.ColorSpec{{Scheme: "accent1"}}},
				},
			},
		},
	}

	node := &sagraph.TreeNode{
		ID:          "n1",
		Type:        sagraph.PointTypeNode,
		PropertySet: &sagraph.PropertySet{StyleLabel: "accent"},
	}
	got := sastyle.ResolveNodeStyle(node, 0, 1, rctx)
	// stock Office accent1
	assert.Equal(t, "#4472C4", got.FillColor)

	// caller theme overrides the slot
	rctx.ThemeColors = map[string]string{"accent1": "123456"}
	got = sastyle.ResolveNodeStyle(node, 0, 1, rctx)
	assert.Equal(t, "#123456", got.FillColor)

	// no property set resolves to the zero style
	got = sastyle.ResolveNodeStyle(&sagraph.TreeNode{ID: "bare"}, 0, 1, rctx)
	assert.Equal(t, "", got.FillColor)
}

func TestSchemeColorTransforms(t *testing.T) {
	t.Parallel()

	t.Run("tint_and_shade_extremes", func(t *testing.T) {
		tr := &color.Transforms{Tint: go2.Pointer(0)}
		out, err := tr.Apply("#FF0000")
		require.NoError(t, err)
		assert.Equal(t, "#FFFFFF", out)

		tr = &color.Transforms{Shade: go2.Pointer(0)}
		out, err = tr.Apply("#FF0000")
		require.NoError(t, err)
		assert.Equal(t, "#000000", out)

		tr = &color.Transforms{Tint: go2.Pointer(100000)}
		out, err = tr.Apply("#FF0000")
		require.NoError(t, err)
		assert.Equal(t, "#FF0000", out)
	})

	t.Run("lummod_darkens", func(t *testing.T) {
		tr := &color.Transforms{LumMod: go2.Pointer(50000)}
		out, err := tr.Apply("#4472C4")
		require.NoError(t, err)

		before, err := color.Luminance("#4472C4")
		require.NoError(t, err)
		after, err := color.Luminance(out)
		require.NoError(t, err)
		assert.Less(t, after, before)
	})

	t.Run("lumoff_lightens", func(t *testing.T) {
		tr := &color.Transforms{LumOff: go2.Pointer(20000)}
		out, err := tr.Apply("#4472C4")
		require.NoError(t, err)

		before, _ := color.Luminance("#4472C4")
		after, _ := color.Luminance(out)
		assert.Greater(t, after, before)
	})

	t.Run("resolution_is_case_insensitive", func(t *testing.T) {
		a, ok := color.Normalize("ff0000")
		require.True(t, ok)
		b, ok := color.Normalize("#FF0000")
		require.True(t, ok)
		assert.Equal(t, a, b)
	})
}
