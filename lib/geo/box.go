package geo

import (
	"fmt"
	"math"
)

type Box struct {
	TopLeft *Point
	Width   float64
	Height  float64
}

func NewBox(tl *Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

func (b *Box) Copy() *Box {
	if b == nil {
		return nil
	}
	return NewBox(b.TopLeft.Copy(), b.Width, b.Height)
}

func (b *Box) Center() *Point {
	return NewPoint(b.TopLeft.X+b.Width/2, b.TopLeft.Y+b.Height/2)
}

// IsDegenerate reports whether the box has no usable area. Layout
// algorithms produce empty results for degenerate bounds instead of
// dividing by zero.
func (b *Box) IsDegenerate() bool {
	return b == nil || b.Width <= 0 || b.Height <= 0
}

func (b *Box) Contains(p *Point) bool {
	return b.TopLeft.X <= p.X && p.X <= b.TopLeft.X+b.Width &&
		b.TopLeft.Y <= p.Y && p.Y <= b.TopLeft.Y+b.Height
}

// Union returns the smallest box covering both b and other. A nil
// receiver or argument acts as the identity, so Union can fold over a
// possibly-empty shape list.
func (b *Box) Union(other *Box) *Box {
	if b == nil {
		return other.Copy()
	}
	if other == nil {
		return b.Copy()
	}
	minX := math.Min(b.TopLeft.X, other.TopLeft.X)
	minY := math.Min(b.TopLeft.Y, other.TopLeft.Y)
	maxX := math.Max(b.TopLeft.X+b.Width, other.TopLeft.X+other.Width)
	maxY := math.Max(b.TopLeft.Y+b.Height, other.TopLeft.Y+other.Height)
	return NewBox(NewPoint(minX, minY), maxX-minX, maxY-minY)
}

func (b *Box) ToString() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{TopLeft: %s, Width: %.0f, Height: %.0f}", b.TopLeft.ToString(), b.Width, b.Height)
}
