// Package images provides orientation normalization, aspect-preserving
// resizing, and avatar validation for images handled by a messaging client.
// Every operation is a pure function of its input: a new raster is allocated
// whenever a redraw is needed, nothing is mutated in place, and no shared
// state exists, so independent calls are safe from any number of goroutines.
package images

import (
	"fmt"
	"image"
	"math"
)

// Image is a decoded raster buffer together with its declared orientation
// tag and the device scale factor relating points to pixels.
type Image struct {
	// Raster is the decoded pixel buffer.
	Raster image.Image
	// Orientation is the declared orientation tag. The zero value and any
	// unrecognized value are treated as up.
	Orientation Orientation
	// Scale is the device scale factor (pixels per point). Values <= 0 are
	// treated as 1.
	Scale float64
	// Format is the encoding the raster was decoded from, when known.
	Format Format
}

// Width returns the apparent width in pixels: the raster width after the
// correction implied by the orientation tag.
func (m Image) Width() int {
	if m.Raster == nil {
		return 0
	}
	if m.Orientation.SwapsDimensions() {
		return m.Raster.Bounds().Dy()
	}
	return m.Raster.Bounds().Dx()
}

// Height returns the apparent height in pixels.
func (m Image) Height() int {
	if m.Raster == nil {
		return 0
	}
	if m.Orientation.SwapsDimensions() {
		return m.Raster.Bounds().Dx()
	}
	return m.Raster.Bounds().Dy()
}

// PixelSize returns the apparent dimensions in pixels.
func (m Image) PixelSize() Size {
	return Size{Width: float64(m.Width()), Height: float64(m.Height())}
}

// PointSize returns the apparent dimensions in points: pixels divided by the
// device scale factor.
func (m Image) PointSize() Size {
	s := m.scale()
	return Size{Width: float64(m.Width()) / s, Height: float64(m.Height()) / s}
}

// scale returns the effective device scale factor.
func (m Image) scale() float64 {
	if m.Scale > 0 {
		return m.Scale
	}
	return 1
}

// degenerate reports whether the image has no drawable area.
func (m Image) degenerate() bool {
	return m.Raster == nil || m.Width() < 1 || m.Height() < 1
}

// Size is a width and height pair. The unit (points or pixels) is carried by
// the interface a value is passed to; the two are never mixed.
type Size struct {
	Width  float64
	Height float64
}

// MaxDimension returns the larger of width and height.
func (s Size) MaxDimension() float64 {
	return math.Max(s.Width, s.Height)
}

// Positive reports whether the size has positive area.
func (s Size) Positive() bool {
	return s.Width > 0 && s.Height > 0
}

// String returns a human-readable summary of the size.
func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}
