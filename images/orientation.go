package images

import (
	"image"

	"github.com/disintegration/imaging"
)

// Orientation is an EXIF-style orientation tag (values 1-8) describing the
// rotation or mirroring needed to present the raster upright, independent of
// the raw buffer layout. The names describe the correction applied, not the
// stored layout.
type Orientation int

const (
	// OrientationUp is the normal row-major layout (EXIF 1). No correction.
	OrientationUp Orientation = iota + 1
	// OrientationFlipH needs a mirror across the vertical axis (EXIF 2).
	OrientationFlipH
	// OrientationRotate180 needs a 180 degree rotation (EXIF 3).
	OrientationRotate180
	// OrientationFlipV needs a mirror across the horizontal axis (EXIF 4).
	OrientationFlipV
	// OrientationTranspose needs a flip across the top-left diagonal (EXIF 5).
	OrientationTranspose
	// OrientationRotate270 needs a 270 degree counter-clockwise rotation (EXIF 6).
	OrientationRotate270
	// OrientationTransverse needs a flip across the bottom-left diagonal (EXIF 7).
	OrientationTransverse
	// OrientationRotate90 needs a 90 degree counter-clockwise rotation (EXIF 8).
	OrientationRotate90
)

// Valid reports whether o is one of the eight defined orientation values.
func (o Orientation) Valid() bool {
	return o >= OrientationUp && o <= OrientationRotate90
}

// Upright reports whether the raster presents upright with no redraw.
// Unrecognized tags are treated as up.
func (o Orientation) Upright() bool {
	return o == OrientationUp || !o.Valid()
}

// SwapsDimensions reports whether presenting the raster upright swaps its
// width and height (the 90 degree rotation family, EXIF 5-8).
func (o Orientation) SwapsDimensions() bool {
	return o >= OrientationTranspose && o <= OrientationRotate90
}

// String returns the conventional EXIF name for the tag.
func (o Orientation) String() string {
	switch o {
	case OrientationUp:
		return "up"
	case OrientationFlipH:
		return "flip-horizontal"
	case OrientationRotate180:
		return "rotate-180"
	case OrientationFlipV:
		return "flip-vertical"
	case OrientationTranspose:
		return "transpose"
	case OrientationRotate270:
		return "rotate-270"
	case OrientationTransverse:
		return "transverse"
	case OrientationRotate90:
		return "rotate-90"
	default:
		return "up"
	}
}

// reorient redraws src so that a raster tagged with orientation o presents
// upright. Unrecognized tags return src unchanged.
func reorient(src image.Image, o Orientation) image.Image {
	switch o {
	case OrientationFlipH:
		return imaging.FlipH(src)
	case OrientationRotate180:
		return imaging.Rotate180(src)
	case OrientationFlipV:
		return imaging.FlipV(src)
	case OrientationTranspose:
		return imaging.Transpose(src)
	case OrientationRotate270:
		return imaging.Rotate270(src)
	case OrientationTransverse:
		return imaging.Transverse(src)
	case OrientationRotate90:
		return imaging.Rotate90(src)
	default:
		return src
	}
}
