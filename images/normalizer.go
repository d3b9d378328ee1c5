package images

import "math"

// defaultDrawQuality is used for redraws the caller does not qualify: the
// orientation correction and the aspect-preserving resizers.
const defaultDrawQuality = InterpolationLanczos

// Normalizer attaches the normalization and resizing operations to a Codec.
// The zero value draws through StdCodec. Methods never mutate their input,
// so a single Normalizer is safe for concurrent use on independent images.
type Normalizer struct {
	codec Codec
}

// NewNormalizer returns a Normalizer drawing through codec. A nil codec
// selects StdCodec.
func NewNormalizer(codec Codec) *Normalizer {
	if codec == nil {
		codec = StdCodec{}
	}
	return &Normalizer{codec: codec}
}

// backend returns the effective codec, keeping the zero value usable.
func (n *Normalizer) backend() Codec {
	if n == nil || n.codec == nil {
		return StdCodec{}
	}
	return n.codec
}

// Normalize returns img redrawn so that its orientation is up. Images that
// are already upright, or that carry an unrecognized tag, are returned with
// the tag cleared and the raster untouched; no redraw happens.
//
// Arguments:
//   - img: The image to normalize.
//
// Returns:
//   - Image: An upright image with the same apparent visual content. The
//     dimensions reflect any 90 degree rotation implied by the original tag.
func (n *Normalizer) Normalize(img Image) Image {
	if img.Raster == nil || img.Orientation.Upright() {
		img.Orientation = OrientationUp
		return img
	}

	out, err := n.backend().Draw(img, Transform{
		Orientation: img.Orientation,
		Quality:     defaultDrawQuality,
	}, img.Width(), img.Height())
	if err != nil {
		// A well-formed image never fails to redraw. Clear the tag rather
		// than propagate; the caller is not expecting a failure here.
		img.Orientation = OrientationUp
		return img
	}
	return out
}

// ResizeWithQuality scales img uniformly by rate on both axes using the
// given interpolation quality. Output dimensions are round(source x rate),
// clamped to at least one pixel per axis. A non-positive rate is an input
// contract violation; the documented choice here is to clamp, returning the
// source unchanged, since this surface has no failure channel.
func (n *Normalizer) ResizeWithQuality(img Image, quality InterpolationQuality, rate float64) Image {
	if img.degenerate() || rate <= 0 {
		return img
	}

	width := roundDimension(float64(img.Width()) * rate)
	height := roundDimension(float64(img.Height()) * rate)
	out, err := n.backend().Draw(img, Transform{
		Orientation: img.Orientation,
		Quality:     quality,
	}, width, height)
	if err != nil {
		return img
	}
	return out
}

// ResizeToMaxDimensionPixels scales img down, preserving aspect ratio, so
// that its largest dimension is maxDimension pixels. Images already within
// the bound are returned as-is: the identical value, no recompute, and never
// an upscale.
//
// Arguments:
//   - img: The image to bound.
//   - maxDimension: The pixel bound for the larger dimension.
//
// Returns:
//   - Image: The bounded image.
//   - error: ErrDegenerateGeometry if the source has no area or the bound is
//     not positive.
func (n *Normalizer) ResizeToMaxDimensionPixels(img Image, maxDimension float64) (Image, error) {
	return n.resizeToMaxDimension(img, maxDimension, img.PixelSize())
}

// ResizeToMaxDimensionPoints is the point-unit variant of
// ResizeToMaxDimensionPixels: dimensions are compared in points, pixels
// divided by the image's device scale factor.
func (n *Normalizer) ResizeToMaxDimensionPoints(img Image, maxDimension float64) (Image, error) {
	return n.resizeToMaxDimension(img, maxDimension, img.PointSize())
}

// resizeToMaxDimension bounds the image's larger dimension, measured by size
// (already expressed in the caller's unit), and delegates the actual redraw
// to the fit resize.
func (n *Normalizer) resizeToMaxDimension(img Image, maxDimension float64, size Size) (Image, error) {
	if img.degenerate() || !size.Positive() {
		return Image{}, ErrDegenerateGeometry
	}
	if maxDimension <= 0 {
		return Image{}, ErrDegenerateGeometry
	}
	if size.MaxDimension() <= maxDimension {
		return img, nil
	}

	factor := maxDimension / size.MaxDimension()
	return n.ResizeToSize(img, Size{
		Width:  size.Width * factor,
		Height: size.Height * factor,
	})
}

// ResizeToSize scales img, preserving aspect ratio, so that it fits entirely
// within target (the "fit" policy): the constrained dimension equals the
// target and the other is at most the target. The redrawn raster is device
// independent, so the target is effectively a pixel size.
//
// Arguments:
//   - img: The image to resize.
//   - target: The box the result must fit within.
//
// Returns:
//   - Image: The fitted image, upright.
//   - error: ErrDegenerateGeometry if the source or target has no area.
func (n *Normalizer) ResizeToSize(img Image, target Size) (Image, error) {
	if img.degenerate() || !target.Positive() {
		return Image{}, ErrDegenerateGeometry
	}

	srcWidth := float64(img.Width())
	srcHeight := float64(img.Height())
	widthRatio := target.Width / srcWidth
	heightRatio := target.Height / srcHeight

	var width, height int
	if widthRatio > heightRatio {
		// Height is the constrained dimension.
		height = roundDimension(target.Height)
		width = roundDimension(srcWidth * heightRatio)
	} else {
		width = roundDimension(target.Width)
		height = roundDimension(srcHeight * widthRatio)
	}

	return n.backend().Draw(img, Transform{
		Orientation: img.Orientation,
		Quality:     defaultDrawQuality,
	}, width, height)
}

// ResizeToFillPixelSize scales img, preserving aspect ratio, so that it
// completely covers boundingSize in pixels (the "fill" policy). The result
// may exceed the box on one axis; cropping the excess is the caller's
// responsibility. This operation never signals failure: degenerate input
// returns the source unchanged as a defensive fallback.
func (n *Normalizer) ResizeToFillPixelSize(img Image, boundingSize Size) Image {
	if img.degenerate() || !boundingSize.Positive() {
		return img
	}

	srcWidth := float64(img.Width())
	srcHeight := float64(img.Height())
	factor := math.Max(boundingSize.Width/srcWidth, boundingSize.Height/srcHeight)

	width := roundDimension(srcWidth * factor)
	height := roundDimension(srcHeight * factor)
	// Rounding must never drop the result below the box the caller will
	// crop from.
	if float64(width) < boundingSize.Width {
		width = int(math.Ceil(boundingSize.Width))
	}
	if float64(height) < boundingSize.Height {
		height = int(math.Ceil(boundingSize.Height))
	}

	out, err := n.backend().Draw(img, Transform{
		Orientation: img.Orientation,
		Quality:     defaultDrawQuality,
	}, width, height)
	if err != nil {
		return img
	}
	return out
}

// roundDimension rounds a computed dimension to the nearest pixel, clamped
// to at least one.
func roundDimension(v float64) int {
	r := math.Round(v)
	if r < 1 {
		return 1
	}
	return int(r)
}

// defaultNormalizer backs the package-level convenience functions.
var defaultNormalizer = NewNormalizer(nil)

// Normalize calls Normalizer.Normalize on a StdCodec-backed Normalizer.
func Normalize(img Image) Image {
	return defaultNormalizer.Normalize(img)
}

// ResizeWithQuality calls Normalizer.ResizeWithQuality on a StdCodec-backed
// Normalizer.
func ResizeWithQuality(img Image, quality InterpolationQuality, rate float64) Image {
	return defaultNormalizer.ResizeWithQuality(img, quality, rate)
}

// ResizeToMaxDimensionPixels calls Normalizer.ResizeToMaxDimensionPixels on
// a StdCodec-backed Normalizer.
func ResizeToMaxDimensionPixels(img Image, maxDimension float64) (Image, error) {
	return defaultNormalizer.ResizeToMaxDimensionPixels(img, maxDimension)
}

// ResizeToMaxDimensionPoints calls Normalizer.ResizeToMaxDimensionPoints on
// a StdCodec-backed Normalizer.
func ResizeToMaxDimensionPoints(img Image, maxDimension float64) (Image, error) {
	return defaultNormalizer.ResizeToMaxDimensionPoints(img, maxDimension)
}

// ResizeToSize calls Normalizer.ResizeToSize on a StdCodec-backed Normalizer.
func ResizeToSize(img Image, target Size) (Image, error) {
	return defaultNormalizer.ResizeToSize(img, target)
}

// ResizeToFillPixelSize calls Normalizer.ResizeToFillPixelSize on a
// StdCodec-backed Normalizer.
func ResizeToFillPixelSize(img Image, boundingSize Size) Image {
	return defaultNormalizer.ResizeToFillPixelSize(img, boundingSize)
}

// ValidAvatarJPEG calls Normalizer.ValidAvatarJPEG on a StdCodec-backed
// Normalizer.
func ValidAvatarJPEG(data []byte) ([]byte, error) {
	return defaultNormalizer.ValidAvatarJPEG(data)
}
