package images

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/draw"
)

// Checksum generates a deterministic digest of a raster's pixels, useful for
// verifying that an operation returned the same visual content or skipped a
// recompute.
//
// Arguments:
// - raster: The raster to digest.
//
// Returns:
// - A hex-encoded MD5 checksum string, or "empty" for nil or zero-area input.
func Checksum(raster image.Image) string {
	if raster == nil {
		return "empty"
	}
	b := raster.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return "empty"
	}

	// Flatten to NRGBA so the digest is independent of the raster's storage.
	buf := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(buf, buf.Bounds(), raster, b.Min, draw.Src)

	hash := md5.New()
	hash.Write(buf.Pix)
	return fmt.Sprintf("%x", hash.Sum(nil))
}
