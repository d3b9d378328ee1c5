package images

import (
	"bytes"
	"image"
)

const (
	// AvatarJPEGQuality is the fixed quality used when re-encoding avatar
	// data to its canonical JPEG form.
	AvatarJPEGQuality = 90

	// maxDecodeDimension caps the declared width and height accepted before
	// a full decode, guarding against payloads that lie about their size.
	maxDecodeDimension = 8192
	// maxDecodePixels bounds the total pixel count (32MP keeps the decoded
	// RGBA buffer under 128 MB).
	maxDecodePixels = 32 << 20
)

// ValidAvatarJPEG validates that data is genuinely decodable image data and
// returns a canonical JPEG re-encoding of it, stripping any embedded
// non-image payload, metadata anomalies, or corrupt trailing bytes. The
// declared dimensions are checked against the decode bound before the raster
// is allocated. No orientation normalization happens on this path; compose
// with Normalize if the caller needs it.
//
// Arguments:
//   - data: The candidate avatar bytes in any supported format.
//
// Returns:
//   - []byte: The re-encoded JPEG bytes.
//   - error: ErrNotAnImage for undecodable data, ErrTooLarge for declared
//     dimensions beyond the decode bound.
func (n *Normalizer) ValidAvatarJPEG(data []byte) ([]byte, error) {
	if err := checkDecodeBounds(data); err != nil {
		return nil, err
	}
	img, err := n.backend().Decode(data)
	if err != nil {
		return nil, ErrNotAnImage
	}
	return n.backend().Encode(img, FormatJPEG, AvatarJPEGQuality)
}

// checkDecodeBounds probes the declared dimensions from the container header
// without decoding the raster.
func checkDecodeBounds(data []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ErrNotAnImage
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return ErrDegenerateGeometry
	}
	if cfg.Width > maxDecodeDimension || cfg.Height > maxDecodeDimension {
		return ErrTooLarge
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxDecodePixels {
		return ErrTooLarge
	}
	return nil
}
