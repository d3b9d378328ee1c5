package images

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidAvatarJPEGFromJPEG(t *testing.T) {
	data := encodeJPEG(t, gradientRaster(128, 96))

	out, err := ValidAvatarJPEG(data)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	decoded, name, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err, "re-encoded bytes must decode")
	assert.Equal(t, "jpeg", name, "output is canonical JPEG")
	assert.Equal(t, 128, decoded.Bounds().Dx())
	assert.Equal(t, 96, decoded.Bounds().Dy())
}

// TestValidAvatarJPEGNormalizesFormat verifies non-JPEG input comes back as
// JPEG: the validator canonicalizes, not just checks.
func TestValidAvatarJPEGNormalizesFormat(t *testing.T) {
	raster := gradientRaster(64, 64)

	tests := []struct {
		name string
		data []byte
	}{
		{"PNG", encodePNG(t, raster)},
		{"GIF", encodeGIF(t, raster)},
		{"WebP", encodeWebP(t, raster)},
		{"BMP", encodeBMP(t, raster)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ValidAvatarJPEG(tt.data)
			require.NoError(t, err)

			_, name, err := image.Decode(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, "jpeg", name)
		})
	}
}

func TestValidAvatarJPEGRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"Empty", nil},
		{"Text", []byte("hello, this is not an avatar")},
		{"TruncatedPNG", encodePNG(t, gradientRaster(16, 16))[:20]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ValidAvatarJPEG(tt.data)
			assert.ErrorIs(t, err, ErrNotAnImage)
			assert.Nil(t, out)
		})
	}
}

// TestValidAvatarJPEGDecodeBound verifies the header probe rejects oversized
// declared dimensions before the raster would be allocated.
func TestValidAvatarJPEGDecodeBound(t *testing.T) {
	// A 9000x1 strip exceeds the per-axis cap while staying cheap to build.
	data := encodePNG(t, gradientRaster(9000, 1))

	out, err := ValidAvatarJPEG(data)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Nil(t, out)
}

// TestValidAvatarJPEGStripsTrailingBytes verifies corrupt trailing data is
// absent from the canonical re-encoding.
func TestValidAvatarJPEGStripsTrailingBytes(t *testing.T) {
	data := encodeJPEG(t, gradientRaster(32, 32))
	data = append(data, []byte("trailing garbage payload")...)

	out, err := ValidAvatarJPEG(data)
	require.NoError(t, err, "decoders tolerate trailing bytes")

	_, name, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", name)
	assert.NotContains(t, string(out), "trailing garbage payload")
}

func BenchmarkValidAvatarJPEG(b *testing.B) {
	data, err := StdCodec{}.Encode(Image{Raster: gradientRaster(512, 512)}, FormatJPEG, 80)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := ValidAvatarJPEG(data)
		if err != nil {
			b.Fatal(err)
		}
		_ = out
	}
}
