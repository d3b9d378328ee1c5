package images

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"net/http"

	"github.com/chai2010/webp"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/bmp"
)

// Format identifies an encoding for raster image bytes.
type Format string

const (
	// FormatJPEG is the JPEG image format.
	FormatJPEG Format = "jpeg"
	// FormatPNG is the PNG image format.
	FormatPNG Format = "png"
	// FormatGIF is the GIF image format (first frame only on decode).
	FormatGIF Format = "gif"
	// FormatWebP is the WebP image format.
	FormatWebP Format = "webp"
	// FormatBMP is the BMP image format.
	FormatBMP Format = "bmp"
)

// InterpolationQuality selects the resampling algorithm used when a raster
// is redrawn at a new size. Higher quality costs more compute.
type InterpolationQuality int

const (
	// InterpolationNearest uses nearest-neighbor sampling (fastest, lowest quality).
	InterpolationNearest InterpolationQuality = iota
	// InterpolationBilinear uses bilinear interpolation (fast, good quality).
	InterpolationBilinear
	// InterpolationBicubic uses bicubic interpolation (slower, better quality).
	InterpolationBicubic
	// InterpolationLanczos uses Lanczos resampling with a=3 (slowest, best quality).
	InterpolationLanczos
)

// interpolation maps the quality level to a resampling filter. Unknown
// levels fall back to the highest quality.
func (q InterpolationQuality) interpolation() resize.InterpolationFunction {
	switch q {
	case InterpolationNearest:
		return resize.NearestNeighbor
	case InterpolationBilinear:
		return resize.Bilinear
	case InterpolationBicubic:
		return resize.Bicubic
	default:
		return resize.Lanczos3
	}
}

// Transform describes how Draw maps source pixels into the target raster.
type Transform struct {
	// Orientation is the source tag to bake into the redraw. The drawn
	// result is always upright.
	Orientation Orientation
	// Quality selects the resampling algorithm.
	Quality InterpolationQuality
}

// Codec is the decode, encode, and draw capability the normalization logic
// is expressed in terms of. Implementations must be safe for concurrent use.
type Codec interface {
	// Decode parses data into an Image, extracting the orientation tag when
	// the container carries one. Undecodable data returns ErrNotAnImage.
	Decode(data []byte) (Image, error)
	// Encode serializes the raster in the given format. quality is a 1-100
	// level; formats without a quality knob ignore it.
	Encode(m Image, format Format, quality int) ([]byte, error)
	// Draw redraws the raster through t into a new width x height buffer.
	// The result is upright and device independent (scale 1).
	Draw(m Image, t Transform, width, height int) (Image, error)
}

// StdCodec implements Codec on the standard library image codecs plus WebP
// and BMP support. The zero value is ready to use.
type StdCodec struct{}

// Decode sniffs the container format, decodes the raster, and reads the EXIF
// orientation tag when present.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - Image: The decoded image with its declared orientation and scale 1.
//   - error: ErrNotAnImage if the bytes do not decode.
func (StdCodec) Decode(data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrNotAnImage
	}

	var (
		raster image.Image
		format Format
		err    error
	)
	switch http.DetectContentType(data) {
	case "image/jpeg":
		format = FormatJPEG
		raster, err = jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		format = FormatPNG
		raster, err = png.Decode(bytes.NewReader(data))
	case "image/gif":
		format = FormatGIF
		raster, err = gif.Decode(bytes.NewReader(data))
	case "image/webp":
		format = FormatWebP
		raster, err = webp.Decode(bytes.NewReader(data))
	case "image/bmp":
		format = FormatBMP
		raster, err = bmp.Decode(bytes.NewReader(data))
	default:
		var name string
		raster, name, err = image.Decode(bytes.NewReader(data))
		format = Format(name)
	}
	if err != nil {
		return Image{}, ErrNotAnImage
	}

	return Image{
		Raster:      raster,
		Orientation: exifOrientation(data),
		Scale:       1,
		Format:      format,
	}, nil
}

// Encode serializes the raster as the given format.
//
// Arguments:
//   - m: The image to encode.
//   - format: The target container format.
//   - quality: Encoding quality 1-100, clamped; ignored by PNG, GIF, and BMP.
//
// Returns:
//   - []byte: The encoded bytes.
//   - error: An error if the raster is missing or the format is unsupported.
func (StdCodec) Encode(m Image, format Format, quality int) ([]byte, error) {
	if m.Raster == nil {
		return nil, ErrDegenerateGeometry
	}
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		if err := jpeg.Encode(&buf, m.Raster, &jpeg.Options{Quality: quality}); err != nil {
			return nil, errors.Wrap(err, "encode jpeg")
		}
	case FormatPNG:
		if err := png.Encode(&buf, m.Raster); err != nil {
			return nil, errors.Wrap(err, "encode png")
		}
	case FormatGIF:
		if err := gif.Encode(&buf, m.Raster, nil); err != nil {
			return nil, errors.Wrap(err, "encode gif")
		}
	case FormatWebP:
		if err := webp.Encode(&buf, m.Raster, &webp.Options{Quality: float32(quality)}); err != nil {
			return nil, errors.Wrap(err, "encode webp")
		}
	case FormatBMP:
		if err := bmp.Encode(&buf, m.Raster); err != nil {
			return nil, errors.Wrap(err, "encode bmp")
		}
	default:
		return nil, errors.Errorf("unsupported encode format: %s", format)
	}
	return buf.Bytes(), nil
}

// Draw redraws the raster upright and scales it to width x height pixels.
// The orientation correction runs first, so the target dimensions are the
// post-correction ones.
func (StdCodec) Draw(m Image, t Transform, width, height int) (Image, error) {
	if m.Raster == nil || width < 1 || height < 1 {
		return Image{}, ErrDegenerateGeometry
	}

	raster := reorient(m.Raster, t.Orientation)
	if b := raster.Bounds(); b.Dx() != width || b.Dy() != height {
		raster = resize.Resize(uint(width), uint(height), raster, t.Quality.interpolation())
	}

	return Image{
		Raster:      raster,
		Orientation: OrientationUp,
		Scale:       1,
		Format:      m.Format,
	}, nil
}

// exifOrientation extracts the EXIF orientation tag from encoded bytes.
// Missing or unparseable EXIF is not an error; the default is up.
func exifOrientation(data []byte) Orientation {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return OrientationUp
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return OrientationUp
	}
	v, err := tag.Int(0)
	if err != nil || !Orientation(v).Valid() {
		return OrientationUp
	}
	return Orientation(v)
}
