// Package imaging normalises uploaded animal photos.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"

	"github.com/erazemk/zavetisce/internal/model"
)

const (
	// MaxDimension bounds the stored photo's width and height.
	MaxDimension = 1024
	// MaxUploadBytes bounds the accepted upload size.
	MaxUploadBytes = 10 << 20
	// Quality is the JPEG quality of stored photos.
	Quality = 85
)

var accepted = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Photo is a photo ready for storage. It is always a JPEG.
type Photo struct {
	Data   []byte
	MIME   string
	Width  int
	Height int
}

// Process sniffs the upload, rejects anything that is not a JPEG or PNG,
// fits it within MaxDimension and re-encodes it as JPEG. Bad input is
// reported as model.ErrValidation.
func Process(r io.Reader) (*Photo, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading photo: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return nil, model.Invalid("photo larger than %d bytes", MaxUploadBytes)
	}

	// The client's Content-Type is not trusted.
	if detected := http.DetectContentType(data); !accepted[detected] {
		return nil, model.Invalid("unsupported photo format %s, only JPEG and PNG are accepted", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, model.Invalid("decoding photo: %v", err)
	}
	img = fit(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encoding photo: %w", err)
	}

	b := img.Bounds()
	return &Photo{Data: buf.Bytes(), MIME: "image/jpeg", Width: b.Dx(), Height: b.Dy()}, nil
}

// fit scales img down, keeping its aspect ratio, so neither side exceeds
// maxDim. Images already within bounds are returned unchanged.
func fit(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := maxDim, maxDim
	if w > h {
		newH = max(1, h*maxDim/w)
	} else {
		newW = max(1, w*maxDim/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
