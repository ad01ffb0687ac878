package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// Profile images are bounded to this edge length before storage.
const maxImageEdge = 512

// NormalizeImage decodes an uploaded jpeg/png/webp image, downscales it
// so its longest edge fits maxImageEdge, and re-encodes it as webp.
func NormalizeImage(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxImageEdge || h > maxImageEdge {
		if w >= h {
			h = h * maxImageEdge / w
			w = maxImageEdge
		} else {
			w = w * maxImageEdge / h
			h = maxImageEdge
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func init() {
	// webp uploads decode through the same image.Decode path.
	image.RegisterFormat("webp", "RIFF????WEBP", webp.Decode, webp.DecodeConfig)
}
