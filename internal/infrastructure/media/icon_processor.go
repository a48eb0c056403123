// Package media provides image processing for entity icon uploads
package media

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/amourdesk/amourdesk-go/models/records"
)

// IconProcessor normalizes interest and language icon uploads before they are
// forwarded to the upstream: decode, downscale oversized images to the
// standard icon width, and re-encode as webp.
type IconProcessor struct {
	maxWidth int
	quality  int
}

// NewIconProcessor creates a processor with the configured icon width and
// webp quality.
func NewIconProcessor(maxWidth, quality int) *IconProcessor {
	if maxWidth <= 0 {
		maxWidth = 600
	}
	if quality <= 0 || quality > 100 {
		quality = 80
	}
	return &IconProcessor{maxWidth: maxWidth, quality: quality}
}

// Process decodes an uploaded icon, scales it down when it exceeds the icon
// width, and returns the webp-encoded attachment. Undecodable uploads are
// rejected.
func (p *IconProcessor) Process(filename string, data []byte) (*records.IconFile, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image upload")
	}

	src, err := decodeIcon(data)
	if err != nil {
		return nil, err
	}

	if src.Bounds().Dx() > p.maxWidth {
		src = imaging.Resize(src, p.maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: float32(p.quality)}); err != nil {
		return nil, fmt.Errorf("failed to encode icon: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" || base == "." {
		base = "icon"
	}
	return &records.IconFile{Name: base + ".webp", Data: buf.Bytes()}, nil
}

// decodeIcon accepts the formats the dashboard uploads: whatever imaging
// decodes (png, jpeg, gif, bmp, tiff) plus webp.
func decodeIcon(data []byte) (image.Image, error) {
	if src, err := imaging.Decode(bytes.NewReader(data)); err == nil {
		return src, nil
	}
	if src, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return src, nil
	}
	return nil, fmt.Errorf("unsupported image format")
}
