package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFixture(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessReencodesToWebp(t *testing.T) {
	p := NewIconProcessor(600, 80)
	icon, err := p.Process("flag.png", pngFixture(t, 100, 80))
	require.NoError(t, err)

	assert.Equal(t, "flag.webp", icon.Name)
	decoded, err := webp.Decode(bytes.NewReader(icon.Data))
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 80, decoded.Bounds().Dy())
}

func TestProcessDownscalesOversizedIcons(t *testing.T) {
	p := NewIconProcessor(50, 80)
	icon, err := p.Process("big.png", pngFixture(t, 200, 100))
	require.NoError(t, err)

	decoded, err := webp.Decode(bytes.NewReader(icon.Data))
	require.NoError(t, err)
	assert.Equal(t, 50, decoded.Bounds().Dx())
	assert.Equal(t, 25, decoded.Bounds().Dy())
}

func TestProcessAcceptsWebpInput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, webp.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10)), &webp.Options{Quality: 90}))

	p := NewIconProcessor(600, 80)
	icon, err := p.Process("already.webp", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "already.webp", icon.Name)
}

func TestProcessRejectsBadUploads(t *testing.T) {
	p := NewIconProcessor(600, 80)

	_, err := p.Process("empty.png", nil)
	require.Error(t, err)

	_, err = p.Process("junk.png", []byte("not an image at all"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported"))
}

func TestProcessNamesNamelessUploads(t *testing.T) {
	p := NewIconProcessor(600, 80)
	icon, err := p.Process("", pngFixture(t, 10, 10))
	require.NoError(t, err)
	assert.Equal(t, "icon.webp", icon.Name)
}
