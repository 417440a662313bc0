package picture

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJPEG_FlattensAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 10, B: 10, A: uint8(x * 16)})
		}
	}
	out, err := encodeJPEG(img, 25)
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 16, decoded.Bounds().Dx())
}

func TestEncodeJPEG_FlattensPalette(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 16, 16), color.Palette{
		color.RGBA{R: 255, A: 255},
		color.RGBA{B: 255, A: 255},
	})
	for i := range img.Pix {
		img.Pix[i] = uint8(i % 2)
	}
	out, err := encodeJPEG(img, 25)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestBaselineSize_NativeReencode(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	size := baselineSize(img, "png", buf.Bytes())
	assert.Greater(t, size, 0)
}

func TestBaselineSize_UnknownFormatFallsBackToRawLength(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	raw := make([]byte, 123)
	assert.Equal(t, 123, baselineSize(img, "webp", raw))
}

func TestBaselineSize_JPEGUsesDefaultQuality(t *testing.T) {
	img := image.NewYCbCr(image.Rect(0, 0, 16, 16), image.YCbCrSubsampleRatio420)
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	size := baselineSize(img, "jpeg", nil)
	assert.Equal(t, buf.Len(), size)
}
