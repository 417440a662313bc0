package picture

import (
	"bytes"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path"
	"strings"

	// Registered decoders for avatar formats without a stdlib package.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	picturesMarker   = "pictures/"
	compressedSuffix = "-CompressedTest2"
)

// baselineSize estimates the original encoded size by re-serializing the
// decoded image in its native format, so the shrink comparison isn't skewed
// by whatever encoder produced the fetched bytes. Formats without a stdlib
// encoder fall back to the fetched byte count.
func baselineSize(img image.Image, format string, raw []byte) int {
	var buf bytes.Buffer
	var err error
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		return len(raw)
	}
	if err != nil {
		return len(raw)
	}
	return buf.Len()
}

// encodeJPEG produces the re-encode candidate at the given quality.
// Alpha and palette sources are flattened first: JPEG supports neither.
func encodeJPEG(src image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flatten(src), &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func flatten(src image.Image) image.Image {
	switch src.(type) {
	case *image.YCbCr, *image.Gray, *image.CMYK:
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}

// deriveFilename extracts the path segment between the pictures/ marker and
// the file extension and appends the compressed-variant suffix. Downstream
// references assume exactly this naming, so it is a literal substring rule,
// not a general path parser.
func deriveFilename(pictureURL string) (string, bool) {
	i := strings.Index(pictureURL, picturesMarker)
	if i < 0 {
		return "", false
	}
	rest := pictureURL[i+len(picturesMarker):]
	if j := strings.IndexAny(rest, "?#"); j >= 0 {
		rest = rest[:j]
	}
	base := strings.TrimSuffix(rest, path.Ext(rest))
	if base == "" {
		return "", false
	}
	return base + compressedSuffix + ".jpg", true
}
