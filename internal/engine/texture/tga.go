package texture

import (
	"errors"
	"fmt"
	"image"
)

// TGA image types.
const (
	tgaTypeUncompressed = 2
	tgaTypeRLE          = 10
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("tga: pixel data truncated")

// decodeTGA decodes an uncompressed (type 2) or RLE (type 10) true-colour
// TGA file. The returned image is top-down like every other decoder.
func decodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, errors.New("tga: header too short")
	}

	idLength := int(data[0])
	if data[1] != 0 {
		return nil, errors.New("tga: colour-mapped images not supported")
	}
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topDown := data[17]&0x20 != 0

	if imageType != tgaTypeUncompressed && imageType != tgaTypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}
	if tgaHeaderSize+idLength > len(data) {
		return nil, errTGATruncated
	}

	src := data[tgaHeaderSize+idLength:]
	stride := bpp / 8
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// put writes the n-th pixel in file order (BGR(A)) into img.
	put := func(n int, px []byte) {
		x, y := n%width, n/width
		if !topDown {
			y = height - 1 - y
		}
		i := img.PixOffset(x, y)
		img.Pix[i+0] = px[2]
		img.Pix[i+1] = px[1]
		img.Pix[i+2] = px[0]
		img.Pix[i+3] = 255
		if stride == 4 {
			img.Pix[i+3] = px[3]
		}
	}

	total := width * height
	if imageType == tgaTypeUncompressed {
		if len(src) < total*stride {
			return nil, errTGATruncated
		}
		for n := 0; n < total; n++ {
			put(n, src[n*stride:])
		}
		return img, nil
	}

	n, off := 0, 0
	for n < total {
		if off >= len(src) {
			return nil, errTGATruncated
		}
		packet := src[off]
		off++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if off+stride > len(src) {
				return nil, errTGATruncated
			}
			px := src[off : off+stride]
			off += stride
			for i := 0; i < count && n < total; i++ {
				put(n, px)
				n++
			}
			continue
		}

		for i := 0; i < count && n < total; i++ {
			if off+stride > len(src) {
				return nil, errTGATruncated
			}
			put(n, src[off:off+stride])
			off += stride
			n++
		}
	}
	return img, nil
}
