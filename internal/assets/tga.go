package assets

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	tgaTrueColor    = 2
	tgaGray         = 3
	tgaTrueColorRLE = 10
	tgaGrayRLE      = 11
)

// DecodeTGA decodes an uncompressed or RLE TGA file. Grayscale files
// (8 bpp) decode to *image.Gray, which suits elevation maps; true-colour
// files (24/32 bpp) decode to *image.NRGBA.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("%w: TGA data too short", ErrUnsupportedFormat)
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped TGA", ErrUnsupportedFormat)
	}

	gray := imageType == tgaGray || imageType == tgaGrayRLE
	rle := imageType == tgaTrueColorRLE || imageType == tgaGrayRLE
	switch {
	case imageType != tgaTrueColor && imageType != tgaTrueColorRLE && !gray:
		return nil, fmt.Errorf("%w: TGA type %d", ErrUnsupportedFormat, imageType)
	case gray && bpp != 8:
		return nil, fmt.Errorf("%w: grayscale TGA with %d bpp", ErrUnsupportedFormat, bpp)
	case !gray && bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("%w: TGA bit depth %d", ErrUnsupportedFormat, bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}

	d := &tgaDecoder{
		src:         data[offset:],
		width:       width,
		height:      height,
		bytesPP:     bpp / 8,
		topToBottom: topToBottom,
	}
	if gray {
		img := image.NewGray(image.Rect(0, 0, width, height))
		d.put = func(i int, px []byte) { img.Pix[d.dest(i)] = px[0] }
		return img, d.run(rle)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	d.put = func(i int, px []byte) {
		a := uint8(255)
		if len(px) == 4 {
			a = px[3]
		}
		img.SetNRGBA(i%width, d.row(i), color.NRGBA{R: px[2], G: px[1], B: px[0], A: a})
	}
	return img, d.run(rle)
}

// tgaDecoder walks the pixel stream and hands each pixel to put.
type tgaDecoder struct {
	src         []byte
	pos         int
	width       int
	height      int
	bytesPP     int
	topToBottom bool
	put         func(i int, px []byte)
}

// row returns the image row of stream pixel i; TGA defaults to bottom-up.
func (d *tgaDecoder) row(i int) int {
	y := i / d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	return y
}

// dest returns the offset of stream pixel i in a one byte per pixel image.
func (d *tgaDecoder) dest(i int) int {
	return d.row(i)*d.width + i%d.width
}

func (d *tgaDecoder) pixel() ([]byte, error) {
	if d.pos+d.bytesPP > len(d.src) {
		return nil, fmt.Errorf("TGA pixel data truncated")
	}
	px := d.src[d.pos : d.pos+d.bytesPP]
	d.pos += d.bytesPP
	return px, nil
}

func (d *tgaDecoder) run(rle bool) error {
	total := d.width * d.height
	for i := 0; i < total; {
		if !rle {
			px, err := d.pixel()
			if err != nil {
				return err
			}
			d.put(i, px)
			i++
			continue
		}

		if d.pos >= len(d.src) {
			return fmt.Errorf("TGA RLE data truncated")
		}
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run: one pixel repeated
			px, err := d.pixel()
			if err != nil {
				return err
			}
			for n := 0; n < count && i < total; n++ {
				d.put(i, px)
				i++
			}
			continue
		}

		// Raw: count literal pixels
		for n := 0; n < count && i < total; n++ {
			px, err := d.pixel()
			if err != nil {
				return err
			}
			d.put(i, px)
			i++
		}
	}
	return nil
}
