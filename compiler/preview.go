package compiler

import (
	"errors"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/msdffont"
)

// ErrEmptyAtlas is returned by PreviewImage and WritePreview for a font
// without a bitmap.
var ErrEmptyAtlas = errors.New("compiler: atlas bitmap is empty")

// PreviewImage wraps the atlas bitmap as an image without copying it.
// Alpha carries the true distance, so the image is not premultiplied.
//
// Decoded assets trust their declared bitmap length, so a bitmap that does
// not hold width*height texels yields a *msdffont.BitmapSizeError.
func PreviewImage(d *msdffont.FontData) (*image.NRGBA, error) {
	if d.BitmapWidth == 0 || d.BitmapHeight == 0 {
		return nil, ErrEmptyAtlas
	}
	want := uint64(d.BitmapWidth) * uint64(d.BitmapHeight) * msdffont.BytesPerPixel
	if uint64(len(d.Bitmap)) != want {
		return nil, &msdffont.BitmapSizeError{Width: d.BitmapWidth, Height: d.BitmapHeight, Len: len(d.Bitmap)}
	}

	w, h := int(d.BitmapWidth), int(d.BitmapHeight)
	return &image.NRGBA{
		Pix:    d.Bitmap,
		Stride: w * msdffont.BytesPerPixel,
		Rect:   image.Rect(0, 0, w, h),
	}, nil
}

// WritePreview saves the atlas bitmap as a PNG at path. Nothing is
// written when the bitmap is empty or mis-sized.
func WritePreview(path string, d *msdffont.FontData) (err error) {
	img, err := PreviewImage(d)
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is derived from user input intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return png.Encode(f, img)
}
