// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package imaging turns uploaded cover images into stored JPEG objects.

Pipeline:

  - Decode: JPEG, PNG, GIF and WebP input.
  - Resize: scale down to a maximum width, aspect ratio kept.
  - Encode: JPEG at a fixed quality, transparency flattened onto white.
  - Store: content addressed object key in an [ObjectStore].
*/
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	// Decoders register themselves with image.Decode.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned for input no registered decoder accepts.
var ErrUnsupportedFormat = errors.New("imaging: unsupported image format")

// ErrEmptyImage is returned for zero-length input or a zero-sized image.
var ErrEmptyImage = errors.New("imaging: empty image")

// ErrTooLarge is returned when the declared dimensions exceed the pixel budget.
var ErrTooLarge = errors.New("imaging: image dimensions exceed the pixel budget")

// DefaultMaxPixels is the pixel budget used when none is configured.
const DefaultMaxPixels = 40_000_000

// # Processor

// Processor decodes, scales and re-encodes images.
type Processor struct {
	maxWidth  int
	quality   int
	maxPixels int64
}

// NewProcessor creates a processor. Non-positive widths disable scaling, the
// quality is clamped into the range accepted by image/jpeg and a non-positive
// pixel budget falls back to [DefaultMaxPixels].
func NewProcessor(maxWidth, quality int, maxPixels int64) *Processor {
	if quality < 1 {
		quality = jpeg.DefaultQuality
	}
	if quality > 100 {
		quality = 100
	}
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &Processor{maxWidth: maxWidth, quality: quality, maxPixels: maxPixels}
}

// Process returns the JPEG encoding of the scaled input.
//
// The header is read first so that an image declaring more pixels than the
// budget is rejected before its pixel buffer is allocated.
func (processor *Processor) Process(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, decodeFailure(err)
	}
	if int64(config.Width)*int64(config.Height) > processor.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, config.Width, config.Height)
	}

	source, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, decodeFailure(err)
	}

	bounds := source.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, ErrEmptyImage
	}

	width, height := processor.targetSize(bounds.Dx(), bounds.Dy())

	// JPEG has no alpha channel, so the canvas starts white.
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(canvas, canvas.Bounds(), source, bounds, draw.Over, nil)

	var output bytes.Buffer
	if err := jpeg.Encode(&output, canvas, &jpeg.Options{Quality: processor.quality}); err != nil {
		return nil, fmt.Errorf("imaging: failed to encode %s as jpeg: %w", format, err)
	}

	return output.Bytes(), nil
}

func decodeFailure(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return ErrUnsupportedFormat
	}
	return fmt.Errorf("imaging: failed to decode image: %w", err)
}

func (processor *Processor) targetSize(width, height int) (int, int) {
	if processor.maxWidth <= 0 || width <= processor.maxWidth {
		return width, height
	}

	scaled := height * processor.maxWidth / width
	if scaled < 1 {
		scaled = 1
	}
	return processor.maxWidth, scaled
}
