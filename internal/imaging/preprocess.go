package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
)

// PrepareForOCR runs the preprocessing pipeline that makes map screenshots
// legible to Tesseract: grayscale, a light Gaussian blur to knock out
// anti-aliasing noise, then a binary threshold that separates dark label
// text from the pale map background.
//
// level is the threshold cut: pixels brighter than it go white, the rest
// black. 180 works well for the standard light map styles.
func PrepareForOCR(img image.Image, blurRadius float64, level uint8) image.Image {
	gray := effect.Grayscale(img)
	blurred := blur.Gaussian(gray, blurRadius)
	return segment.Threshold(blurred, level)
}
