package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/danielflood/microburbs/internal/geometry"
	"github.com/danielflood/microburbs/internal/orient"
)

// Word is a recognized word with its location and OCR confidence.
type Word struct {
	// Text is the recognized word, surrounding whitespace stripped.
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	// Bounds is the word's bounding box in image pixels.
	Bounds image.Rectangle `json:"-"`
}

// Center returns the centroid of the word's bounding box.
func (w Word) Center() geometry.PixelPoint {
	return geometry.PixelPoint{
		X: float64(w.Bounds.Min.X+w.Bounds.Max.X) / 2,
		Y: float64(w.Bounds.Min.Y+w.Bounds.Max.Y) / 2,
	}
}

// ExtractWords runs word-level OCR on an image file.
//
// Tesseract's RIL_WORD iterator supplies one box per word; empty and
// whitespace-only detections are dropped. The language is a Tesseract
// language code such as "eng", and its data files must be installed.
func ExtractWords(imagePath, language string) ([]Word, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		words = append(words, Word{
			Text:       text,
			Confidence: float64(box.Confidence) / 100.0,
			Bounds:     box.Box,
		})
	}
	return words, nil
}

// ExtractWordsFromRegion runs word-level OCR on a rectangular region of an
// already-loaded image. Returned bounds are shifted back into full-image
// coordinates, so a word at (10,20) inside a region starting at (100,50)
// reports (110,70).
//
// Tesseract needs a file path, so the crop goes through a temporary PNG
// that is removed before returning.
func ExtractWordsFromRegion(img image.Image, region image.Rectangle, language string) ([]Word, error) {
	cropped := imaging.Crop(img, region)

	tmpFile, err := os.CreateTemp("", "ocr-region-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, cropped); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmpFile.Close()

	words, err := ExtractWords(tmpPath, language)
	if err != nil {
		return nil, err
	}

	offset := region.Min
	for i := range words {
		words[i].Bounds = words[i].Bounds.Add(offset)
	}
	return words, nil
}

// ToOrientWords converts OCR detections into the core's candidate form,
// keeping only words at or above minConfidence.
func ToOrientWords(words []Word, minConfidence float64) []orient.Word {
	out := make([]orient.Word, 0, len(words))
	for _, w := range words {
		if w.Confidence < minConfidence {
			continue
		}
		out = append(out, orient.Word{Text: w.Text, Center: w.Center()})
	}
	return out
}
