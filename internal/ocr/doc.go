// Package ocr extracts located words from map screenshots using Tesseract
// (via gosseract/v2), producing the (text, centroid) pairs the label
// workflow consumes.
//
// # Prerequisites
//
// Tesseract must be installed on the system together with the language data
// for the configured language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// The default language is English ("eng"); any Tesseract language code can
// be configured instead.
//
// # Performance
//
// OCR is computationally expensive. When the rough position of the labels
// is known, ExtractWordsFromRegion on a crop is much faster than whole-image
// extraction, and the returned coordinates are already mapped back to the
// full image.
package ocr
