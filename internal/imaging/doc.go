// Package imaging handles the pixel-side I/O around orientation estimation:
// loading map screenshots, preprocessing them for OCR, and drawing result
// annotations (markers, segments, facing arrows, text tags) onto a copy of
// the source image.
//
// All coordinates are image-plane pixels: (0,0) top-left, X rightward, Y
// downward. Drawing operations silently clip at the image bounds.
//
// The ImageCache type is safe for concurrent use; a Canvas is not, and each
// annotation pass should own its own.
package imaging
