package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/rs/zerolog"

	"github.com/danielflood/microburbs/internal/config"
	"github.com/danielflood/microburbs/internal/geo"
	"github.com/danielflood/microburbs/internal/geometry"
	"github.com/danielflood/microburbs/internal/imaging"
	"github.com/danielflood/microburbs/internal/ocr"
	"github.com/danielflood/microburbs/internal/orient"
	"github.com/danielflood/microburbs/internal/service"
)

var tagBg = color.NRGBA{0, 0, 0, 255}

func runVector(args []string, cfg config.Config) error {
	fs := flag.NewFlagSet("vector", flag.ExitOnError)
	imagePath := fs.String("image", "", "path to map screenshot (north up)")
	pointsArg := fs.String("points", "", `building front then street point: "x0,y0;x1,y1"`)
	out := fs.String("out", "", "annotated output path (default <image>_annotated.png)")
	fs.Parse(args)

	if *imagePath == "" || *pointsArg == "" {
		return fmt.Errorf("-image and -points are required")
	}
	points, err := parsePoints(*pointsArg)
	if err != nil {
		return err
	}

	res, err := orient.FromVector(points)
	if err != nil {
		return err
	}

	col, err := imaging.ParseColor(cfg.AnnotateColor)
	if err != nil {
		return fmt.Errorf("bad annotate_color: %w", err)
	}

	img, err := imaging.NewImageCache().Load(*imagePath)
	if err != nil {
		return err
	}
	canvas := imaging.NewCanvas(img)
	canvas.DrawMarker(res.Origin, 4, col)
	canvas.DrawMarker(res.Target, 4, col)
	canvas.DrawArrow(res.Origin, res.Target, col)
	canvas.DrawTag(geometry.PixelPoint{X: 10, Y: 10}, resultTag(res.Compass, res.Bearing), col, tagBg)

	outPath := *out
	if outPath == "" {
		outPath = annotatedPath(*imagePath)
	}
	if err := imaging.SavePNG(canvas.Image(), outPath); err != nil {
		return err
	}

	fmt.Printf("Facing: %s (%.1f°)\n", res.Compass, res.Bearing)
	fmt.Printf("Saved annotated image to: %s\n", outPath)
	return nil
}

func runFrontage(args []string, cfg config.Config) error {
	fs := flag.NewFlagSet("frontage", flag.ExitOnError)
	imagePath := fs.String("image", "", "path to map screenshot (north up)")
	pointsArg := fs.String("points", "", `frontage then street: "hx0,hy0;hx1,hy1;sx0,sy0;sx1,sy1"`)
	out := fs.String("out", "", "annotated output path (default <image>_annotated.png)")
	fs.Parse(args)

	if *imagePath == "" || *pointsArg == "" {
		return fmt.Errorf("-image and -points are required")
	}
	points, err := parsePoints(*pointsArg)
	if err != nil {
		return err
	}

	res, err := orient.FromFrontage(points)
	if err != nil {
		return err
	}

	col, err := imaging.ParseColor(cfg.AnnotateColor)
	if err != nil {
		return fmt.Errorf("bad annotate_color: %w", err)
	}

	img, err := imaging.NewImageCache().Load(*imagePath)
	if err != nil {
		return err
	}
	canvas := imaging.NewCanvas(img)
	canvas.DrawSegment(points[0], points[1], col)
	canvas.DrawSegment(points[2], points[3], col)
	for _, p := range points {
		canvas.DrawMarker(p, 4, col)
	}
	tip := res.Anchor.Add(res.Normal.Scale(cfg.ArrowLengthPx))
	canvas.DrawArrow(res.Anchor, tip, col)
	canvas.DrawTag(geometry.PixelPoint{X: 10, Y: 10}, resultTag(res.Compass, res.Bearing), col, tagBg)

	outPath := *out
	if outPath == "" {
		outPath = annotatedPath(*imagePath)
	}
	if err := imaging.SavePNG(canvas.Image(), outPath); err != nil {
		return err
	}

	fmt.Printf("Facing: %s (%.1f°)\n", res.Compass, res.Bearing)
	fmt.Printf("Saved annotated image to: %s\n", outPath)
	return nil
}

func runLabel(args []string, cfg config.Config, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("label", flag.ExitOnError)
	imagePath := fs.String("image", "", "path to map screenshot (north up)")
	label := fs.String("label", "", "house label to locate, e.g. 13")
	region := fs.String("region", "", `restrict OCR to "x0,y0,x1,y1" (full image by default)`)
	out := fs.String("out", "", "annotated output path (default <image>_annotated.png)")
	fs.Parse(args)

	if *imagePath == "" || *label == "" {
		return fmt.Errorf("-image and -label are required")
	}

	img, err := imaging.NewImageCache().Load(*imagePath)
	if err != nil {
		return err
	}

	prepped := imaging.PrepareForOCR(img, cfg.OCRBlurRadius, uint8(cfg.OCRThreshold))

	var words []ocr.Word
	if *region != "" {
		rect, err := parseRegion(*region)
		if err != nil {
			return err
		}
		words, err = ocr.ExtractWordsFromRegion(prepped, rect, cfg.OCRLanguage)
		if err != nil {
			return err
		}
	} else {
		// Tesseract wants a file path, so the preprocessed bitmap goes
		// through a temporary PNG.
		tmp, err := os.CreateTemp("", "orient-ocr-*.png")
		if err != nil {
			return err
		}
		tmpPath := tmp.Name()
		tmp.Close()
		defer os.Remove(tmpPath)
		if err := imaging.SavePNG(prepped, tmpPath); err != nil {
			return err
		}
		words, err = ocr.ExtractWords(tmpPath, cfg.OCRLanguage)
		if err != nil {
			return err
		}
	}
	logger.Debug().Int("words", len(words)).Msg("ocr complete")

	res, err := orient.FromLabels(
		ocr.ToOrientWords(words, cfg.OCRMinConfidence),
		*label,
		orient.MinLengthFilter(cfg.MinRoadLabelLen),
	)
	if err != nil {
		return err
	}

	col, err := imaging.ParseColor(cfg.AnnotateColor)
	if err != nil {
		return fmt.Errorf("bad annotate_color: %w", err)
	}
	canvas := imaging.NewCanvas(img)
	canvas.DrawMarker(res.House, 4, col)
	canvas.DrawArrow(res.House, res.RoadPoint, col)
	canvas.DrawTag(geometry.PixelPoint{X: 10, Y: 10}, resultTag(res.Compass, res.Bearing), col, tagBg)

	outPath := *out
	if outPath == "" {
		outPath = annotatedPath(*imagePath)
	}
	if err := imaging.SavePNG(canvas.Image(), outPath); err != nil {
		return err
	}

	fmt.Printf("House %s faces %s (%.1f°) toward %s\n", *label, res.Compass, res.Bearing, res.RoadLabel)
	fmt.Printf("Saved annotated image to: %s\n", outPath)
	return nil
}

func runAddress(args []string, cfg config.Config, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("address", flag.ExitOnError)
	addr := fs.String("addr", "", "street address to look up")
	radius := fs.Int("radius", cfg.SearchRadiusM, "road search radius in meters")
	fs.Parse(args)

	if *addr == "" {
		return fmt.Errorf("-addr is required")
	}

	svc := service.NewAddressService(
		geo.NewGeocoder(cfg.NominatimURL, cfg.UserAgent, cfg.HTTPTimeout),
		geo.NewRoadFetcher(cfg.OverpassURL, cfg.UserAgent, cfg.HTTPTimeout),
		*radius,
	)

	logger.Info().Str("address", *addr).Int("radius_m", *radius).Msg("looking up address")
	res, err := svc.Orient(context.Background(), *addr)
	if err != nil {
		return err
	}

	fmt.Printf("Location: %.6f, %.6f\n", res.Location.Lat, res.Location.Lon)
	fmt.Printf("Facing:   %s (%.2f°)\n", res.Compass, res.Bearing)
	if res.RoadName != "" {
		fmt.Printf("Road:     %s\n", res.RoadName)
	}
	fmt.Printf("Distance: %.2f m\n", res.DistanceM)
	return nil
}

func resultTag(compass string, bearing float64) string {
	return fmt.Sprintf("%s (%.1f°)", compass, math.Round(bearing*10)/10)
}
