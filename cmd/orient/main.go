// Command orient estimates which way a building faces.
//
// Four modes cover the four evidence sources:
//
//	orient vector   -image map.png -points "420,310;430,480"
//	orient frontage -image map.png -points "400,300;460,305;390,470;470,475"
//	orient label    -image houses.png -label 13
//	orient address  -addr "3 David St, St Kilda East VIC 3183"
//
// The pixel modes write an annotated copy of the input image next to it.
// North must be up in the input image.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/danielflood/microburbs/internal/config"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("orient %s (%s)\n", Version, GitCommit)
		return
	case "--help", "-h", "help":
		usage()
		return
	}

	cfg, err := config.Load(".")
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot load config")
	}

	var runErr error
	switch os.Args[1] {
	case "vector":
		runErr = runVector(os.Args[2:], cfg)
	case "frontage":
		runErr = runFrontage(os.Args[2:], cfg)
	case "label":
		runErr = runLabel(os.Args[2:], cfg, logger)
	case "address":
		runErr = runAddress(os.Args[2:], cfg, logger)
	default:
		usage()
		os.Exit(2)
	}

	if runErr != nil {
		logger.Fatal().Err(runErr).Str("mode", os.Args[1]).Msg("orientation failed")
	}
}

func usage() {
	fmt.Println("orient - estimate which way a building faces")
	fmt.Println()
	fmt.Println("Usage: orient <mode> [flags]")
	fmt.Println()
	fmt.Println("Modes:")
	fmt.Println("  vector    2 points: building front, then a point toward the street")
	fmt.Println("  frontage  4 points: 2 along the frontage, 2 along the street")
	fmt.Println("  label     locate a house number via OCR and face the nearest road label")
	fmt.Println("  address   geocode an address and face the nearest mapped road")
	fmt.Println()
	fmt.Println("Run 'orient <mode> -h' for mode flags.")
	fmt.Println()
	fmt.Println("Configuration is read from ./config.yaml and ORIENT_* environment")
	fmt.Println("variables; every setting has a default.")
}
