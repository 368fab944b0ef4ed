package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	photoshop "github.com/arnav-g24/PhotoShop"
	"github.com/arnav-g24/PhotoShop/imageio"
)

// parseHexColor parses a color of the form RRGGBB or #RRGGBB.
func parseHexColor(s string) (photoshop.Pixel, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return photoshop.Pixel{}, fmt.Errorf("expected RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return photoshop.Pixel{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return photoshop.NewPixel(int(v>>16)&0xff, int(v>>8)&0xff, int(v)&0xff), nil
}

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("output", "out.png",
		"Path to save the output image")
	filters := flag.String("filters", "",
		"Comma-separated list of filters to apply in order: "+
			"zeroblue, keeponlyblue, negate, solarize, grayscale, tint, "+
			"posterize, mirrorvertical, mirrorrighttoleft, mirrorhorizontal, "+
			"verticalflip, simpleblur, blur, edge, glass, chromakey, "+
			"encode, decode, caption")
	threshold := flag.Int("threshold", 127,
		"Threshold for solarize and edge detection")
	radius := flag.Int("radius", 2,
		"Radius for blur")
	span := flag.Int("span", 64,
		"Span for posterize")
	jitter := flag.Int("jitter", 5,
		"Jitter for the glass filter")
	seed := flag.Int64("seed", 0,
		"Random seed for the glass filter (0 = time-based)")
	tintFactors := flag.String("tint", "1.0,1.0,1.0",
		"Tint factors as red,blue,green")
	partnerFile := flag.String("partner", "",
		"Partner image for chromakey and encode")
	keyColor := flag.String("key", "00ff00",
		"Key color for chromakey (hex RRGGBB)")
	tolerance := flag.Float64("tolerance", 60.0,
		"Color distance tolerance for chromakey")
	captionText := flag.String("caption", "",
		"Text for the caption filter")
	captionColor := flag.String("captioncolor", "ffffff",
		"Caption color (hex RRGGBB)")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *filters == "" {
		fmt.Println("Please provide at least one filter using the -filters flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	grid, err := imageio.Load(*inputFile)
	if err != nil {
		fmt.Printf("Error loading image: %v\n", err)
		os.Exit(1)
	}

	var partner *photoshop.Grid
	if *partnerFile != "" {
		partner, err = imageio.Load(*partnerFile)
		if err != nil {
			fmt.Printf("Error loading partner image: %v\n", err)
			os.Exit(1)
		}
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	for _, name := range strings.Split(strings.ToLower(*filters), ",") {
		switch strings.TrimSpace(name) {
		case "zeroblue":
			grid.ZeroBlue()
		case "keeponlyblue":
			grid.KeepOnlyBlue()
		case "negate":
			grid.Negate()
		case "solarize":
			grid.Solarize(*threshold)
		case "grayscale":
			grid.Grayscale()
		case "tint":
			parts := strings.Split(*tintFactors, ",")
			if len(parts) != 3 {
				fmt.Printf("Invalid tint factors %q, expected red,blue,green\n", *tintFactors)
				os.Exit(1)
			}
			var f [3]float64
			for i, p := range parts {
				f[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
				if err != nil {
					fmt.Printf("Invalid tint factor %q: %v\n", p, err)
					os.Exit(1)
				}
			}
			grid.Tint(f[0], f[1], f[2])
		case "posterize":
			if err := grid.Posterize(*span); err != nil {
				fmt.Printf("Error applying posterize: %v\n", err)
				os.Exit(1)
			}
		case "mirrorvertical":
			grid.MirrorVertical()
		case "mirrorrighttoleft":
			grid.MirrorRightToLeft()
		case "mirrorhorizontal":
			grid.MirrorHorizontal()
		case "verticalflip":
			grid.VerticalFlip()
		case "simpleblur":
			grid = grid.SimpleBlur()
		case "blur":
			grid = grid.Blur(*radius)
		case "edge":
			grid.EdgeDetection(float64(*threshold))
		case "glass":
			grid = grid.GlassFilter(rng, *jitter)
		case "chromakey":
			if partner == nil {
				fmt.Println("chromakey requires a -partner image")
				os.Exit(1)
			}
			key, err := parseHexColor(*keyColor)
			if err != nil {
				fmt.Printf("Error parsing key color: %v\n", err)
				os.Exit(1)
			}
			if err := grid.Chromakey(partner, key, *tolerance); err != nil {
				fmt.Printf("Error applying chromakey: %v\n", err)
				os.Exit(1)
			}
		case "encode":
			if partner == nil {
				fmt.Println("encode requires a -partner message image")
				os.Exit(1)
			}
			if err := grid.Encode(partner); err != nil {
				fmt.Printf("Error encoding message: %v\n", err)
				os.Exit(1)
			}
		case "decode":
			grid = grid.Decode()
		case "caption":
			if *captionText == "" {
				fmt.Println("caption requires -caption text")
				os.Exit(1)
			}
			c, err := parseHexColor(*captionColor)
			if err != nil {
				fmt.Printf("Error parsing caption color: %v\n", err)
				os.Exit(1)
			}
			grid.Caption(*captionText, 4, 16, c)
		default:
			fmt.Printf("Unknown filter %q\n", name)
			os.Exit(1)
		}
	}

	if err := imageio.Save(grid, *outputFile); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output written to %s (%dx%d)\n",
		*outputFile, grid.Width(), grid.Height())
}
