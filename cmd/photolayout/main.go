// Command photolayout packs a directory of photos onto pages and emits
// PNG previews, a PDF, and/or a live terminal preview.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"photolayout/internal/config"
	"photolayout/internal/expand"
	"photolayout/internal/pdfexport"
	"photolayout/internal/photosource"
	"photolayout/internal/preview"
	"photolayout/internal/raster"
	"photolayout/pack"
)

// Options collects every CLI flag into one value before the pipeline
// runs.
type Options struct {
	InputDir      string
	OutputDir     string
	PresetPath    string
	PresetName    string
	Algorithm     string
	NaturalSort   bool
	Quantity      int
	Rotation      int
	Priority      int
	PageWidth     float64
	PageHeight    float64
	MarginTop     float64
	MarginRight   float64
	MarginBottom  float64
	MarginLeft    float64
	Spacing       float64
	MultiPage     bool
	WritePNG      bool
	WritePDF      bool
	TerminalShow  bool
	StampQR       bool
	QRTemplate    string
}

func flagArgs() Options {
	inputDir := flag.String("input", "photos", "input photo directory")
	outputDir := flag.String("output", "output", "output directory for rendered pages and the PDF")
	presetPath := flag.String("preset-file", "", "TOML preset file (optional)")
	presetName := flag.String("preset", "", "preset name to use from -preset-file")
	algorithmName := flag.String("algorithm", "MaxRects", "packing algorithm (Guillotine, Shelf, MaxRects)")
	naturalSort := flag.Bool("natural-sort", true, "order photo files in natural (human) order")
	quantity := flag.Int("quantity", 1, "default copy count per photo")
	rotation := flag.Int("rotation", 0, "default rotation in degrees (0, 90, 180, 270)")
	priority := flag.Int("priority", 0, "default placement priority")
	pageWidth := flag.Float64("page-width", 4, "page width (ignored if -preset supplies one)")
	pageHeight := flag.Float64("page-height", 6, "page height (ignored if -preset supplies one)")
	marginTop := flag.Float64("margin-top", 0.125, "top margin")
	marginRight := flag.Float64("margin-right", 0.125, "right margin")
	marginBottom := flag.Float64("margin-bottom", 0.125, "bottom margin")
	marginLeft := flag.Float64("margin-left", 0.125, "left margin")
	spacing := flag.Float64("spacing", 0.05, "one-sided spacing pad")
	multiPage := flag.Bool("multi-page", true, "open additional pages instead of dropping overflow")
	writePNG := flag.Bool("png", true, "write a PNG preview per page")
	writePDF := flag.Bool("pdf", true, "write a PDF document")
	terminalShow := flag.Bool("terminal", false, "show a live terminal preview")
	stampQR := flag.Bool("qr", false, "stamp a QR code per placement in the PDF")
	qrTemplate := flag.String("qr-template", "%v", "QR payload template, %v substituted with the placement ID")
	flag.Parse()

	return Options{
		InputDir:     *inputDir,
		OutputDir:    *outputDir,
		PresetPath:   *presetPath,
		PresetName:   *presetName,
		Algorithm:    *algorithmName,
		NaturalSort:  *naturalSort,
		Quantity:     *quantity,
		Rotation:     *rotation,
		Priority:     *priority,
		PageWidth:    *pageWidth,
		PageHeight:   *pageHeight,
		MarginTop:    *marginTop,
		MarginRight:  *marginRight,
		MarginBottom: *marginBottom,
		MarginLeft:   *marginLeft,
		Spacing:      *spacing,
		MultiPage:    *multiPage,
		WritePNG:     *writePNG,
		WritePDF:     *writePDF,
		TerminalShow: *terminalShow,
		StampQR:      *stampQR,
		QRTemplate:   *qrTemplate,
	}
}

func algorithmFromName(name string) (pack.Algorithm, error) {
	switch name {
	case "Guillotine":
		return pack.Guillotine, nil
	case "Shelf":
		return pack.Shelf, nil
	case "MaxRects":
		return pack.MaxRects, nil
	default:
		return 0, fmt.Errorf("%w: %q", pack.ErrUnknownAlgorithm, name)
	}
}

func resolveConfig(opts Options) (pack.PageConfig, pack.Algorithm, error) {
	if opts.PresetPath == "" {
		algo, err := algorithmFromName(opts.Algorithm)
		if err != nil {
			return pack.PageConfig{}, 0, err
		}
		return pack.PageConfig{
			PageWidth:    opts.PageWidth,
			PageHeight:   opts.PageHeight,
			MarginTop:    opts.MarginTop,
			MarginRight:  opts.MarginRight,
			MarginBottom: opts.MarginBottom,
			MarginLeft:   opts.MarginLeft,
			Spacing:      opts.Spacing,
			MultiPage:    opts.MultiPage,
		}, algo, nil
	}

	presets, err := config.LoadPresets(opts.PresetPath)
	if err != nil {
		return pack.PageConfig{}, 0, err
	}
	preset, ok := presets[opts.PresetName]
	if !ok {
		return pack.PageConfig{}, 0, fmt.Errorf("preset %q not found in %s", opts.PresetName, opts.PresetPath)
	}
	algo, err := preset.Algorithm()
	if err != nil {
		return pack.PageConfig{}, 0, err
	}
	return preset.PageConfig(), algo, nil
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	opts := flagArgs()

	cfg, algorithm, err := resolveConfig(opts)
	if err != nil {
		logger.Fatal().Err(err).Msg("resolve page configuration")
	}

	photos, err := photosource.Load(opts.InputDir, photosource.Options{
		NaturalSort: opts.NaturalSort,
		Rotation:    opts.Rotation,
		Priority:    opts.Priority,
		Quantity:    opts.Quantity,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("load photos")
	}
	logger.Info().Int("count", len(photos)).Str("dir", opts.InputDir).Msg("loaded photos")

	inputs := expand.Expand(photos)
	logger.Info().Int("copies", len(inputs)).Msg("expanded by quantity")

	placements, err := pack.Pack(inputs, cfg, algorithm)
	if err != nil {
		logger.Fatal().Err(err).Msg("pack photos")
	}
	if dropped := len(inputs) - len(placements); dropped > 0 {
		logger.Warn().Int("dropped", dropped).Msg("some photos did not fit and were omitted")
	}
	logger.Info().Int("placements", len(placements)).Str("algorithm", algorithm.String()).Msg("packed layout")

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		logger.Fatal().Err(err).Msg("create output directory")
	}

	if opts.WritePNG {
		if err := writePNGs(placements, cfg, opts.OutputDir); err != nil {
			logger.Fatal().Err(err).Msg("render PNG previews")
		}
	}

	if opts.WritePDF {
		if err := writePDF(placements, cfg, opts); err != nil {
			logger.Fatal().Err(err).Msg("emit PDF")
		}
	}

	if opts.TerminalShow {
		if err := preview.Run(placements, cfg); err != nil {
			logger.Fatal().Err(err).Msg("run terminal preview")
		}
	}
}

func writePNGs(placements []pack.Placement, cfg pack.PageConfig, outputDir string) error {
	pages, err := raster.RenderPages(placements, cfg)
	if err != nil {
		return fmt.Errorf("render pages: %w", err)
	}
	for idx, img := range pages {
		path := filepath.Join(outputDir, fmt.Sprintf("page_%d.png", idx))
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		err = encodePNG(file, img)
		file.Close()
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
	}
	return nil
}

func writePDF(placements []pack.Placement, cfg pack.PageConfig, opts Options) error {
	path := filepath.Join(opts.OutputDir, "layout.pdf")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	return pdfexport.Emit(file, placements, cfg, pdfexport.Options{
		StampQR:    opts.StampQR,
		QRTemplate: opts.QRTemplate,
	})
}

func encodePNG(w *os.File, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}
