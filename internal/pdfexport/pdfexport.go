// Package pdfexport emits a packed layout as a PDF document, one page
// per PageIndex group, with an optional per-placement QR stamp.
package pdfexport

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"photolayout/pack"
)

// Options controls page unit and optional QR stamping.
type Options struct {
	// Unit is an fpdf unit string: "pt", "mm", "cm", "in". Defaults to
	// "in" when empty, matching the CLI's default preset unit.
	Unit string
	// StampQR, when set, draws a small QR code in the top-left corner
	// of every placement.
	StampQR bool
	// QRTemplate is a fmt.Sprintf template with one %v verb for the
	// placement ID. Ignored unless StampQR is set.
	QRTemplate string
}

const qrStampSizeIn = 0.4 // inches, fits inside small placements

// unitsPerInch gives the conversion factor from inches to an fpdf unit
// string, so QR stamp geometry stays a constant physical size regardless
// of the document's chosen unit.
func unitsPerInch(unit string) float64 {
	switch unit {
	case "pt":
		return 72
	case "mm":
		return 25.4
	case "cm":
		return 2.54
	default: // "in"
		return 1
	}
}

// Emit groups placements by PageIndex (ascending) and writes one fpdf
// page per group to w, drawing each placement's rectangle at its
// reported coordinates.
func Emit(w io.Writer, placements []pack.Placement, cfg pack.PageConfig, opts Options) error {
	unit := opts.Unit
	if unit == "" {
		unit = "in"
	}
	opts.Unit = unit

	byPage := make(map[int][]pack.Placement)
	var pageIndices []int
	for _, p := range placements {
		if _, ok := byPage[p.PageIndex]; !ok {
			pageIndices = append(pageIndices, p.PageIndex)
		}
		byPage[p.PageIndex] = append(byPage[p.PageIndex], p)
	}
	sort.Ints(pageIndices)
	if len(pageIndices) == 0 {
		pageIndices = []int{0}
		byPage[0] = nil
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        unit,
		SizeStr:        "",
		Size:           fpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)

	for _, idx := range pageIndices {
		pdf.AddPage()
		for _, p := range byPage[idx] {
			if err := drawPlacement(pdf, p, opts); err != nil {
				return fmt.Errorf("draw placement %v on page %d: %w", p.ID, idx, err)
			}
		}
	}

	return pdf.Output(w)
}

func drawPlacement(pdf *fpdf.Fpdf, p pack.Placement, opts Options) error {
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.01)
	pdf.Rect(p.X, p.Y, p.EffectiveWidth, p.EffectiveHeight, "D")

	if !opts.StampQR {
		return nil
	}

	template := opts.QRTemplate
	if template == "" {
		template = "%v"
	}
	payload := fmt.Sprintf(template, p.ID)

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	scale := unitsPerInch(opts.Unit)
	qrStampSize := qrStampSizeIn * scale
	offset := 0.05 * scale

	imgName := fmt.Sprintf("qr-%v", p.ID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions(imgName, p.X+offset, p.Y+offset, qrStampSize, qrStampSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	return nil
}
