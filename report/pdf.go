// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/akshayghatge/prabhag-pulse/models"
)

// Layout constants (mm, A4 portrait).
const (
	imageX     = 10.0
	imageY     = 35.0
	imageWidth = 190.0
	lineHeight = 8.0
)

// PDFSink assembles emitted report pages into a single PDF document. Every
// page gets a footer with its page number on the left and the watermark on
// the right; an empty watermark leaves the page number only.
type PDFSink struct {
	pdf       *fpdf.Fpdf
	watermark string
	images    int
}

func NewPDFSink(watermark string) *PDFSink {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)

	s := &PDFSink{pdf: doc, watermark: watermark}
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(150, 150, 150)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "L", false, 0, "")
		if s.watermark != "" {
			doc.SetY(-15)
			doc.CellFormat(0, 10, s.watermark, "", 0, "R", false, 0, "")
		}
	})

	return s
}

// AddPage appends one report page: centered title, the chart image when
// present, and the summary lines beneath. The chart bytes are consumed here
// and not retained, so per-page buffers are released with the page.
func (s *PDFSink) AddPage(page models.ReportPage) error {
	s.pdf.AddPage()

	s.pdf.SetFont("Helvetica", "B", 16)
	s.pdf.CellFormat(0, 10, page.Title, "", 1, "C", false, 0, "")

	textY := imageY
	if len(page.Chart) > 0 {
		cfg, err := png.DecodeConfig(bytes.NewReader(page.Chart))
		if err != nil {
			return fmt.Errorf("page %d: invalid chart image: %w", page.Index, err)
		}

		s.images++
		name := fmt.Sprintf("chart-%d", s.images)
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		s.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(page.Chart))
		s.pdf.ImageOptions(name, imageX, imageY, imageWidth, 0, false, opts, 0, "")

		textY += imageWidth*float64(cfg.Height)/float64(cfg.Width) + 8
	} else {
		s.pdf.SetY(textY)
		s.pdf.SetFont("Helvetica", "B", 12)
		s.pdf.CellFormat(0, 10, "Candidate Vote Summary (chart unavailable):", "", 1, "L", false, 0, "")
		textY = s.pdf.GetY() + 2
	}

	s.pdf.SetY(textY)
	s.pdf.SetFont("Helvetica", "", 10)
	for _, line := range page.Lines {
		s.pdf.CellFormat(0, lineHeight, line, "", 1, "L", false, 0, "")
	}

	return s.pdf.Error()
}

// PageCount returns the number of pages added so far.
func (s *PDFSink) PageCount() int {
	return s.pdf.PageCount()
}

// Output finalizes the document and writes it to w.
func (s *PDFSink) Output(w io.Writer) error {
	return s.pdf.Output(w)
}
