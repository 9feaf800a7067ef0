// Package report renders composed reservation reports as PDF documents.
package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/model"
)

// PDFRenderer writes a report as an A4 PDF, one reservation per line, to a
// fixed output path. It satisfies service.ReportRenderer.
type PDFRenderer struct {
	outputPath string
}

// NewPDFRenderer constructs a PDFRenderer writing to outputPath.
func NewPDFRenderer(outputPath string) *PDFRenderer {
	return &PDFRenderer{outputPath: outputPath}
}

// OutputPath returns the path the rendered document is written to.
func (r *PDFRenderer) OutputPath() string {
	return r.outputPath
}

// Render lays out the report title and one cell per entry, then writes the
// document. An empty report still produces a valid PDF with just the title.
func (r *PDFRenderer) Render(data model.ReportData) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(200, 10, data.Title, "", 1, "C", false, 0, "")

	for _, entry := range data.Entries {
		line := fmt.Sprintf("User: %s, Room: %s, Start: %s, End: %s",
			entry.Email, entry.RoomNumber, entry.StartDate, entry.EndDate)
		pdf.CellFormat(200, 10, line, "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(r.outputPath); err != nil {
		return fmt.Errorf("write report to %s: %w", r.outputPath, err)
	}
	return nil
}
