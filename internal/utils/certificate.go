package utils

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// NoDuesData is everything the certificate renderers need.
type NoDuesData struct {
	StudentID string
	Name      string
	Class     string
	Date      string // YYYY-MM-DD
	TotalPaid float64
	QRToken   string
}

const noDuesSentence = "This certifies that the student has no pending dues."

// RenderNoDuesText produces the plain-text certificate. The layout is
// fixed and consumed verbatim by downstream tooling; do not reflow.
func RenderNoDuesText(data NoDuesData) string {
	return fmt.Sprintf(
		"No Dues Certificate\nStudent ID: %s\nName: %s\nDate: %s\n%s",
		data.StudentID, data.Name, data.Date, noDuesSentence,
	)
}

// RenderNoDuesPDF produces the printable rendition of the same
// certificate, with an embedded QR code carrying the verification
// token when one is set.
func RenderNoDuesPDF(data NoDuesData, qrPNG []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 10, "No Dues Certificate", "", 1, "C", false, 0, "")

	pdf.SetDrawColor(0, 51, 102)
	pdf.SetLineWidth(0.8)
	pdf.Line(20, pdf.GetY()+3, 190, pdf.GetY()+3)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(0, 0, 0)

	colLabel := 45.0
	rows := [][]string{
		{"Student ID", data.StudentID},
		{"Name", data.Name},
		{"Class", data.Class},
		{"Date", data.Date},
		{"Total Paid", fmt.Sprintf("%.2f", data.TotalPaid)},
	}
	for _, row := range rows {
		pdf.CellFormat(colLabel, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(5, 7, ":", "", 0, "C", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.MultiCell(0, 7, noDuesSentence, "", "L", false)
	pdf.Ln(8)

	if len(qrPNG) > 0 {
		currentY := pdf.GetY()
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(40, 5, "Scan to verify:", "", 1, "L", false, 0, "")

		qrReader := bytes.NewReader(qrPNG)
		pdf.RegisterImageOptionsReader("qrcode", gofpdf.ImageOptions{ImageType: "PNG"}, qrReader)
		pdf.ImageOptions("qrcode", 20, currentY+6, 30, 30, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 7)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 5,
		fmt.Sprintf("Issued digitally on %s | Reference: %s", data.Date, data.QRToken),
		"", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}
