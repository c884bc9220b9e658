package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/mercuryins/pas-service/internal/model"
)

const fontName = "Helvetica"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the policy schedule: parties, vehicle, coverage
// period and premium.
func (g *Generator) Generate(doc model.PolicyDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(fontName, "B", 16)
	pdf.CellFormat(0, 10, "Mercury Auto Insurance - Policy Schedule", "", 1, "C", false, 0, "")

	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Policy No. %s", doc.Policy.PolicyNumber), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Derived from quote %s", doc.Quote.QuoteNumber), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addPartyBlock(pdf, "Policyholder", doc.Customer)
	pdf.Ln(2)
	addPartyBlock(pdf, "Issuing agent", doc.Agent)
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Insured vehicle", "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)

	headers := []string{"Make", "Model", "Year", "VIN"}
	colWidths := []float64{45, 45, 25, 65}
	drawTableRow(pdf, headers, colWidths, true)
	drawTableRow(pdf, []string{
		doc.Vehicle.Make,
		doc.Vehicle.Model,
		fmt.Sprintf("%d", doc.Vehicle.Year),
		doc.Vehicle.VIN,
	}, colWidths, false)

	pdf.Ln(4)
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Coverage", "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s to %s", formatDate(doc.Policy.StartDate), formatDate(doc.Policy.EndDate)), "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 6, fmt.Sprintf("Details: %s", safeValue(doc.Quote.CoverageDetails)), "", "L", false)
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", doc.Policy.Status), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Annual premium: %s", doc.Policy.PremiumAmount.StringFixed(2)), "", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont(fontName, "", 11)
	signatureBlock(pdf, "Policyholder", doc.Customer.FullName())
	signatureBlock(pdf, "Agent", doc.Agent.FullName())

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addPartyBlock(pdf *gofpdf.Fpdf, title string, user model.User) {
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	lines := []string{
		user.FullName(),
		fmt.Sprintf("Email: %s", safeValue(user.Email)),
	}
	if user.LicenseNumber != nil {
		lines = append(lines, fmt.Sprintf("License: %s", safeValue(*user.LicenseNumber)))
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 8, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func signatureBlock(pdf *gofpdf.Fpdf, label, name string) {
	pdf.CellFormat(0, 6, fmt.Sprintf("%s: ______________________ /%s/", label, safeValue(name)), "", 1, "L", false, 0, "")
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
