// Package pdf renders payroll documents as PDF bytes.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PayslipLine is one labelled amount row on the payslip.
type PayslipLine struct {
	Label       string
	AmountPence int64
}

// PayslipData carries everything the payslip layout needs. Amounts are pence;
// formatting happens at render time.
type PayslipData struct {
	BusinessName  string
	PAYEReference string

	EmployeeName string
	NINumber     string
	TaxCode      string

	TaxYear      string
	PeriodNumber int64
	PayFrequency string
	PayDate      string

	Earnings   []PayslipLine
	Deductions []PayslipLine

	NetPayPence int64

	CumulativeTaxableIncomePence int64
	CumulativeTaxPaidPence       int64
}

// FormatPence renders integer pence as a pound amount, e.g. 123456 -> £1234.56.
func FormatPence(pence int64) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}
	return fmt.Sprintf("%s£%d.%02d", sign, pence/100, pence%100)
}

// RenderPayslip lays out a single-page A4 payslip and returns the PDF bytes.
func RenderPayslip(data PayslipData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(120, 10, tr(data.BusinessName))
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(60, 10, "PAYSLIP", "", 1, "R", false, 0, "")
	if data.PAYEReference != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.Cell(0, 5, tr(fmt.Sprintf("Employer PAYE reference: %s", data.PAYEReference)))
		pdf.Ln(5)
	}
	pdf.Ln(6)

	// Employee and period details
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(95, 7, tr(fmt.Sprintf("Employee: %s", data.EmployeeName)))
	pdf.CellFormat(85, 7, tr(fmt.Sprintf("Tax year: %s", data.TaxYear)), "", 1, "R", false, 0, "")
	pdf.Cell(95, 7, tr(fmt.Sprintf("NI number: %s", data.NINumber)))
	pdf.CellFormat(85, 7, tr(fmt.Sprintf("Period: %d (%s)", data.PeriodNumber, data.PayFrequency)), "", 1, "R", false, 0, "")
	pdf.Cell(95, 7, tr(fmt.Sprintf("Tax code: %s", data.TaxCode)))
	if data.PayDate != "" {
		pdf.CellFormat(85, 7, tr(fmt.Sprintf("Pay date: %s", data.PayDate)), "", 1, "R", false, 0, "")
	} else {
		pdf.Ln(7)
	}
	pdf.Ln(6)

	// Earnings
	renderSection(pdf, tr, "Earnings", data.Earnings)
	pdf.Ln(4)

	// Deductions
	renderSection(pdf, tr, "Deductions", data.Deductions)
	pdf.Ln(6)

	// Net pay
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(130, 9, "NET PAY", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 9, tr(FormatPence(data.NetPayPence)), "1", 1, "R", true, 0, "")
	pdf.Ln(8)

	// Year to date
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Year to date")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(130, 7, "Taxable income", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, tr(FormatPence(data.CumulativeTaxableIncomePence)), "1", 1, "R", false, 0, "")
	pdf.CellFormat(130, 7, "Income tax paid", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, tr(FormatPence(data.CumulativeTaxPaidPence)), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderSection(pdf *gofpdf.Fpdf, tr func(string) string, title string, lines []PayslipLine) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, title)
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		pdf.CellFormat(130, 7, tr(line.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, tr(FormatPence(line.AmountPence)), "1", 1, "R", false, 0, "")
	}
}
