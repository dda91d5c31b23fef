package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/utils"
)

// payslipService renders a statement as a printable A4 payslip.
type payslipService struct{}

// NewPayslipService creates a new PayslipService.
func NewPayslipService() portssvc.PayslipRendererSvc {
	return &payslipService{}
}

var _ portssvc.PayslipRendererSvc = (*payslipService)(nil)

// RenderPDF implements portssvc.PayslipRendererSvc.
func (s *payslipService) RenderPDF(statement domain.PayStatement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (file #%d)", statement.EmployeeName, statement.LegajoNumber))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s", statement.Period.String()))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Agreement: %s", statement.RateCardName))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Status: %s", statement.Status))
	pdf.Ln(10)

	s.conceptTable(pdf, "Remunerative earnings", statement.Remunerative)
	if len(statement.NonRemunerative) > 0 {
		s.conceptTable(pdf, "Non-remunerative earnings", statement.NonRemunerative)
	}
	s.conceptTable(pdf, "Deductions", statement.Deductions)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(120, 7, "Total remunerative")
	pdf.CellFormat(50, 7, utils.FormatMoney(statement.TotalRemunerative), "", 0, "R", false, 0, "")
	pdf.Ln(6)
	pdf.Cell(120, 7, "Total non-remunerative")
	pdf.CellFormat(50, 7, utils.FormatMoney(statement.TotalNonRemunerative), "", 0, "R", false, 0, "")
	pdf.Ln(6)
	pdf.Cell(120, 7, "Total deductions")
	pdf.CellFormat(50, 7, utils.FormatMoney(statement.TotalDeductions), "", 0, "R", false, 0, "")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(120, 8, "Net payable")
	pdf.CellFormat(50, 8, utils.FormatMoney(statement.Net), "", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip for statement %s: %w", statement.StatementID, err)
	}
	return buf.Bytes(), nil
}

func (s *payslipService) conceptTable(pdf *gofpdf.Fpdf, title string, concepts []domain.PayConcept) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, title)
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(18, 6, "Code", "B", 0, "L", false, 0, "")
	pdf.CellFormat(82, 6, "Concept", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Unit", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Amount", "B", 0, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	for _, c := range concepts {
		pdf.CellFormat(18, 6, c.Code, "", 0, "L", false, 0, "")
		pdf.CellFormat(82, 6, c.Description, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, c.Quantity.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, utils.FormatMoney(c.UnitValue), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, utils.FormatMoney(c.Amount), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	pdf.Ln(2)
}
