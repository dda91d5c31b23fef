package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/LBaravalle/payroll_engine_app/internal/utils/accounting"
)

// Trailer line label of the delimited journal export.
const delimitedTotalsLabel = "TOTALES"

// DefaultLegacyFieldWidths matches the downstream accounting system intake.
var DefaultLegacyFieldWidths = domain.ExportFieldWidths{
	Account:     10,
	Description: 30,
	Amount:      15,
}

// exportService serializes journal entries and statements to the text formats
// the external accounting and payroll systems ingest. Pure formatting.
type exportService struct {
	widths domain.ExportFieldWidths
}

// NewExportService creates a new ExportService.
func NewExportService(widths domain.ExportFieldWidths) portssvc.ExportSvc {
	if widths.Account <= 0 || widths.Description <= 0 || widths.Amount <= 0 {
		widths = DefaultLegacyFieldWidths
	}
	return &exportService{widths: widths}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

// ExportEntryDelimited implements portssvc.ExportSvc.
func (s *exportService) ExportEntryDelimited(entry domain.JournalEntry) (string, error) {
	totalDebit, totalCredit, err := accounting.ValidatePostings(entry.Postings)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, p := range entry.Postings {
		b.WriteString(fmt.Sprintf("%s;%s;%s;%s\n",
			sanitizeDelimited(p.AccountCode),
			sanitizeDelimited(p.Description),
			p.Debit.StringFixed(2),
			p.Credit.StringFixed(2)))
	}
	b.WriteString(fmt.Sprintf("%s;;%s;%s\n", delimitedTotalsLabel, totalDebit.StringFixed(2), totalCredit.StringFixed(2)))
	return b.String(), nil
}

// ExportEntryLegacy implements portssvc.ExportSvc.
func (s *exportService) ExportEntryLegacy(entry domain.JournalEntry) (string, error) {
	if _, _, err := accounting.ValidatePostings(entry.Postings); err != nil {
		return "", err
	}

	var b strings.Builder
	date := entry.EntryDate.Format("02/01/2006")
	for _, p := range entry.Postings {
		account, err := padField(p.AccountCode, s.widths.Account, p.AccountCode)
		if err != nil {
			return "", err
		}
		description, err := padField(p.Description, s.widths.Description, p.AccountCode)
		if err != nil {
			return "", err
		}
		debit, err := padAmount(p.Debit, s.widths.Amount, p.AccountCode)
		if err != nil {
			return "", err
		}
		credit, err := padAmount(p.Credit, s.widths.Amount, p.AccountCode)
		if err != nil {
			return "", err
		}
		b.WriteString(fmt.Sprintf("%s|%s|%s|%s|%s\n", date, account, description, debit, credit))
	}
	return b.String(), nil
}

// ParseEntryDelimited implements portssvc.ExportSvc.
//
// It accepts only output of ExportEntryDelimited: posting lines followed by a
// TOTALES trailer whose totals must match the recomputed sums.
func (s *exportService) ParseEntryDelimited(data string) ([]dto.ParsedPosting, error) {
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: export must contain postings and a %s trailer", apperrors.ErrValidation, delimitedTotalsLabel)
	}

	var postings []dto.ParsedPosting
	sumDebit := decimal.Zero
	sumCredit := decimal.Zero
	for i, line := range lines {
		fields := strings.Split(line, ";")
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d has %d fields, expected 4", apperrors.ErrValidation, i+1, len(fields))
		}
		debit, err := decimal.NewFromString(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d debit %q: %v", apperrors.ErrValidation, i+1, fields[2], err)
		}
		credit, err := decimal.NewFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d credit %q: %v", apperrors.ErrValidation, i+1, fields[3], err)
		}

		if fields[0] == delimitedTotalsLabel {
			if i != len(lines)-1 {
				return nil, fmt.Errorf("%w: %s trailer must be the last line", apperrors.ErrValidation, delimitedTotalsLabel)
			}
			if !debit.Equal(sumDebit) || !credit.Equal(sumCredit) {
				return nil, fmt.Errorf("%w: trailer totals %s/%s do not match posting sums %s/%s",
					apperrors.ErrUnbalancedEntry, debit.StringFixed(2), credit.StringFixed(2), sumDebit.StringFixed(2), sumCredit.StringFixed(2))
			}
			return postings, nil
		}

		postings = append(postings, dto.ParsedPosting{
			AccountCode: fields[0],
			Description: fields[1],
			Debit:       debit,
			Credit:      credit,
		})
		sumDebit = sumDebit.Add(debit)
		sumCredit = sumCredit.Add(credit)
	}
	return nil, fmt.Errorf("%w: missing %s trailer", apperrors.ErrValidation, delimitedTotalsLabel)
}

// ExportStatementsDelimited implements portssvc.ExportSvc.
func (s *exportService) ExportStatementsDelimited(statements []domain.PayStatement) (string, error) {
	var b strings.Builder
	for _, st := range statements {
		concepts := make([]domain.PayConcept, 0, len(st.Remunerative)+len(st.NonRemunerative)+len(st.Deductions))
		concepts = append(concepts, st.Remunerative...)
		concepts = append(concepts, st.NonRemunerative...)
		concepts = append(concepts, st.Deductions...)
		for _, c := range concepts {
			b.WriteString(fmt.Sprintf("%d;%s;%s;%s;%s\n",
				st.LegajoNumber,
				sanitizeDelimited(c.Code),
				sanitizeDelimited(c.Description),
				c.Quantity.StringFixed(2),
				c.Amount.StringFixed(2)))
		}
	}
	return b.String(), nil
}

// sanitizeDelimited keeps field values from breaking the line format.
func sanitizeDelimited(value string) string {
	value = strings.ReplaceAll(value, ";", " ")
	return strings.ReplaceAll(value, "\n", " ")
}

// padField right-pads value to width, failing with ErrFieldOverflow naming
// the offending account when it does not fit.
func padField(value string, width int, accountCode string) (string, error) {
	if len(value) > width {
		return "", fmt.Errorf("%w: account %s: value %q exceeds %d characters", apperrors.ErrFieldOverflow, accountCode, value, width)
	}
	return value + strings.Repeat(" ", width-len(value)), nil
}

// padAmount left-pads a two-decimal amount to width.
func padAmount(amount decimal.Decimal, width int, accountCode string) (string, error) {
	rendered := amount.StringFixed(2)
	if len(rendered) > width {
		return "", fmt.Errorf("%w: account %s: amount %s exceeds %d characters", apperrors.ErrFieldOverflow, accountCode, rendered, width)
	}
	return strings.Repeat(" ", width-len(rendered)) + rendered, nil
}
