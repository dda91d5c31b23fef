package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/LBaravalle/payroll_engine_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry() domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     "je-1",
		Period:      testPeriod(),
		EntryDate:   time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
		Description: "Payroll accrual 2025-06",
		Postings: []domain.Posting{
			{AccountCode: "641000", Description: "Sueldos y jornales", Debit: decimal.RequireFromString("175000.00"), Credit: decimal.Zero},
			{AccountCode: "248000", Description: "Retenciones a depositar", Debit: decimal.Zero, Credit: decimal.RequireFromString("34125.00")},
			{AccountCode: "246000", Description: "Sueldos a pagar", Debit: decimal.Zero, Credit: decimal.RequireFromString("140875.00")},
		},
		TotalDebit:  decimal.RequireFromString("175000.00"),
		TotalCredit: decimal.RequireFromString("175000.00"),
	}
}

func TestExportEntryDelimited(t *testing.T) {
	svc := services.NewExportService(services.DefaultLegacyFieldWidths)

	out, err := svc.ExportEntryDelimited(testEntry())
	require.NoError(t, err)

	expected := "641000;Sueldos y jornales;175000.00;0.00\n" +
		"248000;Retenciones a depositar;0.00;34125.00\n" +
		"246000;Sueldos a pagar;0.00;140875.00\n" +
		"TOTALES;;175000.00;175000.00\n"
	assert.Equal(t, expected, out)
}

func TestExportEntryDelimited_SanitizesSeparators(t *testing.T) {
	svc := services.NewExportService(services.DefaultLegacyFieldWidths)

	entry := testEntry()
	entry.Postings[0].Description = "Sueldos; y\njornales"

	out, err := svc.ExportEntryDelimited(entry)
	require.NoError(t, err)
	assert.Contains(t, out, "641000;Sueldos  y jornales;175000.00;0.00")
}

func TestExportEntryDelimited_RefusesUnbalancedEntry(t *testing.T) {
	svc := services.NewExportService(services.DefaultLegacyFieldWidths)

	entry := testEntry()
	entry.Postings[2].Credit = decimal.RequireFromString("140874.99")

	_, err := svc.ExportEntryDelimited(entry)
	assert.ErrorIs(t, err, apperrors.ErrUnbalancedEntry)
}

func TestParseEntryDelimited_RoundTrip(t *testing.T) {
	svc := services.NewExportService(services.DefaultLegacyFieldWidths)

	out, err := svc.ExportEntryDelimited(testEntry())
	require.NoError(t, err)

	postings, err := svc.ParseEntryDelimited(out)
	require.NoError(t, err)

	require.Len(t, postings, 3)
	assert.Equal(t, "641000", postings[0].AccountCode)
	assert.Equal(t, "Sueldos y jornales", postings[0].Description)
	assert.True(t, postings[0].Debit.Equal(decimal.RequireFromString("175000.00")))
	assert.True(t, postings[2].Credit.Equal(decimal.RequireFromString("140875.00")))
}

func TestParseEntryDelimited_TamperedTrailer(t *testing.T) {
	svc := services.NewExportService(services.DefaultLegacyFieldWidths)

	out, err := svc.ExportEntryDelimited(testEntry())
	require.NoError(t, err)

	tampered := strings.Replace(out, "TOTALES;;175000.00;175000.00", "TOTALES;;175000.00;175001.00", 1)
	_, err = svc.ParseEntryDelimited(tampered)
	assert.ErrorIs(t, err, apperrors.ErrUnbalancedEntry)
}

func TestParseEntryDelimited_MissingTrailer(t *testing.T) {
	svc := services.NewExportService(services.DefaultLegacyFieldWidths)

	data := "641000;Sueldos;100.00;0.00\n641001;Otros;0.00;100.00\n"
	_, err := svc.ParseEntryDelimited(data)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestExportEntryLegacy(t *testing.T) {
	svc := services.NewExportService(domain.ExportFieldWidths{Account: 10, Description: 30, Amount: 15})

	out, err := svc.ExportEntryLegacy(testEntry())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	// date|account(10)|description(30)|debit(15)|credit(15)
	assert.Equal(t, "30/06/2025|641000    |Sueldos y jornales            |      175000.00|           0.00", lines[0])

	for _, line := range lines {
		fields := strings.Split(line, "|")
		require.Len(t, fields, 5)
		assert.Len(t, fields[1], 10)
		assert.Len(t, fields[2], 30)
		assert.Len(t, fields[3], 15)
		assert.Len(t, fields[4], 15)
	}
}

func TestExportEntryLegacy_FieldOverflow(t *testing.T) {
	svc := services.NewExportService(domain.ExportFieldWidths{Account: 4, Description: 30, Amount: 15})

	_, err := svc.ExportEntryLegacy(testEntry())
	require.ErrorIs(t, err, apperrors.ErrFieldOverflow)
	assert.Contains(t, err.Error(), "641000") // the offending account is named, never truncated
}

func TestExportStatementsDelimited(t *testing.T) {
	svc := services.NewExportService(services.DefaultLegacyFieldWidths)

	statement := domain.PayStatement{
		LegajoNumber: 42,
		Remunerative: []domain.PayConcept{
			{Code: "100", Description: "Base salary", Quantity: decimal.NewFromInt(160), Amount: decimal.RequireFromString("160000.00")},
		},
		NonRemunerative: []domain.PayConcept{
			{Code: "400", Description: "Meal vouchers", Quantity: decimal.NewFromInt(1), Amount: decimal.RequireFromString("12000.00")},
		},
		Deductions: []domain.PayConcept{
			{Code: "200", Description: "Retirement contribution", Quantity: decimal.RequireFromString("11"), Amount: decimal.RequireFromString("17600.00")},
		},
	}

	out, err := svc.ExportStatementsDelimited([]domain.PayStatement{statement})
	require.NoError(t, err)

	expected := "42;100;Base salary;160.00;160000.00\n" +
		"42;400;Meal vouchers;1.00;12000.00\n" +
		"42;200;Retirement contribution;11.00;17600.00\n"
	assert.Equal(t, expected, out)
}
