package services

import (
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
)

// ExportSvc serializes journal entries and statements to external text formats.
// Pure formatting: no I/O, no persistence.
type ExportSvc interface {
	// ExportEntryDelimited renders `account;description;debit;credit` lines
	// plus a TOTALES trailer. Amounts carry exactly two decimal places.
	ExportEntryDelimited(entry domain.JournalEntry) (string, error)

	// ExportEntryLegacy renders the pipe-separated fixed-width ledger format,
	// `date|account|description|debit|credit`. Oversized values fail with
	// apperrors.ErrFieldOverflow naming the offending account; nothing is
	// silently truncated.
	ExportEntryLegacy(entry domain.JournalEntry) (string, error)

	// ParseEntryDelimited recovers the account/debit/credit triples from a
	// delimited export, for verification round trips.
	ParseEntryDelimited(data string) ([]dto.ParsedPosting, error)

	// ExportStatementsDelimited renders one line per statement concept,
	// `legajo;code;description;quantity;amount`, for external payroll systems.
	ExportStatementsDelimited(statements []domain.PayStatement) (string, error)
}

// PayslipRendererSvc renders pay statements as printable documents.
type PayslipRendererSvc interface {
	// RenderPDF renders the statement as a PDF payslip document.
	RenderPDF(statement domain.PayStatement) ([]byte, error)
}
