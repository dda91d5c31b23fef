package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/LBaravalle/payroll_engine_app/internal/middleware"
)

// ledgerHandler handles HTTP requests for journal entries and their exports.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	exportService portssvc.ExportSvc
}

func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade, exportService portssvc.ExportSvc) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ledgerService,
		exportService: exportService,
	}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, exportService portssvc.ExportSvc) {
	h := newLedgerHandler(ledgerService, exportService)
	ledger := rg.Group("/ledger")
	{
		ledger.POST("/entries", h.buildEntry)
		ledger.GET("/entries/:entryID", h.getEntry)
		ledger.GET("/periods/:period/entry", h.getLatestEntry)
		ledger.GET("/entries/:entryID/export", h.exportEntry)
		ledger.GET("/entries/:entryID/export/legacy", h.exportEntryLegacy)
	}
}

// buildEntry godoc
// @Summary Generate the journal entry for a period
// @Description Aggregates the period's final statements into one balanced double-entry accrual
// @Tags ledger
// @Accept json
// @Produce json
// @Param entry body dto.BuildJournalEntryRequest true "Period"
// @Success 201 {object} domain.JournalEntry
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No final statements for the period"
// @Failure 500 {object} ErrorResponse
// @Router /ledger/entries [post]
func (h *ledgerHandler) buildEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BuildJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format, period must be YYYY-MM"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entry, err := h.ledgerService.BuildEntryForPeriod(c.Request.Context(), period, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMissingInputData):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrUnbalancedEntry):
			logger.Error("Unbalanced journal entry", slog.String("error", err.Error()), slog.String("period", period.String()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Journal entry failed balance validation"})
		default:
			logger.Error("Failed to build journal entry", slog.String("error", err.Error()), slog.String("period", period.String()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build journal entry"})
		}
		return
	}

	logger.Info("Journal entry built", slog.String("entry_id", entry.EntryID), slog.String("period", period.String()))
	c.JSON(http.StatusCreated, entry)
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags ledger
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} domain.JournalEntry
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ledger/entries/{entryID} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	entryID := c.Param("entryID")
	entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Journal entry not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve journal entry"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// getLatestEntry godoc
// @Summary Get the latest journal entry of a period
// @Tags ledger
// @Produce json
// @Param period path string true "Period (YYYY-MM)"
// @Success 200 {object} domain.JournalEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ledger/periods/{period}/entry [get]
func (h *ledgerHandler) getLatestEntry(c *gin.Context) {
	period, err := domain.ParsePeriod(c.Param("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entry, err := h.ledgerService.GetLatestEntryForPeriod(c.Request.Context(), period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No journal entry for period"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get latest journal entry", slog.String("error", err.Error()), slog.String("period", period.String()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve journal entry"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// exportEntry godoc
// @Summary Export a journal entry (delimited)
// @Description Renders account;description;debit;credit lines with a TOTALES trailer
// @Tags ledger
// @Produce plain
// @Param entryID path string true "Entry ID"
// @Success 200 {string} string
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ledger/entries/{entryID}/export [get]
func (h *ledgerHandler) exportEntry(c *gin.Context) {
	h.exportWith(c, "asiento_%s.csv", h.exportService.ExportEntryDelimited)
}

// exportEntryLegacy godoc
// @Summary Export a journal entry (legacy fixed-width)
// @Description Renders the pipe-separated fixed-width format of the legacy accounting intake
// @Tags ledger
// @Produce plain
// @Param entryID path string true "Entry ID"
// @Success 200 {string} string
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "A field exceeds its fixed width"
// @Failure 500 {object} ErrorResponse
// @Router /ledger/entries/{entryID}/export/legacy [get]
func (h *ledgerHandler) exportEntryLegacy(c *gin.Context) {
	h.exportWith(c, "asiento_%s_legacy.txt", h.exportService.ExportEntryLegacy)
}

func (h *ledgerHandler) exportWith(c *gin.Context, filenameFormat string, render func(domain.JournalEntry) (string, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Journal entry not found"})
			return
		}
		logger.Error("Failed to get journal entry for export", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve journal entry"})
		return
	}

	export, err := render(*entry)
	if err != nil {
		if errors.Is(err, apperrors.ErrFieldOverflow) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to export journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export journal entry"})
		return
	}

	filename := fmt.Sprintf(filenameFormat, entry.Period.String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export))
}
