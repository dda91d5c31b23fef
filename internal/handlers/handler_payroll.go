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

// payrollHandler handles HTTP requests for payroll runs and statements.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
	exportService  portssvc.ExportSvc
	payslipService portssvc.PayslipRendererSvc
}

func newPayrollHandler(payrollService portssvc.PayrollSvcFacade, exportService portssvc.ExportSvc, payslipService portssvc.PayslipRendererSvc) *payrollHandler {
	return &payrollHandler{
		payrollService: payrollService,
		exportService:  exportService,
		payslipService: payslipService,
	}
}

func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade, exportService portssvc.ExportSvc, payslipService portssvc.PayslipRendererSvc) {
	h := newPayrollHandler(payrollService, exportService, payslipService)
	payroll := rg.Group("/payroll")
	{
		payroll.POST("/runs", h.runPayroll)
		payroll.GET("/statements/:statementID", h.getStatement)
		payroll.GET("/statements/:statementID/payslip", h.downloadPayslip)
		payroll.GET("/periods/:period/statements", h.listStatements)
		payroll.GET("/periods/:period/statements/export", h.exportStatements)
	}
}

// runPayroll godoc
// @Summary Run payroll for a period
// @Description Computes a statement for every active employee. Final runs refuse anomalous attendance; draft runs flag it.
// @Tags payroll
// @Accept json
// @Produce json
// @Param run body dto.RunPayrollRequest true "Run parameters"
// @Success 200 {object} dto.RunPayrollResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payroll/runs [post]
func (h *payrollHandler) runPayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RunPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format, period must be YYYY-MM"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	response, err := h.payrollService.RunPayroll(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Payroll run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Payroll run failed"})
		return
	}
	c.JSON(http.StatusOK, response)
}

// getStatement godoc
// @Summary Get a pay statement
// @Tags payroll
// @Produce json
// @Param statementID path string true "Statement ID"
// @Success 200 {object} domain.PayStatement
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payroll/statements/{statementID} [get]
func (h *payrollHandler) getStatement(c *gin.Context) {
	statementID := c.Param("statementID")
	statement, err := h.payrollService.GetStatementByID(c.Request.Context(), statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Statement not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get statement", slog.String("error", err.Error()), slog.String("statement_id", statementID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve statement"})
		return
	}
	c.JSON(http.StatusOK, statement)
}

// downloadPayslip godoc
// @Summary Download a payslip PDF
// @Tags payroll
// @Produce application/pdf
// @Param statementID path string true "Statement ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payroll/statements/{statementID}/payslip [get]
func (h *payrollHandler) downloadPayslip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	statementID := c.Param("statementID")

	statement, err := h.payrollService.GetStatementByID(c.Request.Context(), statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Statement not found"})
			return
		}
		logger.Error("Failed to get statement for payslip", slog.String("error", err.Error()), slog.String("statement_id", statementID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve statement"})
		return
	}

	pdfBytes, err := h.payslipService.RenderPDF(*statement)
	if err != nil {
		logger.Error("Failed to render payslip", slog.String("error", err.Error()), slog.String("statement_id", statementID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render payslip"})
		return
	}

	filename := fmt.Sprintf("payslip_%d_%s.pdf", statement.LegajoNumber, statement.Period.String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// listStatements godoc
// @Summary List statements for a period
// @Description Returns the latest statement of every employee for the period
// @Tags payroll
// @Produce json
// @Param period path string true "Period (YYYY-MM)"
// @Success 200 {array} domain.PayStatement
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payroll/periods/{period}/statements [get]
func (h *payrollHandler) listStatements(c *gin.Context) {
	period, err := domain.ParsePeriod(c.Param("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	statements, err := h.payrollService.ListStatementsByPeriod(c.Request.Context(), period)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list statements", slog.String("error", err.Error()), slog.String("period", period.String()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list statements"})
		return
	}
	c.JSON(http.StatusOK, statements)
}

// exportStatements godoc
// @Summary Export statements for a period
// @Description Renders one delimited line per statement concept for external payroll systems
// @Tags payroll
// @Produce plain
// @Param period path string true "Period (YYYY-MM)"
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payroll/periods/{period}/statements/export [get]
func (h *payrollHandler) exportStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := domain.ParsePeriod(c.Param("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	statements, err := h.payrollService.ListStatementsByPeriod(c.Request.Context(), period)
	if err != nil {
		logger.Error("Failed to list statements for export", slog.String("error", err.Error()), slog.String("period", period.String()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list statements"})
		return
	}

	export, err := h.exportService.ExportStatementsDelimited(statements)
	if err != nil {
		logger.Error("Failed to export statements", slog.String("error", err.Error()), slog.String("period", period.String()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export statements"})
		return
	}

	filename := fmt.Sprintf("statements_%s.txt", period.String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export))
}
