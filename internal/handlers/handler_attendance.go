package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/LBaravalle/payroll_engine_app/internal/middleware"
)

// attendanceHandler handles HTTP requests for punches and pay adjustments.
type attendanceHandler struct {
	timesheetService portssvc.TimesheetSvcFacade
	payrollService   portssvc.PayrollSvcFacade
}

func newAttendanceHandler(timesheetService portssvc.TimesheetSvcFacade, payrollService portssvc.PayrollSvcFacade) *attendanceHandler {
	return &attendanceHandler{timesheetService: timesheetService, payrollService: payrollService}
}

func registerAttendanceRoutes(rg *gin.RouterGroup, timesheetService portssvc.TimesheetSvcFacade, payrollService portssvc.PayrollSvcFacade) {
	h := newAttendanceHandler(timesheetService, payrollService)
	attendance := rg.Group("/attendance")
	{
		attendance.POST("/punches", h.recordPunches)
		attendance.POST("/adjustments", h.createAdjustment)
		attendance.GET("/employees/:employeeID/periods/:period/summary", h.getSummary)
	}
}

// recordPunches godoc
// @Summary Record attendance punches
// @Description Ingests a batch of raw IN/OUT punches from the time clock
// @Tags attendance
// @Accept json
// @Produce json
// @Param punches body dto.RecordPunchesRequest true "Punch batch"
// @Success 201 {object} map[string]int "Number of punches recorded"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /attendance/punches [post]
func (h *attendanceHandler) recordPunches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPunchesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	recorded, err := h.timesheetService.RecordPunches(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to record punches", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record punches"})
		return
	}

	logger.Info("Punches recorded", slog.Int("count", recorded))
	c.JSON(http.StatusCreated, gin.H{"recorded": recorded})
}

// createAdjustment godoc
// @Summary Create a pay adjustment
// @Description Registers a manual earning concept for one employee and period
// @Tags attendance
// @Accept json
// @Produce json
// @Param adjustment body dto.CreateAdjustmentRequest true "Adjustment"
// @Success 201 {object} domain.Adjustment
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /attendance/adjustments [post]
func (h *attendanceHandler) createAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	adjustment, err := h.timesheetService.CreateAdjustment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create adjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create adjustment"})
		return
	}

	logger.Info("Adjustment created", slog.String("adjustment_id", adjustment.AdjustmentID))
	c.JSON(http.StatusCreated, adjustment)
}

// getSummary godoc
// @Summary Get an attendance summary
// @Description Aggregates an employee's punches for a period into normal and overtime hours
// @Tags attendance
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param period path string true "Period (YYYY-MM)"
// @Success 200 {object} domain.AttendancePunchSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /attendance/employees/{employeeID}/periods/{period}/summary [get]
func (h *attendanceHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := domain.ParsePeriod(c.Param("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid period, expected YYYY-MM"})
		return
	}

	summary, err := h.payrollService.GetAttendanceSummary(c.Request.Context(), c.Param("employeeID"), period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		if errors.Is(err, apperrors.ErrMissingRateData) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to aggregate attendance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to aggregate attendance"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
