package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/LBaravalle/payroll_engine_app/internal/middleware"
)

// employeeHandler handles HTTP requests for employee reference data.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(employeeService portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: employeeService}
}

func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)
	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employeeID", h.getEmployee)
		employees.PUT("/:employeeID", h.updateEmployee)
		employees.DELETE("/:employeeID", h.deactivateEmployee)
	}
}

// createEmployee godoc
// @Summary Create an employee
// @Description Registers a new employee with hire date and optional pay overrides
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} domain.Employee
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create employee", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create employee"})
		return
	}

	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, employee)
}

// listEmployees godoc
// @Summary List active employees
// @Tags employees
// @Produce json
// @Success 200 {array} domain.Employee
// @Failure 500 {object} ErrorResponse
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list employees"})
		return
	}
	c.JSON(http.StatusOK, employees)
}

// getEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees/{employeeID} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	employeeID := c.Param("employeeID")
	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve employee"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Applies the non-null fields of the payload to the employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} domain.Employee
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees/{employeeID} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update employee"})
		}
		return
	}
	c.JSON(http.StatusOK, employee)
}

// deactivateEmployee godoc
// @Summary Deactivate an employee
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees/{employeeID} [delete]
func (h *employeeHandler) deactivateEmployee(c *gin.Context) {
	employeeID := c.Param("employeeID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.employeeService.DeactivateEmployee(c.Request.Context(), employeeID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to deactivate employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate employee"})
		return
	}
	c.Status(http.StatusNoContent)
}
