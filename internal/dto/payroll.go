package dto

import "github.com/shopspring/decimal"

// RunPayrollRequest defines the payload for launching a payroll run.
// Final runs refuse anomalous attendance; draft runs flag it instead.
type RunPayrollRequest struct {
	Period string `json:"period" binding:"required,payperiod"`
	Final  bool   `json:"final"`
}

// RunUnitResult reports the outcome of one (employee, period) unit of a run.
// A failed unit carries Error and no statement; other units are unaffected.
type RunUnitResult struct {
	EmployeeID   string           `json:"employeeID"`
	LegajoNumber int              `json:"legajoNumber"`
	StatementID  string           `json:"statementID,omitempty"`
	Net          *decimal.Decimal `json:"net,omitempty"`
	Error        string           `json:"error,omitempty"`
}

// RunPayrollResponse summarises a payroll run, one result per employee.
type RunPayrollResponse struct {
	Period   string          `json:"period"`
	Final    bool            `json:"final"`
	Computed int             `json:"computed"`
	Failed   int             `json:"failed"`
	Results  []RunUnitResult `json:"results"`
}
