package controllers

import (
	"net/http"

	"github.com/c14220110/rota-backend/internal/rota/models"
	"github.com/c14220110/rota-backend/internal/rota/services"
	"github.com/labstack/echo/v4"
)

type EmployeeController struct {
	Service *services.RotaService
}

func NewEmployeeController(service *services.RotaService) *EmployeeController {
	return &EmployeeController{Service: service}
}

type AddEmployeeRequest struct {
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

type RequestShiftRequest struct {
	Day   *int   `json:"day"`
	Shift string `json:"shift"`
}

type employeeResponse struct {
	Name            string             `json:"name"`
	Grade           string             `json:"grade"`
	AssignedShifts  []models.ShiftCode `json:"assigned_shifts"`
	RequestedShifts []models.ShiftCode `json:"requested_shifts"`
	Summary         string             `json:"summary"`
}

func toEmployeeResponse(e models.Employee) employeeResponse {
	return employeeResponse{
		Name:            e.Name,
		Grade:           e.Grade.String(),
		AssignedShifts:  e.AssignedShifts,
		RequestedShifts: e.RequestedShifts,
		Summary:         e.ScheduleSummary(),
	}
}

func (ec *EmployeeController) AddEmployeeHandler(c echo.Context) error {
	var req AddEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid request payload: "+err.Error(), nil)
	}
	if req.Name == "" {
		return respond(c, http.StatusBadRequest, "name harus disediakan", nil)
	}
	grade, err := models.ParseEmployeeGrade(req.Grade)
	if err != nil {
		return respondError(c, "failed to add employee", err)
	}

	emp, err := ec.Service.AddEmployee(req.Name, grade)
	if err != nil {
		return respondError(c, "failed to add employee", err)
	}
	return respond(c, http.StatusCreated, "employee berhasil ditambahkan", toEmployeeResponse(*emp))
}

func (ec *EmployeeController) ListEmployeesHandler(c echo.Context) error {
	list := ec.Service.Employees()
	data := make([]employeeResponse, 0, len(list))
	for _, e := range list {
		data = append(data, toEmployeeResponse(e))
	}
	return respond(c, http.StatusOK, "employees berhasil diambil", data)
}

func (ec *EmployeeController) GetEmployeeHandler(c echo.Context) error {
	emp, err := ec.Service.Employee(c.Param("name"))
	if err != nil {
		return respondError(c, "failed to get employee", err)
	}
	return respond(c, http.StatusOK, "employee berhasil diambil", toEmployeeResponse(emp))
}

// RequestShiftHandler mencatat preferensi shift karyawan untuk satu hari.
func (ec *EmployeeController) RequestShiftHandler(c echo.Context) error {
	var req RequestShiftRequest
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid request payload: "+err.Error(), nil)
	}
	if req.Day == nil || req.Shift == "" {
		return respond(c, http.StatusBadRequest, "day dan shift harus disediakan", nil)
	}

	name := c.Param("name")
	if err := ec.Service.RequestShift(*req.Day, req.Shift, name); err != nil {
		return respondError(c, "failed to request shift", err)
	}
	return respond(c, http.StatusOK, "request shift berhasil disimpan", nil)
}
