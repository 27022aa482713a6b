package controllers

import (
	"errors"
	"net/http"

	"github.com/c14220110/rota-backend/internal/rota/models"
	"github.com/c14220110/rota-backend/internal/rota/services"
	"github.com/labstack/echo/v4"
)

type RotaController struct {
	Service *services.RotaService
}

func NewRotaController(service *services.RotaService) *RotaController {
	return &RotaController{Service: service}
}

type AssignRequest struct {
	Day      *int   `json:"day"`
	Shift    string `json:"shift"`
	Employee string `json:"employee"`
}

// GetRotaHandler mengembalikan laporan rota per hari.
// Dengan ?format=text, laporan dikirim sebagai text/plain.
func (rc *RotaController) GetRotaHandler(c echo.Context) error {
	if c.QueryParam("format") == "text" {
		return c.String(http.StatusOK, rc.Service.Report())
	}
	return respond(c, http.StatusOK, "rota berhasil diambil", rc.Service.View())
}

// AssignShiftHandler menerima body {day, shift, employee}.
func (rc *RotaController) AssignShiftHandler(c echo.Context) error {
	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid request payload: "+err.Error(), nil)
	}
	if req.Day == nil || req.Shift == "" || req.Employee == "" {
		return respond(c, http.StatusBadRequest, "day, shift, dan employee harus disediakan", nil)
	}

	if err := rc.Service.Assign(*req.Day, req.Shift, req.Employee); err != nil {
		return respondError(c, "failed to assign shift", err)
	}

	return respond(c, http.StatusOK, "shift berhasil di-assign", map[string]interface{}{
		"day":      *req.Day,
		"shift":    req.Shift,
		"employee": req.Employee,
	})
}

func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// respondError memetakan error domain ke status HTTP.
func respondError(c echo.Context, prefix string, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrSlotAlreadyAssigned),
		errors.Is(err, models.ErrEmployeeDayDoubleBooked),
		errors.Is(err, services.ErrEmployeeExists):
		status = http.StatusConflict
	case errors.Is(err, services.ErrEmployeeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidShiftCode),
		errors.Is(err, models.ErrInvalidGrade),
		errors.Is(err, models.ErrInvalidDay),
		errors.Is(err, services.ErrDayOutOfRange):
		status = http.StatusBadRequest
	}
	return respond(c, status, prefix+": "+err.Error(), nil)
}
