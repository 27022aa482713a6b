package models

import (
	"fmt"
	"strings"
)

// Employee merepresentasikan satu karyawan dalam rota.
// AssignedShifts hanya diubah lewat Rota.Assign.
type Employee struct {
	Name            string        `json:"name"`
	Grade           EmployeeGrade `json:"grade"`
	RequestedShifts []ShiftCode   `json:"requested_shifts"` // index = hari
	AssignedShifts  []ShiftCode   `json:"assigned_shifts"`  // index = hari
}

func NewEmployee(name string, grade EmployeeGrade) (*Employee, error) {
	if !grade.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGrade, string(grade))
	}
	return &Employee{
		Name:            name,
		Grade:           grade,
		RequestedShifts: []ShiftCode{},
		AssignedShifts:  []ShiftCode{},
	}, nil
}

// ShortLabel is the name alone, used inside the day report.
func (e *Employee) ShortLabel() string {
	return e.Name
}

// ScheduleSummary renders "name: A, B, DayOff" in day order.
func (e *Employee) ScheduleSummary() string {
	codes := make([]string, len(e.AssignedShifts))
	for i, s := range e.AssignedShifts {
		codes[i] = s.String()
	}
	return fmt.Sprintf("%s: %s", e.Name, strings.Join(codes, ", "))
}

// ShiftOn returns the shift assigned on day, ShiftNone for untouched days.
func (e *Employee) ShiftOn(day int) ShiftCode {
	if day < 0 || day >= len(e.AssignedShifts) {
		return ShiftNone
	}
	return e.AssignedShifts[day]
}

// Request mencatat preferensi shift karyawan. Belum dibaca oleh Assign.
func (e *Employee) Request(day int, shift ShiftCode) error {
	if day < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	if !shift.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidShiftCode, string(shift))
	}
	e.RequestedShifts = ensureLen(e.RequestedShifts, day+1, noShift)
	e.RequestedShifts[day] = shift
	return nil
}

// RequestedOn returns the requested shift on day, ShiftNone if none recorded.
func (e *Employee) RequestedOn(day int) ShiftCode {
	if day < 0 || day >= len(e.RequestedShifts) {
		return ShiftNone
	}
	return e.RequestedShifts[day]
}

func noShift() ShiftCode { return ShiftNone }
