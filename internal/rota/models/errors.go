package models

import (
	"errors"
	"fmt"
)

var (
	ErrSlotAlreadyAssigned     = errors.New("shift slot already assigned")
	ErrEmployeeDayDoubleBooked = errors.New("employee already has a shift that day")
	ErrInvalidShiftCode        = errors.New("invalid shift code")
	ErrInvalidGrade            = errors.New("invalid employee grade")
	ErrInvalidDay              = errors.New("invalid day")
	ErrNilEmployee             = errors.New("employee is required")
)

// SlotAlreadyAssignedError dikembalikan oleh Rota.Assign ketika slot (day, shift)
// sudah terisi.
type SlotAlreadyAssignedError struct {
	Day      int
	Shift    ShiftCode
	Employee string // karyawan yang mau di-assign
	Holder   string // karyawan yang sudah menempati slot
}

func (e *SlotAlreadyAssignedError) Error() string {
	return fmt.Sprintf("failed to assign %s to shift %s on day %d: already assigned to %s",
		e.Employee, e.Shift, e.Day, e.Holder)
}

func (e *SlotAlreadyAssignedError) Unwrap() error {
	return ErrSlotAlreadyAssigned
}

// EmployeeDayDoubleBookedError dikembalikan ketika karyawan sudah memegang
// shift lain pada hari yang sama.
type EmployeeDayDoubleBookedError struct {
	Day      int
	Shift    ShiftCode
	Employee string
	Current  ShiftCode
}

func (e *EmployeeDayDoubleBookedError) Error() string {
	return fmt.Sprintf("failed to assign %s to shift %s on day %d: already on shift %s",
		e.Employee, e.Shift, e.Day, e.Current)
}

func (e *EmployeeDayDoubleBookedError) Unwrap() error {
	return ErrEmployeeDayDoubleBooked
}
