package models

import (
	"fmt"
	"strings"
)

// ShiftCode adalah kode shift untuk satu karyawan pada satu hari.
type ShiftCode string

const (
	ShiftA      ShiftCode = "A"
	ShiftB      ShiftCode = "B"
	ShiftC      ShiftCode = "C"
	ShiftD      ShiftCode = "D"
	ShiftG      ShiftCode = "G"
	ShiftNone   ShiftCode = "None"   // tidak ada assignment
	ShiftDayOff ShiftCode = "DayOff" // hari libur
)

// AllShiftCodes returns every shift code in report order.
func AllShiftCodes() []ShiftCode {
	return []ShiftCode{ShiftA, ShiftB, ShiftC, ShiftD, ShiftDayOff, ShiftG, ShiftNone}
}

func (s ShiftCode) IsValid() bool {
	switch s {
	case ShiftA, ShiftB, ShiftC, ShiftD, ShiftG, ShiftNone, ShiftDayOff:
		return true
	}
	return false
}

func (s ShiftCode) String() string {
	return string(s)
}

// ParseShiftCode memvalidasi kode shift mentah dari caller.
func ParseShiftCode(raw string) (ShiftCode, error) {
	s := ShiftCode(strings.TrimSpace(raw))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidShiftCode, raw)
	}
	return s, nil
}
