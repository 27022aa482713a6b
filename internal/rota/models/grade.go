package models

import (
	"fmt"
	"strings"
)

// EmployeeGrade adalah kategori kepegawaian karyawan.
type EmployeeGrade string

const (
	GradeUnassigned EmployeeGrade = "Unassigned"
	GradeManager    EmployeeGrade = "Manager"
	GradePartTime   EmployeeGrade = "Part Time"
	GradeFullTime   EmployeeGrade = "Full Time"
)

func (g EmployeeGrade) IsValid() bool {
	switch g {
	case GradeUnassigned, GradeManager, GradePartTime, GradeFullTime:
		return true
	}
	return false
}

func (g EmployeeGrade) String() string {
	return string(g)
}

// ParseEmployeeGrade accepts the canonical grade names. An empty value maps
// to GradeUnassigned.
func ParseEmployeeGrade(raw string) (EmployeeGrade, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return GradeUnassigned, nil
	}
	g := EmployeeGrade(trimmed)
	if !g.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidGrade, raw)
	}
	return g, nil
}
