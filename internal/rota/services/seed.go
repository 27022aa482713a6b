package services

import (
	"fmt"

	"github.com/c14220110/rota-backend/internal/rota/models"
)

// SeedDemo mengisi service dengan data contoh: enam karyawan dan tiga
// assignment di hari 0.
func SeedDemo(s *RotaService) error {
	staff := []struct {
		name  string
		grade models.EmployeeGrade
	}{
		{"小林", models.GradeManager},
		{"リチャード", models.GradeFullTime},
		{"前井", models.GradeFullTime},
		{"前川", models.GradeFullTime},
		{"ホヨン", models.GradeFullTime},
		{"坂田", models.GradePartTime},
	}
	for _, st := range staff {
		if _, err := s.AddEmployee(st.name, st.grade); err != nil {
			return fmt.Errorf("seed employee %s: %w", st.name, err)
		}
	}

	assignments := []struct {
		day   int
		shift models.ShiftCode
		name  string
	}{
		{0, models.ShiftA, "小林"},
		{0, models.ShiftB, "リチャード"},
		{0, models.ShiftDayOff, "前井"},
	}
	for _, a := range assignments {
		if err := s.Assign(a.day, a.shift.String(), a.name); err != nil {
			return fmt.Errorf("seed assignment: %w", err)
		}
	}
	return nil
}
