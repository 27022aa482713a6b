package models

import (
	"fmt"
	"sort"
	"strings"
)

// Rota adalah jadwal lengkap: satu map shift -> karyawan per hari.
// Rota tidak thread-safe; caller yang konkuren harus mengunci sendiri
// (lihat services.RotaService).
type Rota struct {
	days               []map[ShiftCode]*Employee
	allowDoubleBooking bool
}

type RotaOption func(*Rota)

// WithDoubleBooking lets one employee hold several shift codes on the same
// day. The employee's own sequence then keeps only the latest code.
func WithDoubleBooking(allow bool) RotaOption {
	return func(r *Rota) {
		r.allowDoubleBooking = allow
	}
}

func NewRota(opts ...RotaOption) *Rota {
	r := &Rota{days: []map[ShiftCode]*Employee{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SlotEntry is one filled slot of a day, as returned by Day.
type SlotEntry struct {
	Shift    ShiftCode
	Employee *Employee
}

// Assign mencatat employee pada slot (day, shift) dan pada AssignedShifts
// milik employee. Jika gagal, tidak ada state yang berubah.
func (r *Rota) Assign(day int, shift ShiftCode, employee *Employee) error {
	if day < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	if !shift.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidShiftCode, string(shift))
	}
	if employee == nil {
		return ErrNilEmployee
	}

	if holder, ok := r.Holder(day, shift); ok {
		return &SlotAlreadyAssignedError{
			Day:      day,
			Shift:    shift,
			Employee: employee.Name,
			Holder:   holder.Name,
		}
	}

	// Cek dari sisi rota; None di AssignedShifts bisa berupa padding.
	if current, ok := r.shiftOf(day, employee); ok && !r.allowDoubleBooking {
		return &EmployeeDayDoubleBookedError{
			Day:      day,
			Shift:    shift,
			Employee: employee.Name,
			Current:  current,
		}
	}

	r.days = ensureLen(r.days, day+1, emptyDay)
	r.days[day][shift] = employee

	employee.AssignedShifts = ensureLen(employee.AssignedShifts, day+1, noShift)
	employee.AssignedShifts[day] = shift
	return nil
}

// Holder returns the employee occupying (day, shift), if any.
func (r *Rota) Holder(day int, shift ShiftCode) (*Employee, bool) {
	if day < 0 || day >= len(r.days) {
		return nil, false
	}
	e, ok := r.days[day][shift]
	return e, ok
}

// shiftOf returns the first shift, in report order, that employee holds on day.
func (r *Rota) shiftOf(day int, employee *Employee) (ShiftCode, bool) {
	if day < 0 || day >= len(r.days) {
		return "", false
	}
	for _, s := range sortedShifts(r.days[day]) {
		if r.days[day][s] == employee {
			return s, true
		}
	}
	return "", false
}

// Days returns the number of days currently tracked, populated or not.
func (r *Rota) Days() int {
	return len(r.days)
}

// Day returns the filled slots of one day sorted by shift code.
func (r *Rota) Day(day int) []SlotEntry {
	if day < 0 || day >= len(r.days) {
		return nil
	}
	shifts := sortedShifts(r.days[day])
	entries := make([]SlotEntry, 0, len(shifts))
	for _, s := range shifts {
		entries = append(entries, SlotEntry{Shift: s, Employee: r.days[day][s]})
	}
	return entries
}

// Render menghasilkan laporan per hari, satu baris per hari:
//
//	Day 0 // A: E1, B: E2, DayOff: E3
//	Day 1 // --
func (r *Rota) Render() string {
	var sb strings.Builder
	for index := range r.days {
		entries := r.Day(index)
		if len(entries) == 0 {
			fmt.Fprintf(&sb, "Day %d // --\n", index)
			continue
		}
		parts := make([]string, len(entries))
		for i, entry := range entries {
			parts[i] = fmt.Sprintf("%s: %s", entry.Shift, entry.Employee.ShortLabel())
		}
		fmt.Fprintf(&sb, "Day %d // %s\n", index, strings.Join(parts, ", "))
	}
	return sb.String()
}

func sortedShifts(day map[ShiftCode]*Employee) []ShiftCode {
	keys := make([]ShiftCode, 0, len(day))
	for s := range day {
		keys = append(keys, s)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func emptyDay() map[ShiftCode]*Employee {
	return map[ShiftCode]*Employee{}
}
