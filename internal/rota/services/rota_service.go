package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/c14220110/rota-backend/internal/rota/models"
)

var (
	ErrEmployeeExists   = errors.New("employee already exists")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDayOutOfRange    = errors.New("day is outside the rota month")
)

// DefaultMonthDays dipakai bila maxDays <= 0.
const DefaultMonthDays = 31

// Notifier menerima event setiap kali rota berubah (mis. ws.Hub).
type Notifier interface {
	Publish(message []byte)
}

// RotaEvent adalah payload yang di-broadcast setelah assign berhasil.
type RotaEvent struct {
	Event    string `json:"event"`
	Day      int    `json:"day"`
	Shift    string `json:"shift"`
	Employee string `json:"employee"`
}

// RotaService membungkus satu models.Rota dan registry karyawan.
// Semua operasi diserialisasi dengan satu mutex sehingga check-then-write
// di Assign atomik.
type RotaService struct {
	mu        sync.Mutex
	rota      *models.Rota
	employees map[string]*models.Employee
	order     []string
	maxDays   int
	notifier  Notifier
}

// NewRotaService membuat service kosong. maxDays <= 0 diganti DefaultMonthDays.
func NewRotaService(maxDays int, allowDoubleBooking bool, notifier Notifier) *RotaService {
	if maxDays <= 0 {
		maxDays = DefaultMonthDays
	}
	return &RotaService{
		rota:      models.NewRota(models.WithDoubleBooking(allowDoubleBooking)),
		employees: make(map[string]*models.Employee),
		maxDays:   maxDays,
		notifier:  notifier,
	}
}

func (s *RotaService) AddEmployee(name string, grade models.EmployeeGrade) (*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrEmployeeExists, name)
	}
	emp, err := models.NewEmployee(name, grade)
	if err != nil {
		return nil, err
	}
	s.employees[name] = emp
	s.order = append(s.order, name)
	return emp, nil
}

// Employee returns a copy of the named employee's record.
func (s *RotaService) Employee(name string) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[name]
	if !ok {
		return models.Employee{}, fmt.Errorf("%w: %s", ErrEmployeeNotFound, name)
	}
	return snapshot(emp), nil
}

// Employees returns copies of every employee in registration order.
func (s *RotaService) Employees() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]models.Employee, 0, len(s.order))
	for _, name := range s.order {
		list = append(list, snapshot(s.employees[name]))
	}
	return list
}

// Assign mem-parse kode shift mentah lalu mencatat assignment.
func (s *RotaService) Assign(day int, rawShift, name string) error {
	shift, err := models.ParseShiftCode(rawShift)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkDay(day); err != nil {
		return err
	}
	emp, ok := s.employees[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEmployeeNotFound, name)
	}
	if err := s.rota.Assign(day, shift, emp); err != nil {
		return err
	}
	log.Printf("rota: assigned %s to shift %s on day %d", name, shift, day)

	s.publish(RotaEvent{Event: "rota_updated", Day: day, Shift: shift.String(), Employee: name})
	return nil
}

// RequestShift mencatat preferensi shift karyawan.
func (s *RotaService) RequestShift(day int, rawShift, name string) error {
	shift, err := models.ParseShiftCode(rawShift)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkDay(day); err != nil {
		return err
	}
	emp, ok := s.employees[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEmployeeNotFound, name)
	}
	return emp.Request(day, shift)
}

// DaySlots is the read model of one rota day.
type DaySlots struct {
	Day   int               `json:"day"`
	Slots map[string]string `json:"slots"` // shift -> employee
}

func (s *RotaService) Days() []DaySlots {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.daySlots()
}

// Report is the day-by-day text report.
func (s *RotaService) Report() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rota.Render()
}

// RotaView is the text report and the per-day slots taken at the same instant.
type RotaView struct {
	Report string     `json:"report"`
	Days   []DaySlots `json:"days"`
}

func (s *RotaService) View() RotaView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RotaView{Report: s.rota.Render(), Days: s.daySlots()}
}

func (s *RotaService) daySlots() []DaySlots {
	days := make([]DaySlots, s.rota.Days())
	for d := range days {
		slots := map[string]string{}
		for _, entry := range s.rota.Day(d) {
			slots[entry.Shift.String()] = entry.Employee.ShortLabel()
		}
		days[d] = DaySlots{Day: d, Slots: slots}
	}
	return days
}

// EmployeeReport returns one schedule summary line per employee.
func (s *RotaService) EmployeeReport() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, 0, len(s.order))
	for _, name := range s.order {
		lines = append(lines, s.employees[name].ScheduleSummary())
	}
	return lines
}

func (s *RotaService) checkDay(day int) error {
	if day < 0 {
		return fmt.Errorf("%w: %d", models.ErrInvalidDay, day)
	}
	if day >= s.maxDays {
		return fmt.Errorf("%w: day %d, month has %d days", ErrDayOutOfRange, day, s.maxDays)
	}
	return nil
}

func (s *RotaService) publish(event RotaEvent) {
	if s.notifier == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("rota: failed to encode event: %v", err)
		return
	}
	s.notifier.Publish(payload)
}

func snapshot(e *models.Employee) models.Employee {
	return models.Employee{
		Name:            e.Name,
		Grade:           e.Grade,
		RequestedShifts: append([]models.ShiftCode{}, e.RequestedShifts...),
		AssignedShifts:  append([]models.ShiftCode{}, e.AssignedShifts...),
	}
}
