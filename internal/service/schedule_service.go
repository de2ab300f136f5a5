package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"agendados/internal/dictation"
	"agendados/internal/domain"
	"agendados/internal/port"
	"agendados/internal/schedule"
)

// ScheduleSettings configures the callback rules.
type ScheduleSettings struct {
	Location  *time.Location
	DaysAhead int
	Hours     schedule.BusinessHours
}

// DateOptions is the list of selectable callback dates.
type DateOptions struct {
	Dates   []string `json:"dates"`
	Default string   `json:"default"`
}

// EvaluateInput is the DTO for checking a callback slot.
type EvaluateInput struct {
	Date   string `json:"date" binding:"required"`
	Hour   int    `json:"hour" binding:"required,min=1,max=12"`
	Minute int    `json:"minute" binding:"min=0,max=59"`
	IsAM   bool   `json:"is_am"`
}

// Evaluation is the outcome of a slot check. OK is false when Alert is set.
type Evaluation struct {
	ScheduledAt time.Time            `json:"scheduled_at"`
	Alert       domain.ScheduleAlert `json:"alert,omitempty"`
	Message     string               `json:"message,omitempty"`
	OK          bool                 `json:"ok"`
}

// AddHolidayInput is the DTO for registering a one-off holiday.
type AddHolidayInput struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
}

// ScheduleService picks and checks callback slots.
type ScheduleService interface {
	Options(ctx context.Context) (*DateOptions, error)
	DefaultDate(ctx context.Context) (time.Time, error)
	Evaluate(ctx context.Context, input EvaluateInput) (*Evaluation, error)
	ScheduledAt(date string, hour, minute int, isAM bool) (time.Time, error)
	Now() time.Time
	AddHoliday(ctx context.Context, input AddHolidayInput) (*domain.Holiday, error)
	ListHolidays(ctx context.Context) ([]domain.Holiday, error)
	DeleteHoliday(ctx context.Context, id uuid.UUID) error
}

type scheduleService struct {
	holidayRepo port.HolidayRepository
	clock       schedule.Clock
	settings    ScheduleSettings
}

// NewScheduleService creates a new ScheduleService implementation.
func NewScheduleService(holidayRepo port.HolidayRepository, clock schedule.Clock, settings ScheduleSettings) ScheduleService {
	if settings.Location == nil {
		settings.Location = schedule.LoadLocation(schedule.LimaZone)
	}
	if settings.Hours == (schedule.BusinessHours{}) {
		settings.Hours = schedule.DefaultBusinessHours
	}
	return &scheduleService{holidayRepo: holidayRepo, clock: clock, settings: settings}
}

func (s *scheduleService) calendar(ctx context.Context) (schedule.Calendar, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("schedule.calendar: %w", err)
	}
	dates := make([]time.Time, len(holidays))
	for i := range holidays {
		dates[i] = holidays[i].Date
	}
	return schedule.NewPeruCalendar(dates...), nil
}

func (s *scheduleService) Now() time.Time {
	return s.clock.Now().In(s.settings.Location)
}

func (s *scheduleService) Options(ctx context.Context) (*DateOptions, error) {
	def, err := s.DefaultDate(ctx)
	if err != nil {
		return nil, err
	}
	opts := schedule.DateOptions(s.Now(), s.settings.DaysAhead)
	out := &DateOptions{Dates: make([]string, len(opts)), Default: def.Format(domain.DateLayout)}
	for i, d := range opts {
		out.Dates[i] = d.Format(domain.DateLayout)
	}
	return out, nil
}

func (s *scheduleService) DefaultDate(ctx context.Context) (time.Time, error) {
	cal, err := s.calendar(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return schedule.NextBusinessDay(s.Now(), cal), nil
}

func (s *scheduleService) ScheduledAt(date string, hour, minute int, isAM bool) (time.Time, error) {
	day, err := schedule.ParseDate(date, s.settings.Location)
	if err != nil {
		return time.Time{}, err
	}
	tod, err := schedule.To24Hour(hour, minute, isAM)
	if err != nil {
		return time.Time{}, err
	}
	return schedule.At(day, tod), nil
}

func (s *scheduleService) Evaluate(ctx context.Context, input EvaluateInput) (*Evaluation, error) {
	at, err := s.ScheduledAt(input.Date, input.Hour, input.Minute, input.IsAM)
	if err != nil {
		return nil, err
	}
	cal, err := s.calendar(ctx)
	if err != nil {
		return nil, err
	}

	ev := &Evaluation{ScheduledAt: at, OK: true}
	if alert, flagged := schedule.Evaluate(at, cal, s.settings.Hours); flagged {
		ev.OK = false
		ev.Alert = alert
		ev.Message = s.alertMessage(alert)
	}
	return ev, nil
}

func (s *scheduleService) alertMessage(alert domain.ScheduleAlert) string {
	if alert == domain.AlertOutsideHours && s.settings.Hours != schedule.DefaultBusinessHours {
		return fmt.Sprintf("Fuera del horario (%s-%s)", s.settings.Hours.Open, s.settings.Hours.Close)
	}
	return alert.Message()
}

func (s *scheduleService) AddHoliday(ctx context.Context, input AddHolidayInput) (*domain.Holiday, error) {
	day, err := schedule.ParseDate(input.Date, time.UTC)
	if err != nil {
		return nil, err
	}
	h := &domain.Holiday{
		Date:        day,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.holidayRepo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *scheduleService) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	return s.holidayRepo.List(ctx)
}

func (s *scheduleService) DeleteHoliday(ctx context.Context, id uuid.UUID) error {
	return s.holidayRepo.Delete(ctx, id)
}

// hoursFrom builds business hours from "HH:MM" strings.
func hoursFrom(open, closing string) (schedule.BusinessHours, error) {
	o, err := dictation.ParseTimeOfDay(open)
	if err != nil {
		return schedule.BusinessHours{}, fmt.Errorf("open time: %w", err)
	}
	c, err := dictation.ParseTimeOfDay(closing)
	if err != nil {
		return schedule.BusinessHours{}, fmt.Errorf("close time: %w", err)
	}
	return schedule.BusinessHours{Open: o, Close: c}, nil
}

// SettingsFromConfig resolves the schedule section of the configuration.
func SettingsFromConfig(timezone string, daysAhead int, open, closing string) (ScheduleSettings, error) {
	hours, err := hoursFrom(open, closing)
	if err != nil {
		return ScheduleSettings{}, err
	}
	return ScheduleSettings{
		Location:  schedule.LoadLocation(timezone),
		DaysAhead: daysAhead,
		Hours:     hours,
	}, nil
}
