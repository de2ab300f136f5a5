package service_test

import (
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"agendados/internal/config"
	"agendados/internal/domain"
	"agendados/internal/schedule"
	"agendados/internal/service"
	"agendados/mocks"
)

var pet = time.FixedZone("PET", -5*60*60)

// saturdayNoon is Saturday 2026-10-17 12:00 in Lima.
var saturdayNoon = time.Date(2026, 10, 17, 12, 0, 0, 0, pet)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-for-unit-tests",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
		Issuer:             "agendados-test",
	}
}

func newScheduleService(holidayRepo *mocks.MockHolidayRepo) service.ScheduleService {
	return service.NewScheduleService(holidayRepo, schedule.FixedClock{T: saturdayNoon}, service.ScheduleSettings{
		Location:  pet,
		DaysAhead: 2,
		Hours:     schedule.DefaultBusinessHours,
	})
}

// noHolidays returns a holiday repo with no registered dates.
func noHolidays() *mocks.MockHolidayRepo {
	repo := new(mocks.MockHolidayRepo)
	repo.On("List", mock.Anything).Return([]domain.Holiday{}, nil).Maybe()
	return repo
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
