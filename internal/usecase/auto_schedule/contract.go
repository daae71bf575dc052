package auto_schedule

import (
	"context"
	"time"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Overlapping(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	Resolve(label string) domain.ServiceInfo
}

// DurationRules интерфейс правил длительности процедур
type DurationRules interface {
	Minutes(serviceType string, details domain.RequestDetails) int
}

// WorkingCalendar интерфейс рабочего календаря кабинета
type WorkingCalendar interface {
	Location() *time.Location
	IsWeekend(day time.Time) bool
	SlotsForDay(day time.Time) []time.Time
	DayBounds(day time.Time) (time.Time, time.Time)
	FitsWithinBlock(interval domain.TimeInterval) bool
}

// ConflictChecker интерфейс проверки занятости окна.
// Автоподбор предлагает только полностью свободные окна
type ConflictChecker interface {
	Vacant(candidate domain.TimeInterval, existing []*domain.Booking) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
