package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
	"github.com/m04kA/MC-AppointmentService/internal/scheduling"
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
	FitsWithinBlock(interval domain.TimeInterval) bool
}

// ConflictChecker интерфейс проверки совместимости записей
type ConflictChecker interface {
	Check(candidate domain.TimeInterval, service domain.ServiceInfo, details domain.RequestDetails, existing []*domain.Booking) scheduling.Decision
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
