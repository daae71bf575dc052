package schedule

import (
	"time"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
	"github.com/m04kA/MC-AppointmentService/internal/scheduling"
)

// WorkingCalendar интерфейс рабочего календаря кабинета
type WorkingCalendar interface {
	Location() *time.Location
	StepMinutes() int
	Blocks() []scheduling.BlockRange
	Weekend() []time.Weekday
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	Services() []domain.ServiceInfo
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
