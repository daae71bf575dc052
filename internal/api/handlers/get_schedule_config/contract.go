package get_schedule_config

import (
	"github.com/m04kA/MC-AppointmentService/internal/service/schedule/models"
)

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	GetScheduleConfig() *models.ScheduleConfigResponse
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
