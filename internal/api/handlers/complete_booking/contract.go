package complete_booking

import "context"

// BookingService интерфейс сервиса записей
type BookingService interface {
	SetDone(ctx context.Context, id int64, done bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
