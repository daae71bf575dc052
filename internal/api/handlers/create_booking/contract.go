package create_booking

import (
	"context"

	autoSchedule "github.com/m04kA/MC-AppointmentService/internal/usecase/auto_schedule"
	createBooking "github.com/m04kA/MC-AppointmentService/internal/usecase/create_booking"
)

// CreateBookingUseCase интерфейс use case записи на конкретное время
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// AutoScheduleUseCase интерфейс use case автоподбора времени
type AutoScheduleUseCase interface {
	Execute(ctx context.Context, req *autoSchedule.Request) (*autoSchedule.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
