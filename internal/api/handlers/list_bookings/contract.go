package list_bookings

import (
	"context"

	"github.com/m04kA/MC-AppointmentService/internal/service/bookings/models"
)

// BookingService интерфейс сервиса записей
type BookingService interface {
	List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
