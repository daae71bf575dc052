package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "github.com/m04kA/MC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/MC-AppointmentService/internal/service/bookings/models"
)

// Service сервис для работы с журналом записей
type Service struct {
	bookingRepo BookingRepository
	location    *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса записей.
// location - часовой пояс кабинета, в нем отображаются даты и время
func NewService(
	bookingRepo BookingRepository,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		location:    location,
		logger:      logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.location), nil
}

// List получает журнал записей с фильтрацией по периоду и признаку выполнения.
// Обе границы периода включительны и трактуются как календарные дни кабинета
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.FromDate != nil && req.ToDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.FromDate.Format("2006-01-02"), req.ToDate.Format("2006-01-02"))
	}
	if req.Done != nil {
		logMsg += fmt.Sprintf(", done=%t", *req.Done)
	}
	s.logger.Info(logMsg)

	if req.FromDate != nil && req.ToDate != nil && req.ToDate.Before(*req.FromDate) {
		s.logger.Warn("List: period end %s is before period start %s",
			req.ToDate.Format("2006-01-02"), req.FromDate.Format("2006-01-02"))
		return nil, ErrInvalidTimeRange
	}

	bookings, err := s.bookingRepo.List(ctx, req.ToDomainFilter(s.location))
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, s.location), nil
}

// SetDone выставляет признак выполнения записи.
// Отметку можно снять повторным вызовом с done=false
func (s *Service) SetDone(ctx context.Context, id int64, done bool) error {
	s.logger.Info("SetDone: marking booking id=%d as done=%t", id, done)

	if err := s.bookingRepo.SetDone(ctx, id, done); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("SetDone: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("SetDone: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: SetDone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetDone: successfully updated booking id=%d", id)
	return nil
}

// Delete удаляет запись из журнала.
// Запись удаляется физически: история выполненных процедур ведется
// признаком done, а не удалением
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
