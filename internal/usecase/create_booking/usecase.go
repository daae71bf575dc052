package create_booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
)

// UseCase use case для создания записи на явно выбранное время
type UseCase struct {
	bookingRepo     BookingRepository
	catalog         ServiceCatalog
	durationRules   DurationRules
	calendar        WorkingCalendar
	conflictChecker ConflictChecker
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog ServiceCatalog,
	durationRules DurationRules,
	calendar WorkingCalendar,
	conflictChecker ConflictChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		catalog:         catalog,
		durationRules:   durationRules,
		calendar:        calendar,
		conflictChecker: conflictChecker,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute создает запись на явно выбранное время.
// Проверка занятости окна и вставка выполняются в сериализуемой транзакции:
// выборка пересечений берет блокировку FOR UPDATE, поэтому два конкурирующих
// запроса на одно окно не могут пройти проверку одновременно.
//
// Время в прошлом не отклоняется: оператор вносит и уже проведенные процедуры
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%q, startsAt=%s",
		req.ServiceType, req.StartsAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем детали заявки и определяем услугу по каталогу
	details := domain.ParseDetails(req.Details)
	service := uc.catalog.Resolve(req.ServiceType)

	// 3. Вычисляем длительность и строим интервал в поясе кабинета
	minutes := uc.durationRules.Minutes(req.ServiceType, details)
	interval := domain.NewTimeInterval(req.StartsAt.In(uc.calendar.Location()), minutes)

	// 4. Интервал должен целиком попадать в один рабочий интервал дня
	if !uc.calendar.FitsWithinBlock(interval) {
		uc.logger.Warn("CreateBooking: interval %s - %s is outside working hours",
			interval.Start.Format(time.RFC3339), interval.End.Format(time.RFC3339))
		return nil, ErrOutsideWorkingHours
	}

	var result *domain.Booking

	// 5. Проверка занятости окна и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Берем пересекающиеся записи с блокировкой FOR UPDATE
		overlapping, err := uc.bookingRepo.Overlapping(txCtx, interval.Start, interval.End)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		// 5.2. Проверяем совместимость с уже существующими записями
		decision := uc.conflictChecker.Check(interval, service, details, overlapping)
		if !decision.Admissible {
			uc.logger.Warn("CreateBooking: slot rejected: %s", decision.Reason)
			return &ConflictError{Reason: decision.Reason}
		}

		// 5.3. Сохраняем запись
		booking := &domain.Booking{
			ServiceCode: service.Code,
			ServiceName: strings.TrimSpace(req.ServiceType),
			Drips:       details.Drips,
			Injections:  details.Injections,
			StartsAt:    interval.Start,
			EndsAt:      interval.End,
			ContactInfo: req.ContactInfo,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, interval %s - %s",
		result.ID, result.StartsAt.Format(time.RFC3339), result.EndsAt.Format(time.RFC3339))

	return toResponse(result), nil
}

// toResponse конвертирует запись в модель ответа
func toResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:              booking.ID,
		ServiceCode:     string(booking.ServiceCode),
		ServiceName:     booking.ServiceName,
		Drips:           booking.Drips,
		Injections:      booking.Injections,
		StartsAt:        booking.StartsAt,
		EndsAt:          booking.EndsAt,
		DurationMinutes: booking.DurationMinutes(),
		ContactInfo:     booking.ContactInfo,
		Done:            booking.Done,
		CreatedAt:       booking.CreatedAt,
	}
}
