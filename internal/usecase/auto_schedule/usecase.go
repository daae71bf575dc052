package auto_schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
)

// UseCase use case автоподбора: ищет первое свободное окно вперед от начала
// поиска и сразу создает запись на него
type UseCase struct {
	bookingRepo        BookingRepository
	catalog            ServiceCatalog
	durationRules      DurationRules
	calendar           WorkingCalendar
	conflictChecker    ConflictChecker
	txManager          TransactionManager
	timeProvider       TimeProvider
	defaultHorizonDays int
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog ServiceCatalog,
	durationRules DurationRules,
	calendar WorkingCalendar,
	conflictChecker ConflictChecker,
	txManager TransactionManager,
	defaultHorizonDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:        bookingRepo,
		catalog:            catalog,
		durationRules:      durationRules,
		calendar:           calendar,
		conflictChecker:    conflictChecker,
		txManager:          txManager,
		timeProvider:       &RealTimeProvider{},
		defaultHorizonDays: defaultHorizonDays,
		logger:             logger,
	}
}

// Execute подбирает первое свободное окно и создает запись.
//
// Поиск идет по календарным дням от начала поиска, выходные пропускаются,
// но расходуют горизонт. Кандидаты дня перебираются в хронологическом
// порядке; прошедшее время никогда не предлагается. Весь поиск выполняется
// в одной сериализуемой транзакции: выборка записей дня берет блокировку
// FOR UPDATE, и найденное окно не может быть занято между проверкой и
// вставкой. Запросы к хранилищу идут строго последовательно, день за днем:
// проверка каждого кандидата должна видеть актуальные записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AutoSchedule: service=%q, sameDayOnly=%t", req.ServiceType, req.SameDayOnly)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AutoSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем детали заявки, определяем услугу и длительность
	details := domain.ParseDetails(req.Details)
	service := uc.catalog.Resolve(req.ServiceType)
	minutes := uc.durationRules.Minutes(req.ServiceType, details)

	// 3. Начало поиска: назад не ищем, прошедшее время не предлагаем
	now := uc.timeProvider.Now()
	searchFrom := now
	if req.SearchFrom != nil && req.SearchFrom.After(now) {
		searchFrom = *req.SearchFrom
	}
	searchFrom = searchFrom.In(uc.calendar.Location())

	// 4. Горизонт поиска. Процедуры по постоянному направлению записываются
	// только на день обращения - у направления нет брони на будущее
	horizonDays := uc.defaultHorizonDays
	if req.HorizonDays != nil {
		horizonDays = *req.HorizonDays
	}
	if req.SameDayOnly || service.AutoSameDayOnly {
		horizonDays = 0
	}

	uc.logger.Info("AutoSchedule: searching from %s, horizon %d days, duration %d min",
		searchFrom.Format(time.RFC3339), horizonDays, minutes)

	var result *domain.Booking

	// 5. Поиск и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for offset := 0; offset <= horizonDays; offset++ {
			day := searchFrom.AddDate(0, 0, offset)

			// 5.1. Выходные пропускаем, день горизонта при этом расходуется
			if uc.calendar.IsWeekend(day) {
				continue
			}

			slots := uc.calendar.SlotsForDay(day)
			if len(slots) == 0 {
				continue
			}

			// 5.2. Свежая выборка записей дня с блокировкой FOR UPDATE
			dayStart, dayEnd := uc.calendar.DayBounds(day)
			existing, err := uc.bookingRepo.Overlapping(txCtx, dayStart, dayEnd)
			if err != nil {
				uc.logger.Error("AutoSchedule: failed to get bookings for %s: %v",
					day.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}

			// 5.3. Первое свободное окно дня
			for _, slot := range slots {
				if slot.Before(searchFrom) {
					continue
				}

				interval := domain.NewTimeInterval(slot, minutes)
				if !uc.calendar.FitsWithinBlock(interval) {
					continue
				}
				if !uc.conflictChecker.Vacant(interval, existing) {
					continue
				}

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
					uc.logger.Error("AutoSchedule: failed to create booking: %v", err)
					return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
				}

				result = created
				return nil
			}
		}

		return ErrNoSlotsAvailable
	})

	if err != nil {
		if errors.Is(err, ErrNoSlotsAvailable) {
			uc.logger.Warn("AutoSchedule: no slots available for %q within %d days from %s",
				req.ServiceType, horizonDays, searchFrom.Format(time.RFC3339))
		}
		return nil, err
	}

	uc.logger.Info("AutoSchedule: successfully created booking id=%d, interval %s - %s",
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
