package get_available_slots

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
	"github.com/m04kA/MC-AppointmentService/pkg/types"
)

// UseCase use case для получения свободных окон на день
type UseCase struct {
	bookingRepo     BookingRepository
	catalog         ServiceCatalog
	durationRules   DurationRules
	calendar        WorkingCalendar
	conflictChecker ConflictChecker
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog ServiceCatalog,
	durationRules DurationRules,
	calendar WorkingCalendar,
	conflictChecker ConflictChecker,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		catalog:         catalog,
		durationRules:   durationRules,
		calendar:        calendar,
		conflictChecker: conflictChecker,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает свободные окна дня для указанной услуги.
//
// Окно попадает в список, только если процедура целиком умещается в рабочий
// интервал и не пересекается ни с одной существующей записью. Прошедшие окна
// не предлагаются, поэтому для прошедших дат список всегда пуст. Список -
// снимок на момент запроса: к моменту записи окно может быть уже занято,
// создание записи перепроверяет занятость под блокировкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%q, date=%s",
		req.ServiceType, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем детали заявки, определяем услугу и длительность
	details := domain.ParseDetails(req.Details)
	service := uc.catalog.Resolve(req.ServiceType)
	minutes := uc.durationRules.Minutes(req.ServiceType, details)

	// 3. Приводим запрошенную дату к календарному дню кабинета
	year, month, date := req.Date.Date()
	day := time.Date(year, month, date, 0, 0, 0, 0, uc.calendar.Location())

	response := &Response{
		Date:            day,
		ServiceCode:     string(service.Code),
		ServiceName:     strings.TrimSpace(req.ServiceType),
		DurationMinutes: minutes,
		Slots:           []Slot{},
	}

	// 4. В выходные кабинет не работает
	if uc.calendar.IsWeekend(day) {
		uc.logger.Info("GetAvailableSlots: %s is a weekend", day.Format(domain.DateFormat))
		return response, nil
	}

	// 5. Записи дня одной выборкой
	dayStart, dayEnd := uc.calendar.DayBounds(day)
	existing, err := uc.bookingRepo.Overlapping(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for %s: %v",
			day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Отбираем окна, в которые процедура умещается и никого нет.
	// Для сегодняшнего дня прошедшие окна отсекаются текущим временем
	cutoff := uc.timeProvider.Now()
	for _, slot := range uc.calendar.SlotsForDay(day) {
		if slot.Before(cutoff) {
			continue
		}

		interval := domain.NewTimeInterval(slot, minutes)
		if !uc.calendar.FitsWithinBlock(interval) {
			continue
		}
		if !uc.conflictChecker.Vacant(interval, existing) {
			continue
		}

		response.Slots = append(response.Slots, Slot{
			StartsAt: slot,
			Time:     types.NewTimeString(slot),
		})
	}

	uc.logger.Info("GetAvailableSlots: %d slots for %q on %s",
		len(response.Slots), req.ServiceType, day.Format(domain.DateFormat))

	return response, nil
}
