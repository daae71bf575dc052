package scheduling

import (
	"github.com/m04kA/MC-AppointmentService/internal/domain"
)

// Причины отказа в бронировании (отдаются клиенту как есть)
const (
	ReasonWindowFull         = "на это время уже записано максимальное число пациентов"
	ReasonDripStandBusy      = "стойка для капельниц занята в это время"
	ReasonInjectionCouchBusy = "кушетка для уколов занята в это время"
)

// Decision результат проверки допустимости бронирования
type Decision struct {
	Admissible bool
	Reason     string
}

// ConflictChecker применяет правила совместимости бронирований кабинета
type ConflictChecker struct{}

// NewConflictChecker создает проверку конфликтов
func NewConflictChecker() *ConflictChecker {
	return &ConflictChecker{}
}

// Check решает, можно ли записать услугу на интервал candidate при уже
// существующих бронированиях existing. existing может быть шире реального
// пересечения (например, все записи дня) - фактическое наложение отбирается
// здесь же.
//
// Правила:
//  1. В любом окне одновременно идет не больше двух процедур.
//  2. Инфузия с капельницами не совмещается с другой инфузией с капельницами:
//     стойка в кабинете одна.
//  3. Аналогично для уколов: кушетка одна.
//
// Правила 2-3 действуют только между инфузионными записями, обычные услуги
// ограничены только общей вместимостью окна
func (c *ConflictChecker) Check(candidate domain.TimeInterval, service domain.ServiceInfo, details domain.RequestDetails, existing []*domain.Booking) Decision {
	overlapping := overlappingBookings(candidate, existing)

	if len(overlapping) >= domain.MaxOverlappingBookings {
		return Decision{Reason: ReasonWindowFull}
	}

	if service.Infusion {
		for _, booking := range overlapping {
			if !booking.IsInfusion() {
				continue
			}
			if details.Drips > 0 && booking.Drips > 0 {
				return Decision{Reason: ReasonDripStandBusy}
			}
			if details.Injections > 0 && booking.Injections > 0 {
				return Decision{Reason: ReasonInjectionCouchBusy}
			}
		}
	}

	return Decision{Admissible: true}
}

// Vacant сообщает, что интервал полностью свободен. Автоподбор и список
// доступного времени предлагают только свободные окна: вторым в занятое окно
// можно записаться только явным выбором времени
func (c *ConflictChecker) Vacant(candidate domain.TimeInterval, existing []*domain.Booking) bool {
	return len(overlappingBookings(candidate, existing)) == 0
}

// overlappingBookings отбирает бронирования, реально пересекающиеся с
// интервалом. Касание границами пересечением не считается
func overlappingBookings(candidate domain.TimeInterval, existing []*domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(existing))
	for _, booking := range existing {
		if candidate.Overlaps(booking.Interval()) {
			result = append(result, booking)
		}
	}
	return result
}
