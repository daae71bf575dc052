package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrOutsideWorkingHours возвращается, когда интервал записи не попадает
	// целиком ни в один рабочий интервал кабинета
	ErrOutsideWorkingHours = errors.New("create_booking: interval is outside working hours")

	// ErrSlotConflict возвращается, когда запись не проходит проверку
	// совместимости с уже существующими записями
	ErrSlotConflict = errors.New("create_booking: slot conflicts with existing bookings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError несет причину отказа проверки совместимости.
// Разворачивается в ErrSlotConflict; причина отдается клиенту как есть
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return ErrSlotConflict.Error() + ": " + e.Reason
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}
