package auto_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auto_schedule: invalid input data")

	// ErrNoSlotsAvailable возвращается, когда в пределах горизонта поиска
	// не нашлось ни одного свободного окна
	ErrNoSlotsAvailable = errors.New("auto_schedule: no slots available within the search horizon")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("auto_schedule: internal error")
)
