package domain

import "time"

// Параметры расписания по умолчанию
const (
	DefaultSlotStepMinutes = 5
	DefaultAutoHorizonDays = 14
	DefaultTimezone        = "Europe/Moscow"

	// MaxAutoHorizonDays верхняя граница горизонта автоподбора.
	// Ограниченный горизонт - единственная гарантия завершения поиска,
	// поэтому значение из запроса не может её снять
	MaxAutoHorizonDays = 365
)

// Правила длительности процедур
const (
	// UnitDurationMinutes длительность одной капельницы или одного укола
	UnitDurationMinutes = 10

	// MinInfusionDurationMinutes нижняя граница длительности инфузионной терапии
	MinInfusionDurationMinutes = 10

	// DefaultDurationMinutes длительность для неизвестных услуг
	DefaultDurationMinutes = 5

	// MinDurationMinutes абсолютный минимум длительности любой процедуры
	MinDurationMinutes = 1
)

// MaxOverlappingBookings максимум одновременных бронирований в одном окне.
// Второе бронирование на занятое время допускается только при явном выборе времени
const MaxOverlappingBookings = 2

// Business validation constants
const (
	MaxServiceTypeLength = 200
	MaxContactInfoLength = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultWeekend выходные дни кабинета по умолчанию
var DefaultWeekend = []time.Weekday{time.Saturday, time.Sunday}
