package domain

import "time"

// Booking represents a treatment room appointment
type Booking struct {
	ID          int64
	ServiceCode ServiceCode // канонический код услуги из каталога
	ServiceName string      // название услуги, как его указал пациент
	Drips       int         // количество капельниц (только для инфузионной терапии)
	Injections  int         // количество уколов (только для инфузионной терапии)
	StartsAt    time.Time
	EndsAt      time.Time
	ContactInfo *string
	Done        bool
	CreatedAt   time.Time
}

// Interval returns the occupied time interval
func (b *Booking) Interval() TimeInterval {
	return TimeInterval{Start: b.StartsAt, End: b.EndsAt}
}

// IsInfusion returns true for infusion therapy bookings.
// Такие бронирования конкурируют за стойку капельниц и кушетку для уколов
func (b *Booking) IsInfusion() bool {
	return b.ServiceCode == ServiceInfusion
}

// DurationMinutes returns the booking duration in minutes
func (b *Booking) DurationMinutes() int {
	return int(b.EndsAt.Sub(b.StartsAt) / time.Minute)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	From *time.Time // начало периода (опционально)
	To   *time.Time // конец периода (опционально)
	Done *bool      // фильтр по отметке выполнения (опционально)
}
