package models

import (
	"time"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение списка записей
type ListBookingsRequest struct {
	FromDate *time.Time `json:"fromDate,omitempty"` // Начало периода, включительно (опционально)
	ToDate   *time.Time `json:"toDate,omitempty"`   // Конец периода, включительно (опционально)
	Done     *bool      `json:"done,omitempty"`     // Фильтр по признаку выполнения (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр.
// Даты периода трактуются как календарные дни кабинета: обе границы
// включительны, границы дней берутся в часовом поясе кабинета
func (r *ListBookingsRequest) ToDomainFilter(loc *time.Location) domain.BookingsFilter {
	filter := domain.BookingsFilter{Done: r.Done}

	if r.FromDate != nil {
		year, month, day := r.FromDate.In(loc).Date()
		from := time.Date(year, month, day, 0, 0, 0, 0, loc)
		filter.From = &from
	}

	if r.ToDate != nil {
		year, month, day := r.ToDate.In(loc).Date()
		to := time.Date(year, month, day, 0, 0, 0, 0, loc).AddDate(0, 0, 1)
		filter.To = &to
	}

	return filter
}

// Response модели

// BookingResponse ответ с данными записи
type BookingResponse struct {
	ID              int64     `json:"id"`
	ServiceCode     string    `json:"serviceCode"` // канонический код услуги
	ServiceName     string    `json:"serviceName"` // название, как его указал пациент
	Drips           int       `json:"drips"`
	Injections      int       `json:"injections"`
	Date            string    `json:"date"`      // "2025-10-15"
	StartTime       string    `json:"startTime"` // "08:30"
	EndTime         string    `json:"endTime"`   // "08:35"
	DurationMinutes int       `json:"durationMinutes"`
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	ContactInfo     *string   `json:"contactInfo,omitempty"`
	Done            bool      `json:"done"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком записей
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO.
// Дата и время отображаются в часовом поясе кабинета
func FromDomainBooking(b *domain.Booking, loc *time.Location) *BookingResponse {
	if b == nil {
		return nil
	}

	startsAt := b.StartsAt.In(loc)
	endsAt := b.EndsAt.In(loc)

	return &BookingResponse{
		ID:              b.ID,
		ServiceCode:     string(b.ServiceCode),
		ServiceName:     b.ServiceName,
		Drips:           b.Drips,
		Injections:      b.Injections,
		Date:            startsAt.Format(domain.DateFormat),
		StartTime:       startsAt.Format(domain.TimeFormat),
		EndTime:         endsAt.Format(domain.TimeFormat),
		DurationMinutes: b.DurationMinutes(),
		StartsAt:        startsAt,
		EndsAt:          endsAt,
		ContactInfo:     b.ContactInfo,
		Done:            b.Done,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, loc *time.Location) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, loc); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}
