package create_booking

import (
	"time"
)

// Request модель запроса на создание записи с явно выбранным временем
type Request struct {
	ServiceType string         // название услуги на русском или английском
	Details     map[string]any // сырые детали заявки (капельницы, уколы)
	StartsAt    time.Time      // явно выбранное время начала
	ContactInfo *string        // контакт пациента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	ServiceCode     string // канонический код услуги из каталога
	ServiceName     string // название услуги, как его указал пациент
	Drips           int
	Injections      int
	StartsAt        time.Time
	EndsAt          time.Time
	DurationMinutes int
	ContactInfo     *string
	Done            bool
	CreatedAt       time.Time
}
