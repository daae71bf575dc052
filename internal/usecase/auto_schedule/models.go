package auto_schedule

import (
	"time"
)

// Request модель запроса на автоподбор времени записи
type Request struct {
	ServiceType string         // название услуги на русском или английском
	Details     map[string]any // сырые детали заявки (капельницы, уколы)
	SearchFrom  *time.Time     // начало поиска; по умолчанию текущее время
	SameDayOnly bool           // искать только на день начала поиска
	HorizonDays *int           // глубина поиска в днях; по умолчанию из конфигурации
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
