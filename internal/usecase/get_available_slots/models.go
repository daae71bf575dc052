package get_available_slots

import (
	"time"

	"github.com/m04kA/MC-AppointmentService/pkg/types"
)

// Request модель запроса на получение свободных окон
type Request struct {
	Date        time.Time      // день, на который запрашиваются окна
	ServiceType string         // название услуги на русском или английском
	Details     map[string]any // сырые детали заявки (капельницы, уколы)
}

// Response модель ответа со списком свободных окон
type Response struct {
	Date            time.Time // день, на который запрашивались окна
	ServiceCode     string    // канонический код услуги из каталога
	ServiceName     string    // название услуги, как его указал пациент
	DurationMinutes int       // длительность процедуры, под которую подбирались окна
	Slots           []Slot    // свободные окна в хронологическом порядке
}

// Slot модель свободного окна
type Slot struct {
	StartsAt time.Time        // момент начала в часовом поясе кабинета
	Time     types.TimeString // время начала для отображения ("08:35")
}
