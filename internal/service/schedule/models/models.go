package models

// BlockResponse границы рабочего интервала
type BlockResponse struct {
	Start string `json:"start"` // "08:30"
	End   string `json:"end"`   // "11:30"
}

// ServiceResponse описание услуги каталога
type ServiceResponse struct {
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Aliases         []string `json:"aliases,omitempty"`
	DurationMinutes int      `json:"durationMinutes,omitempty"` // 0 - длительность выводится из деталей заявки
	Infusion        bool     `json:"infusion,omitempty"`
	SameDayOnly     bool     `json:"sameDayOnly,omitempty"`
}

// ScheduleConfigResponse ответ с расписанием кабинета и каталогом услуг
type ScheduleConfigResponse struct {
	Timezone        string            `json:"timezone"` // "Europe/Moscow"
	SlotStepMinutes int               `json:"slotStepMinutes"`
	AutoHorizonDays int               `json:"autoHorizonDays"`
	Weekend         []string          `json:"weekend"` // ["saturday", "sunday"]
	Blocks          []BlockResponse   `json:"blocks"`
	Services        []ServiceResponse `json:"services"`
}
