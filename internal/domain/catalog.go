package domain

import "strings"

// ServiceCode канонический идентификатор услуги процедурного кабинета
type ServiceCode string

const (
	ServiceInfusion     ServiceCode = "infusion"
	ServiceBloodDraw    ServiceCode = "blood_draw"
	ServiceECG          ServiceCode = "ecg"
	ServiceVaccination  ServiceCode = "vaccination"
	ServiceDressing     ServiceCode = "dressing"
	ServiceConsultation ServiceCode = "consultation"
	ServiceOther        ServiceCode = "other"
)

// ServiceInfo описание услуги из каталога
type ServiceInfo struct {
	Code    ServiceCode
	Name    string   // отображаемое название
	Aliases []string // названия на русском и английском (в нижнем регистре)

	// DurationMinutes фиксированная длительность услуги.
	// Для инфузионной терапии игнорируется: длительность считается
	// по количеству капельниц и уколов в деталях заявки
	DurationMinutes int

	// Infusion признак инфузионной терапии
	Infusion bool

	// AutoSameDayOnly автоподбор слота только на текущий день.
	// Используется для процедур по постоянному направлению
	AutoSameDayOnly bool
}

// Catalog каталог услуг кабинета с поиском по двуязычным названиям
type Catalog struct {
	entries []ServiceInfo
}

// infusionKeywords подстроки, по которым распознаётся инфузионная терапия.
// Срабатывают и на полное совпадение, и на вхождение ("капельница + уколы")
var infusionKeywords = []string{"капельниц", "drip"}

// DefaultCatalog возвращает каталог услуг процедурного кабинета
func DefaultCatalog() *Catalog {
	return &Catalog{
		entries: []ServiceInfo{
			{
				Code:            ServiceInfusion,
				Name:            "капельница",
				Aliases:         []string{"капельница", "drip"},
				Infusion:        true,
				AutoSameDayOnly: true,
			},
			{
				Code:            ServiceBloodDraw,
				Name:            "забор крови",
				Aliases:         []string{"забор крови", "blood draw"},
				DurationMinutes: 5,
			},
			{
				Code:            ServiceECG,
				Name:            "экг",
				Aliases:         []string{"экг", "ecg"},
				DurationMinutes: 10,
			},
			{
				Code:            ServiceVaccination,
				Name:            "прививка",
				Aliases:         []string{"прививка", "vaccination"},
				DurationMinutes: 10,
			},
			{
				Code:            ServiceDressing,
				Name:            "перевязка",
				Aliases:         []string{"перевязка", "dressing"},
				DurationMinutes: 15,
			},
			{
				Code:            ServiceConsultation,
				Name:            "консультация",
				Aliases:         []string{"консультация", "consultation"},
				DurationMinutes: 20,
			},
		},
	}
}

// Resolve находит услугу по названию на русском или английском.
// Порядок поиска: признак инфузионной терапии, точное совпадение названия,
// вхождение названия каталога в строку. Регистр не учитывается.
// Неизвестные названия получают длительность по умолчанию и не отклоняются
func (c *Catalog) Resolve(label string) ServiceInfo {
	normalized := strings.ToLower(strings.TrimSpace(label))

	for _, keyword := range infusionKeywords {
		if strings.Contains(normalized, keyword) {
			return c.mustByCode(ServiceInfusion)
		}
	}

	for _, entry := range c.entries {
		for _, alias := range entry.Aliases {
			if normalized == alias {
				return entry
			}
		}
	}

	for _, entry := range c.entries {
		for _, alias := range entry.Aliases {
			if strings.Contains(normalized, alias) {
				return entry
			}
		}
	}

	return ServiceInfo{
		Code:            ServiceOther,
		Name:            strings.TrimSpace(label),
		DurationMinutes: DefaultDurationMinutes,
	}
}

// Services возвращает все услуги каталога (для отдачи расписания клиентам)
func (c *Catalog) Services() []ServiceInfo {
	result := make([]ServiceInfo, len(c.entries))
	copy(result, c.entries)
	return result
}

func (c *Catalog) mustByCode(code ServiceCode) ServiceInfo {
	for _, entry := range c.entries {
		if entry.Code == code {
			return entry
		}
	}
	// Каталог статический, отсутствие кода - ошибка программиста
	panic("domain: unknown service code " + string(code))
}
