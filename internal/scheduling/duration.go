package scheduling

import (
	"github.com/m04kA/MC-AppointmentService/internal/domain"
)

// DurationRules вычисляет длительность процедуры по типу услуги и деталям заявки
type DurationRules struct {
	catalog *domain.Catalog
}

// NewDurationRules создает правила длительности поверх каталога услуг
func NewDurationRules(catalog *domain.Catalog) *DurationRules {
	return &DurationRules{catalog: catalog}
}

// Minutes возвращает длительность процедуры в минутах.
//
// Инфузионная терапия: капельницы и уколы выполняются параллельно, поэтому
// берется максимум из двух величин по 10 минут на единицу, но не меньше
// 10 минут даже при пустых деталях.
// Остальные услуги получают фиксированную длительность из каталога,
// неизвестные - длительность по умолчанию. Результат не бывает меньше минуты
func (r *DurationRules) Minutes(serviceType string, details domain.RequestDetails) int {
	info := r.catalog.Resolve(serviceType)
	minutes := info.DurationMinutes

	if info.Infusion {
		minutes = details.Drips * domain.UnitDurationMinutes
		if injections := details.Injections * domain.UnitDurationMinutes; injections > minutes {
			minutes = injections
		}
		if minutes < domain.MinInfusionDurationMinutes {
			minutes = domain.MinInfusionDurationMinutes
		}
	}

	if minutes < domain.MinDurationMinutes {
		minutes = domain.MinDurationMinutes
	}

	return minutes
}
