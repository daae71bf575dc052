package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Resolve(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name     string
		label    string
		wantCode ServiceCode
	}{
		{name: "russian exact", label: "консультация", wantCode: ServiceConsultation},
		{name: "english exact", label: "consultation", wantCode: ServiceConsultation},
		{name: "case insensitive", label: "КонсульТАЦИЯ", wantCode: ServiceConsultation},
		{name: "surrounding spaces", label: "  перевязка  ", wantCode: ServiceDressing},
		{name: "russian blood draw", label: "забор крови", wantCode: ServiceBloodDraw},
		{name: "english blood draw", label: "Blood Draw", wantCode: ServiceBloodDraw},
		{name: "ecg short", label: "ЭКГ", wantCode: ServiceECG},
		{name: "vaccination english", label: "vaccination", wantCode: ServiceVaccination},
		{name: "infusion keyword russian", label: "капельница", wantCode: ServiceInfusion},
		{name: "infusion keyword plural", label: "Капельницы", wantCode: ServiceInfusion},
		{name: "infusion keyword substring", label: "капельница + уколы", wantCode: ServiceInfusion},
		{name: "infusion keyword english", label: "IV drip", wantCode: ServiceInfusion},
		{name: "catalog alias inside label", label: "повторная консультация", wantCode: ServiceConsultation},
		{name: "unknown label", label: "массаж", wantCode: ServiceOther},
		{name: "empty label", label: "", wantCode: ServiceOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Resolve(tt.label)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestCatalog_Resolve_UnknownKeepsLabelAndDefaultDuration(t *testing.T) {
	catalog := DefaultCatalog()

	got := catalog.Resolve("  Массаж спины ")

	assert.Equal(t, ServiceOther, got.Code)
	assert.Equal(t, "Массаж спины", got.Name)
	assert.Equal(t, DefaultDurationMinutes, got.DurationMinutes)
	assert.False(t, got.Infusion)
	assert.False(t, got.AutoSameDayOnly)
}

func TestCatalog_Resolve_InfusionBeforeTableLookup(t *testing.T) {
	catalog := DefaultCatalog()

	// Признак инфузии имеет приоритет над остальными совпадениями
	got := catalog.Resolve("консультация и капельница")

	assert.Equal(t, ServiceInfusion, got.Code)
	assert.True(t, got.Infusion)
	assert.True(t, got.AutoSameDayOnly)
}

func TestCatalog_Services_ReturnsCopy(t *testing.T) {
	catalog := DefaultCatalog()

	services := catalog.Services()
	assert.Len(t, services, 6)

	services[0].Name = "mutated"
	assert.NotEqual(t, "mutated", catalog.Services()[0].Name)
}
