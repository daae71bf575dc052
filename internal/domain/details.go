package domain

import (
	"math"
	"strconv"
	"strings"
)

// RequestDetails типизированные детали заявки на бронирование.
// Для инфузионной терапии содержат количество капельниц и уколов,
// для остальных услуг остаются нулевыми
type RequestDetails struct {
	Drips      int
	Injections int
}

// Названия полей деталей, принимаемые на русском и английском
var (
	dripFieldNames      = []string{"капельницы", "drips"}
	injectionFieldNames = []string{"уколы", "injections"}
)

// ParseDetails нормализует сырые детали заявки.
// Разбор нестрогий: нечисловые и отрицательные значения трактуются как ноль,
// неизвестные поля игнорируются. Некорректные детали никогда не приводят
// к отказу - заявка просто получает значения по умолчанию
func ParseDetails(raw map[string]any) RequestDetails {
	details := RequestDetails{}

	for name, value := range raw {
		normalized := strings.ToLower(strings.TrimSpace(name))
		switch {
		case containsName(dripFieldNames, normalized):
			details.Drips = coerceCount(value)
		case containsName(injectionFieldNames, normalized):
			details.Injections = coerceCount(value)
		}
	}

	return details
}

// coerceCount приводит скалярное значение к неотрицательному количеству
func coerceCount(value any) int {
	switch v := value.(type) {
	case int:
		return clampCount(v)
	case int32:
		return clampCount(int(v))
	case int64:
		return clampCount(int(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return clampCount(int(v))
	case float32:
		return coerceCount(float64(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return clampCount(n)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
