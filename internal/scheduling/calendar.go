package scheduling

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
	"github.com/m04kA/MC-AppointmentService/pkg/types"
)

var (
	// ErrNoLocation возвращается, когда не задан часовой пояс календаря
	ErrNoLocation = errors.New("scheduling: calendar location is required")

	// ErrNoBlocks возвращается, когда не задан ни один рабочий интервал
	ErrNoBlocks = errors.New("scheduling: at least one working block is required")

	// ErrInvalidBlock возвращается при некорректных границах рабочего интервала
	ErrInvalidBlock = errors.New("scheduling: invalid working block")

	// ErrInvalidStep возвращается при некорректном шаге сетки слотов
	ErrInvalidStep = errors.New("scheduling: slot step must be positive")
)

// BlockRange границы рабочего интервала в формате "HH:MM"
type BlockRange struct {
	Start types.TimeString
	End   types.TimeString
}

// CalendarConfig параметры рабочего календаря кабинета
type CalendarConfig struct {
	Location    *time.Location
	Blocks      []BlockRange
	StepMinutes int
	Weekend     []time.Weekday
}

// block рабочий интервал в минутах от начала суток
type block struct {
	start int
	end   int
}

// Calendar рабочий календарь процедурного кабинета: фиксированные дневные
// интервалы приема, шаг сетки слотов и выходные дни.
// Все вычисления ведутся в часовом поясе кабинета
type Calendar struct {
	location *time.Location
	blocks   []block
	step     int
	weekend  map[time.Weekday]bool
}

// NewCalendar создает календарь из конфигурации с валидацией интервалов
func NewCalendar(cfg CalendarConfig) (*Calendar, error) {
	if cfg.Location == nil {
		return nil, ErrNoLocation
	}
	if cfg.StepMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, cfg.StepMinutes)
	}
	if len(cfg.Blocks) == 0 {
		return nil, ErrNoBlocks
	}

	blocks := make([]block, 0, len(cfg.Blocks))
	for _, b := range cfg.Blocks {
		start, err := b.Start.MinutesOfDay()
		if err != nil {
			return nil, fmt.Errorf("%w: start %q: %v", ErrInvalidBlock, b.Start, err)
		}
		end, err := b.End.MinutesOfDay()
		if err != nil {
			return nil, fmt.Errorf("%w: end %q: %v", ErrInvalidBlock, b.End, err)
		}
		if end <= start {
			return nil, fmt.Errorf("%w: %s-%s", ErrInvalidBlock, b.Start, b.End)
		}
		blocks = append(blocks, block{start: start, end: end})
	}

	sort.Slice(blocks, func(i, j int) bool { return blocks[i].start < blocks[j].start })

	for i := 1; i < len(blocks); i++ {
		if blocks[i].start < blocks[i-1].end {
			return nil, fmt.Errorf("%w: blocks overlap", ErrInvalidBlock)
		}
	}

	weekend := make(map[time.Weekday]bool, len(cfg.Weekend))
	for _, day := range cfg.Weekend {
		weekend[day] = true
	}

	return &Calendar{
		location: cfg.Location,
		blocks:   blocks,
		step:     cfg.StepMinutes,
		weekend:  weekend,
	}, nil
}

// Location возвращает часовой пояс кабинета
func (c *Calendar) Location() *time.Location {
	return c.location
}

// StepMinutes возвращает шаг сетки слотов
func (c *Calendar) StepMinutes() int {
	return c.step
}

// IsWeekend сообщает, выходной ли день
func (c *Calendar) IsWeekend(day time.Time) bool {
	return c.weekend[day.In(c.location).Weekday()]
}

// SlotsForDay возвращает кандидатов времени начала на указанный день:
// каждые step минут внутри каждого рабочего интервала, последний кандидат
// за один шаг до конца интервала. Для выходных дней список пуст
func (c *Calendar) SlotsForDay(day time.Time) []time.Time {
	local := day.In(c.location)
	if c.weekend[local.Weekday()] {
		return nil
	}

	year, month, date := local.Date()

	slots := make([]time.Time, 0)
	for _, b := range c.blocks {
		for minutes := b.start; minutes < b.end; minutes += c.step {
			slots = append(slots, time.Date(year, month, date, minutes/60, minutes%60, 0, 0, c.location))
		}
	}

	return slots
}

// FitsWithinBlock проверяет, что интервал целиком лежит внутри одного
// рабочего интервала своего календарного дня. Конец интервала может
// совпадать с концом рабочего интервала
func (c *Calendar) FitsWithinBlock(interval domain.TimeInterval) bool {
	if !interval.IsValid() {
		return false
	}

	start := interval.Start.In(c.location)
	end := interval.End.In(c.location)

	if c.weekend[start.Weekday()] {
		return false
	}

	year, month, date := start.Date()
	for _, b := range c.blocks {
		blockStart := time.Date(year, month, date, b.start/60, b.start%60, 0, 0, c.location)
		blockEnd := time.Date(year, month, date, b.end/60, b.end%60, 0, 0, c.location)

		if !start.Before(blockStart) && !end.After(blockEnd) {
			return true
		}
	}

	return false
}

// DayBounds возвращает полуоткрытые границы календарного дня [00:00, +24ч)
// в часовом поясе кабинета. Используется для выборки бронирований дня
func (c *Calendar) DayBounds(day time.Time) (time.Time, time.Time) {
	local := day.In(c.location)
	year, month, date := local.Date()
	start := time.Date(year, month, date, 0, 0, 0, 0, c.location)
	return start, start.AddDate(0, 0, 1)
}

// Blocks возвращает границы рабочих интервалов (для отдачи расписания)
func (c *Calendar) Blocks() []BlockRange {
	result := make([]BlockRange, 0, len(c.blocks))
	for _, b := range c.blocks {
		result = append(result, BlockRange{
			Start: types.TimeString(fmt.Sprintf("%02d:%02d", b.start/60, b.start%60)),
			End:   types.TimeString(fmt.Sprintf("%02d:%02d", b.end/60, b.end%60)),
		})
	}
	return result
}

// Weekend возвращает выходные дни календаря
func (c *Calendar) Weekend() []time.Weekday {
	result := make([]time.Weekday, 0, len(c.weekend))
	for day := time.Sunday; day <= time.Saturday; day++ {
		if c.weekend[day] {
			result = append(result, day)
		}
	}
	return result
}
