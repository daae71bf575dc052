package auto_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
	"github.com/m04kA/MC-AppointmentService/internal/scheduling"
	"github.com/m04kA/MC-AppointmentService/pkg/ptr"
)

var testZone = time.FixedZone("MSK", 3*60*60)

// stubRepository хранит записи в памяти и имитирует выборку пересечений
type stubRepository struct {
	bookings   []*domain.Booking
	nextID     int64
	overlapErr error
	createErr  error
}

func (s *stubRepository) Overlapping(_ context.Context, from, to time.Time) ([]*domain.Booking, error) {
	if s.overlapErr != nil {
		return nil, s.overlapErr
	}

	result := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.StartsAt.Before(to) && b.EndsAt.After(from) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *stubRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}

	s.nextID++
	booking.ID = s.nextID
	booking.CreatedAt = time.Date(2025, 10, 14, 12, 0, 0, 0, testZone)
	s.bookings = append(s.bookings, booking)
	return booking, nil
}

// add добавляет в хранилище уже существующую запись
func (s *stubRepository) add(service domain.ServiceCode, start time.Time, minutes int) {
	s.nextID++
	s.bookings = append(s.bookings, &domain.Booking{
		ID:          s.nextID,
		ServiceCode: service,
		ServiceName: string(service),
		StartsAt:    start,
		EndsAt:      start.Add(time.Duration(minutes) * time.Minute),
	})
}

// stubTxManager выполняет функцию без настоящей транзакции
type stubTxManager struct {
	calls int
}

func (m *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// fixedTimeProvider возвращает заранее заданный момент времени
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testHorizonDays = 14

func newTestUseCase(t *testing.T, repo *stubRepository, now time.Time) (*UseCase, *stubTxManager) {
	t.Helper()

	calendar, err := scheduling.NewCalendar(scheduling.CalendarConfig{
		Location: testZone,
		Blocks: []scheduling.BlockRange{
			{Start: "08:30", End: "11:30"},
			{Start: "12:00", End: "14:00"},
			{Start: "15:00", End: "17:30"},
		},
		StepMinutes: 5,
		Weekend:     []time.Weekday{time.Saturday, time.Sunday},
	})
	require.NoError(t, err)

	catalog := domain.DefaultCatalog()
	txManager := &stubTxManager{}

	uc := NewUseCase(
		repo,
		catalog,
		scheduling.NewDurationRules(catalog),
		calendar,
		scheduling.NewConflictChecker(),
		txManager,
		testHorizonDays,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}

	return uc, txManager
}

// среда 15 октября 2025
func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, testZone)
}

func TestUseCase_Execute(t *testing.T) {
	// обращение до открытия кабинета - предлагается самое первое окно дня
	repo := &stubRepository{}
	uc, txManager := newTestUseCase(t, repo, at(8, 0))

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: "забор крови",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "blood_draw", resp.ServiceCode)
	assert.Equal(t, "забор крови", resp.ServiceName)
	assert.Equal(t, at(8, 30), resp.StartsAt)
	assert.Equal(t, at(8, 35), resp.EndsAt)
	assert.Equal(t, 5, resp.DurationMinutes)
	assert.False(t, resp.Done)

	// поиск и вставка прошли внутри одной транзакции
	assert.Equal(t, 1, txManager.calls)
	require.Len(t, repo.bookings, 1)
}

func TestUseCase_Execute_SkipsOccupiedWindow(t *testing.T) {
	// первое окно дня уже занято - предлагается следующее за ним
	repo := &stubRepository{}
	repo.add(domain.ServiceBloodDraw, at(8, 30), 5)

	uc, _ := newTestUseCase(t, repo, at(8, 0))

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: "забор крови",
	})

	require.NoError(t, err)
	assert.Equal(t, at(8, 35), resp.StartsAt)
	assert.Equal(t, at(8, 40), resp.EndsAt)
}

func TestUseCase_Execute_VacancyIsDurationAware(t *testing.T) {
	// занято [08:30, 08:40): длинной процедуре окна 08:30 и 08:35 не подходят
	repo := &stubRepository{}
	repo.add(domain.ServiceDressing, at(8, 30), 10)

	uc, _ := newTestUseCase(t, repo, at(8, 0))

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: "капельница",
		Details:     map[string]any{"капельницы": 3},
	})

	require.NoError(t, err)
	assert.Equal(t, "infusion", resp.ServiceCode)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, at(8, 40), resp.StartsAt)
	assert.Equal(t, at(9, 10), resp.EndsAt)
}

func TestUseCase_Execute_MidDayCutoff(t *testing.T) {
	// обращение посреди дня - прошедшие окна не предлагаются
	repo := &stubRepository{}
	uc, _ := newTestUseCase(t, repo, at(10, 47))

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: "экг",
	})

	require.NoError(t, err)
	assert.Equal(t, at(10, 50), resp.StartsAt)
}

func TestUseCase_Execute_SkipsBlockTail(t *testing.T) {
	// 30 минут не умещаются до конца утреннего интервала -
	// запись уходит в послеобеденный блок
	repo := &stubRepository{}
	uc, _ := newTestUseCase(t, repo, at(11, 10))

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: "капельница",
		Details:     map[string]any{"drips": 3},
	})

	require.NoError(t, err)
	assert.Equal(t, at(12, 0), resp.StartsAt)
	assert.Equal(t, at(12, 30), resp.EndsAt)
}

func TestUseCase_Execute_WeekendRollsToMonday(t *testing.T) {
	// суббота 18 октября 2025: выходные пропускаются, запись на понедельник
	repo := &stubRepository{}
	saturday := time.Date(2025, 10, 18, 9, 0, 0, 0, testZone)
	uc, _ := newTestUseCase(t, repo, saturday)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: "прививка",
	})

	require.NoError(t, err)
	monday := time.Date(2025, 10, 20, 8, 30, 0, 0, testZone)
	assert.Equal(t, monday, resp.StartsAt)
}

func TestUseCase_Execute_SearchFrom(t *testing.T) {
	t.Run("future search start respected", func(t *testing.T) {
		repo := &stubRepository{}
		uc, _ := newTestUseCase(t, repo, at(9, 0))

		// пациент просит записать его со следующего вторника после обеда
		tuesday := time.Date(2025, 10, 21, 13, 0, 0, 0, testZone)
		resp, err := uc.Execute(context.Background(), &Request{
			ServiceType: "консультация",
			SearchFrom:  &tuesday,
		})

		require.NoError(t, err)
		assert.Equal(t, tuesday, resp.StartsAt)
	})

	t.Run("past search start clamped to now", func(t *testing.T) {
		repo := &stubRepository{}
		uc, _ := newTestUseCase(t, repo, at(10, 0))

		yesterday := at(9, 0).AddDate(0, 0, -1)
		resp, err := uc.Execute(context.Background(), &Request{
			ServiceType: "консультация",
			SearchFrom:  &yesterday,
		})

		require.NoError(t, err)
		assert.Equal(t, at(10, 0), resp.StartsAt)
	})
}

func TestUseCase_Execute_SameDayOnly(t *testing.T) {
	t.Run("explicit flag limits search to one day", func(t *testing.T) {
		// рабочий день уже закончился - на завтра поиск не распространяется
		repo := &stubRepository{}
		uc, _ := newTestUseCase(t, repo, at(17, 26))

		_, err := uc.Execute(context.Background(), &Request{
			ServiceType: "экг",
			SameDayOnly: true,
		})

		assert.ErrorIs(t, err, ErrNoSlotsAvailable)
		assert.Empty(t, repo.bookings)
	})

	t.Run("infusion is same-day by catalog", func(t *testing.T) {
		// процедуры по постоянному направлению не бронируются на будущее
		repo := &stubRepository{}
		uc, _ := newTestUseCase(t, repo, at(17, 26))

		_, err := uc.Execute(context.Background(), &Request{
			ServiceType: "капельница",
			Details:     map[string]any{"капельницы": 1},
		})

		assert.ErrorIs(t, err, ErrNoSlotsAvailable)
	})

	t.Run("infusion books within the same day", func(t *testing.T) {
		repo := &stubRepository{}
		uc, _ := newTestUseCase(t, repo, at(16, 0))

		resp, err := uc.Execute(context.Background(), &Request{
			ServiceType: "капельница",
			Details:     map[string]any{"уколы": 2},
		})

		require.NoError(t, err)
		assert.Equal(t, at(16, 0), resp.StartsAt)
		assert.Equal(t, 20, resp.DurationMinutes)
	})
}

func TestUseCase_Execute_HorizonExhausted(t *testing.T) {
	// пятница 17 октября 2025 после закрытия: горизонт в два дня
	// целиком расходуется на выходные
	repo := &stubRepository{}
	friday := time.Date(2025, 10, 17, 17, 29, 0, 0, testZone)
	uc, _ := newTestUseCase(t, repo, friday)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceType: "перевязка",
		HorizonDays: ptr.Ptr(2),
	})

	assert.ErrorIs(t, err, ErrNoSlotsAvailable)
	assert.Empty(t, repo.bookings)
}

func TestUseCase_Execute_Deterministic(t *testing.T) {
	// одинаковое состояние хранилища дает одинаковый результат
	first := &stubRepository{}
	first.add(domain.ServiceECG, at(8, 30), 10)

	second := &stubRepository{}
	second.add(domain.ServiceECG, at(8, 30), 10)

	ucFirst, _ := newTestUseCase(t, first, at(8, 0))
	ucSecond, _ := newTestUseCase(t, second, at(8, 0))

	req := &Request{ServiceType: "прививка"}

	respFirst, err := ucFirst.Execute(context.Background(), req)
	require.NoError(t, err)

	respSecond, err := ucSecond.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, respFirst.StartsAt, respSecond.StartsAt)
	assert.Equal(t, respFirst.EndsAt, respSecond.EndsAt)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	longString := func(n int) string {
		s := make([]byte, n)
		for i := range s {
			s[i] = 'x'
		}
		return string(s)
	}

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "empty service type",
			req:  &Request{ServiceType: "   "},
		},
		{
			name: "service type too long",
			req:  &Request{ServiceType: longString(domain.MaxServiceTypeLength + 1)},
		},
		{
			name: "negative horizon",
			req:  &Request{ServiceType: "экг", HorizonDays: ptr.Ptr(-1)},
		},
		{
			name: "horizon beyond limit",
			req:  &Request{ServiceType: "экг", HorizonDays: ptr.Ptr(domain.MaxAutoHorizonDays + 1)},
		},
		{
			name: "contact info too long",
			req: &Request{
				ServiceType: "экг",
				ContactInfo: ptr.Ptr(longString(domain.MaxContactInfoLength + 1)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepository{}
			uc, txManager := newTestUseCase(t, repo, at(9, 0))

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, txManager.calls)
		})
	}
}

func TestUseCase_Execute_RepositoryErrors(t *testing.T) {
	t.Run("overlapping query fails", func(t *testing.T) {
		repo := &stubRepository{overlapErr: errors.New("connection refused")}
		uc, _ := newTestUseCase(t, repo, at(9, 0))

		_, err := uc.Execute(context.Background(), &Request{ServiceType: "экг"})

		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("insert fails", func(t *testing.T) {
		repo := &stubRepository{createErr: errors.New("connection refused")}
		uc, _ := newTestUseCase(t, repo, at(9, 0))

		_, err := uc.Execute(context.Background(), &Request{ServiceType: "экг"})

		assert.ErrorIs(t, err, ErrInternal)
	})
}
