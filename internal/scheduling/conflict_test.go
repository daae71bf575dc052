package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
)

// testBooking бронирование на эталонной среде
func testBooking(code domain.ServiceCode, drips, injections, hour, minute, durationMinutes int) *domain.Booking {
	start := time.Date(2025, 10, 15, hour, minute, 0, 0, testZone)
	return &domain.Booking{
		ID:          int64(hour*100 + minute),
		ServiceCode: code,
		Drips:       drips,
		Injections:  injections,
		StartsAt:    start,
		EndsAt:      start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

func testInterval(hour, minute, durationMinutes int) domain.TimeInterval {
	start := time.Date(2025, 10, 15, hour, minute, 0, 0, testZone)
	return domain.NewTimeInterval(start, durationMinutes)
}

func TestConflictChecker_Check(t *testing.T) {
	checker := NewConflictChecker()
	catalog := domain.DefaultCatalog()

	infusion := catalog.Resolve("капельница")
	consultation := catalog.Resolve("консультация")

	tests := []struct {
		name       string
		candidate  domain.TimeInterval
		service    domain.ServiceInfo
		details    domain.RequestDetails
		existing   []*domain.Booking
		admissible bool
		reason     string
	}{
		{
			name:       "empty window",
			candidate:  testInterval(9, 0, 20),
			service:    consultation,
			admissible: true,
		},
		{
			name:      "second patient fits alongside the first",
			candidate: testInterval(9, 0, 20),
			service:   consultation,
			existing: []*domain.Booking{
				testBooking(domain.ServiceECG, 0, 0, 9, 0, 10),
			},
			admissible: true,
		},
		{
			name:      "window already holds two patients",
			candidate: testInterval(9, 0, 20),
			service:   consultation,
			existing: []*domain.Booking{
				testBooking(domain.ServiceECG, 0, 0, 9, 0, 10),
				testBooking(domain.ServiceDressing, 0, 0, 9, 5, 15),
			},
			admissible: false,
			reason:     ReasonWindowFull,
		},
		{
			name:      "touching intervals are not a conflict",
			candidate: testInterval(9, 0, 20),
			service:   consultation,
			existing: []*domain.Booking{
				testBooking(domain.ServiceECG, 0, 0, 8, 50, 10),
				testBooking(domain.ServiceECG, 0, 0, 9, 20, 10),
			},
			admissible: true,
		},
		{
			name:      "bookings elsewhere in the day are ignored",
			candidate: testInterval(9, 0, 20),
			service:   consultation,
			existing: []*domain.Booking{
				testBooking(domain.ServiceECG, 0, 0, 8, 30, 10),
				testBooking(domain.ServiceDressing, 0, 0, 10, 0, 15),
				testBooking(domain.ServiceInfusion, 2, 0, 12, 0, 20),
			},
			admissible: true,
		},
		{
			name:      "drip stand is already taken",
			candidate: testInterval(9, 0, 30),
			service:   infusion,
			details:   domain.RequestDetails{Drips: 3},
			existing: []*domain.Booking{
				testBooking(domain.ServiceInfusion, 1, 0, 9, 10, 10),
			},
			admissible: false,
			reason:     ReasonDripStandBusy,
		},
		{
			name:      "drips alongside injections-only infusion",
			candidate: testInterval(9, 0, 30),
			service:   infusion,
			details:   domain.RequestDetails{Drips: 3},
			existing: []*domain.Booking{
				testBooking(domain.ServiceInfusion, 0, 2, 9, 10, 20),
			},
			admissible: true,
		},
		{
			name:      "injection couch is already taken",
			candidate: testInterval(9, 0, 10),
			service:   infusion,
			details:   domain.RequestDetails{Injections: 1},
			existing: []*domain.Booking{
				testBooking(domain.ServiceInfusion, 0, 3, 9, 0, 30),
			},
			admissible: false,
			reason:     ReasonInjectionCouchBusy,
		},
		{
			name:      "infusion alongside a regular service",
			candidate: testInterval(9, 0, 30),
			service:   infusion,
			details:   domain.RequestDetails{Drips: 3, Injections: 1},
			existing: []*domain.Booking{
				testBooking(domain.ServiceConsultation, 0, 0, 9, 0, 20),
			},
			admissible: true,
		},
		{
			name:      "capacity check runs before category rules",
			candidate: testInterval(9, 0, 30),
			service:   infusion,
			details:   domain.RequestDetails{Drips: 1},
			existing: []*domain.Booking{
				testBooking(domain.ServiceInfusion, 1, 0, 9, 0, 10),
				testBooking(domain.ServiceInfusion, 1, 0, 9, 15, 10),
			},
			admissible: false,
			reason:     ReasonWindowFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := checker.Check(tt.candidate, tt.service, tt.details, tt.existing)

			assert.Equal(t, tt.admissible, decision.Admissible)
			assert.Equal(t, tt.reason, decision.Reason)
		})
	}
}

func TestConflictChecker_Vacant(t *testing.T) {
	checker := NewConflictChecker()

	occupied := []*domain.Booking{
		testBooking(domain.ServiceECG, 0, 0, 9, 0, 10),
	}

	assert.True(t, checker.Vacant(testInterval(9, 0, 10), nil))
	assert.True(t, checker.Vacant(testInterval(9, 10, 10), occupied), "касание границами не занимает окно")
	assert.False(t, checker.Vacant(testInterval(9, 5, 10), occupied))
	assert.False(t, checker.Vacant(testInterval(8, 55, 10), occupied))
}
