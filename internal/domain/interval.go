package domain

import "time"

// TimeInterval represents a half-open time interval [Start, End)
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval создает интервал заданной длительности
func NewTimeInterval(start time.Time, durationMinutes int) TimeInterval {
	return TimeInterval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// Overlaps returns true if the intervals actually share time.
// Строгие неравенства: интервалы, граничащие концами, не пересекаются
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// DurationMinutes returns the interval length in minutes
func (i TimeInterval) DurationMinutes() int {
	return int(i.End.Sub(i.Start) / time.Minute)
}

// IsValid returns true if the interval has positive length
func (i TimeInterval) IsValid() bool {
	return i.End.After(i.Start)
}
