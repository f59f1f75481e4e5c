package schedule

import (
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// PreferredInterval интервал, который пользователь пытался забронировать
type PreferredInterval struct {
	Start           time.Time
	DurationMinutes int
}

// End возвращает конец интервала
func (p PreferredInterval) End() time.Time {
	return p.Start.Add(time.Duration(p.DurationMinutes) * time.Minute)
}

// Alternative предложение: тот же интервал на другом корте
type Alternative struct {
	ResourceID int64
	Start      time.Time
}

// FindAlternative ищет первый корт из candidates (в порядке списка), на котором
// preferred не пересекается ни с одним активным бронированием.
// excludedResourceID никогда не возвращается. bookingsByResource содержит
// бронирования кандидатов на день preferred; корт без записи в карте считается свободным.
// Результат - только подсказка: между поиском и повторной отправкой слот может быть занят.
func FindAlternative(
	preferred PreferredInterval,
	excludedResourceID int64,
	candidates []domain.Court,
	bookingsByResource map[int64][]*domain.Booking,
) (Alternative, bool) {
	end := preferred.End()

	for _, court := range candidates {
		if court.ID == excludedResourceID {
			continue
		}
		if FindOverlapping(preferred.Start, end, bookingsByResource[court.ID]) != nil {
			continue
		}
		return Alternative{ResourceID: court.ID, Start: preferred.Start}, true
	}

	return Alternative{}, false
}
