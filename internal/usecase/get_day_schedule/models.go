package get_day_schedule

import (
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/schedule"
)

// Request модель запроса расписания корта на день
type Request struct {
	Actor      domain.Actor
	ResourceID int64     // ID корта
	Date       time.Time // Календарный день (время суток игнорируется)
}

// Response классифицированная сетка дня
type Response struct {
	ResourceID int64
	Date       time.Time
	Generation int64     // поколение снимка, по которому построена сетка
	FetchedAt  time.Time // когда снимок был получен из API
	Stale      bool      // API недоступен, сетка построена по сохраненному снимку
	Slots      []schedule.Availability
	Bookings   []*domain.Booking
}
