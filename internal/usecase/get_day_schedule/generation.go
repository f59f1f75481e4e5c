package get_day_schedule

import (
	"sync/atomic"
	"time"
)

// generationCounter выдает строго возрастающие номера поколений
// Номер не меньше now в наносекундах, поэтому после перезапуска процесса
// новые снимки остаются новее сохраненных
type generationCounter struct {
	last atomic.Int64
}

func (g *generationCounter) next(now time.Time) int64 {
	for {
		last := g.last.Load()
		candidate := now.UnixNano()
		if candidate <= last {
			candidate = last + 1
		}
		if g.last.CompareAndSwap(last, candidate) {
			return candidate
		}
	}
}
