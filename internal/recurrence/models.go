package recurrence

// Request канонический payload createRecurringEvent удаленного API бронирований
type Request struct {
	ResourceID     int64   `json:"resourceId"`
	DailyStartTime string  `json:"dailyStartTime"` // HH:mm
	DailyEndTime   string  `json:"dailyEndTime"`   // HH:mm
	Recurrence     Pattern `json:"recurrence"`
	Description    string  `json:"description"`
	DateRangeStart string  `json:"dateRangeStart"` // yyyy-MM-dd
	DateRangeEnd   string  `json:"dateRangeEnd"`   // yyyy-MM-dd
}

// Pattern набор дней недели повторения (0 = воскресенье ... 6 = суббота)
type Pattern struct {
	Days []int `json:"days"`
}
