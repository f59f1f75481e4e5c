package list_courts

import "github.com/m04kA/SMC-CourtScheduler/internal/domain"

// CourtResponse HTTP response model
type CourtResponse struct {
	ID     int64  `json:"id"`
	ClubID int64  `json:"clubId"`
	Name   string `json:"name"`
}

// CourtListResponse список кортов клуба
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// FromDomainCourts конвертирует корты в DTO, сохраняя порядок
func FromDomainCourts(courts []domain.Court) *CourtListResponse {
	resp := &CourtListResponse{Courts: make([]CourtResponse, len(courts))}
	for i, c := range courts {
		resp.Courts[i] = CourtResponse{ID: c.ID, ClubID: c.ClubID, Name: c.Name}
	}
	return resp
}
