package domain

// Court is a bookable resource of a club
type Court struct {
	ID     int64
	ClubID int64
	Name   string
}
