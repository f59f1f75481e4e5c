package domain

// Role of the acting user within the selected club
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Actor is the session of the user performing an operation.
// It is passed explicitly to every operation that needs identity.
type Actor struct {
	UserID int64
	ClubID int64
	Role   Role
	Token  string // forwarded to the booking API as a bearer token
}

// IsAuthenticated returns true if the actor carries a user identity
func (a Actor) IsAuthenticated() bool {
	return a.UserID > 0
}

// IsAdminOf returns true if the actor administers the given club
func (a Actor) IsAdminOf(clubID int64) bool {
	return a.Role == RoleAdmin && a.ClubID == clubID
}
