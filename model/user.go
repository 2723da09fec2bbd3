package model

// User is keyed by phone number, which also namespaces every note the
// user owns.
type User struct {
	Phone     string `json:"phone"`
	Nickname  string `json:"nickname"`
	CreatedAt int64  `json:"createdAt"` // milliseconds since epoch
	UpdatedAt int64  `json:"updatedAt"`
}
