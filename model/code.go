package model

// VerificationCode holds the bcrypt hash of a 6-digit login code and the
// time it was issued. At most one live code exists per phone; issuing a
// new one overwrites the old.
type VerificationCode struct {
	CodeHash string `json:"code_hash"`
	IssuedAt int64  `json:"issued_at"` // milliseconds since epoch
}
