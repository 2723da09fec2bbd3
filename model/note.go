package model

// Note is a single tagged text entry. The id is assigned at creation time
// and the timestamp never changes on edit.
type Note struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Timestamp int64    `json:"timestamp"` // milliseconds since epoch
}
