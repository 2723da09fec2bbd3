package dto

type NoteRequest struct {
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}
