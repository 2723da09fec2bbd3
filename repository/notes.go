package repository

import (
	"context"
	"encoding/json"

	"github.com/riadev/ria-server/model"
)

type NotesRepo struct {
	Store Store
}

func GetNotesRepo(store Store) *NotesRepo {
	return &NotesRepo{Store: store}
}

// CreateNote stores a note under the owner's namespace.
func (r *NotesRepo) CreateNote(ctx context.Context, phone string, note *model.Note) error {
	data, err := json.Marshal(note)
	if err != nil {
		return err
	}
	return r.Store.Set(ctx, noteKey(phone, note.ID), data)
}

// GetNote retrieves a specific note. Returns ErrNoteNotFound on a miss.
func (r *NotesRepo) GetNote(ctx context.Context, phone, noteID string) (*model.Note, error) {
	data, err := r.Store.Get(ctx, noteKey(phone, noteID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrNoteNotFound
	}

	var note model.Note
	if err := json.Unmarshal(data, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote replaces an existing note record. The caller is responsible
// for preserving id and timestamp.
func (r *NotesRepo) UpdateNote(ctx context.Context, phone string, note *model.Note) error {
	existing, err := r.Store.Get(ctx, noteKey(phone, note.ID))
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNoteNotFound
	}

	data, err := json.Marshal(note)
	if err != nil {
		return err
	}
	return r.Store.Set(ctx, noteKey(phone, note.ID), data)
}

// DeleteNote removes a note. Returns ErrNoteNotFound if it does not exist,
// so a second delete of the same id fails cleanly.
func (r *NotesRepo) DeleteNote(ctx context.Context, phone, noteID string) error {
	existing, err := r.Store.Get(ctx, noteKey(phone, noteID))
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNoteNotFound
	}
	return r.Store.Delete(ctx, noteKey(phone, noteID))
}

// ListByUser returns every note under the user's prefix. The store makes
// no ordering guarantee; callers sort.
func (r *NotesRepo) ListByUser(ctx context.Context, phone string) ([]model.Note, error) {
	values, err := r.Store.GetByPrefix(ctx, notesPrefix(phone))
	if err != nil {
		return nil, err
	}

	notes := make([]model.Note, 0, len(values))
	for _, data := range values {
		var note model.Note
		if err := json.Unmarshal(data, &note); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}
