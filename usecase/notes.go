package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/riadev/ria-server/model"
	"github.com/riadev/ria-server/repository"
)

var (
	ErrContentRequired = errors.New("Content is required")
	ErrTooManyTags     = errors.New("maximum 10 tags allowed")
)

type NotesService struct {
	Notes *repository.NotesRepo
	Users *repository.UsersRepo

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *NotesService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ListNotes returns the user's notes sorted newest first. The store keeps
// them unordered, so the sort happens here on every call.
func (s *NotesService) ListNotes(ctx context.Context, phone string) ([]model.Note, error) {
	if _, err := s.Users.FindUser(ctx, phone); err != nil {
		return nil, err
	}

	notes, err := s.Notes.ListByUser(ctx, phone)
	if err != nil {
		return nil, err
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Timestamp > notes[j].Timestamp
	})
	return notes, nil
}

// CreateNote assigns a time-based id and a server-side timestamp. Tags
// default to an empty set.
func (s *NotesService) CreateNote(ctx context.Context, phone, content string, tags []string) (*model.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	normalized, err := normalizeTags(tags)
	if err != nil {
		return nil, err
	}

	now := s.now()
	note := &model.Note{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Content:   content,
		Tags:      normalized,
		Timestamp: now.UnixMilli(),
	}

	if err := s.Notes.CreateNote(ctx, phone, note); err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNote replaces content and tags. The original id and timestamp
// are preserved.
func (s *NotesService) UpdateNote(ctx context.Context, phone, noteID, content string, tags []string) (*model.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	normalized, err := normalizeTags(tags)
	if err != nil {
		return nil, err
	}

	existing, err := s.Notes.GetNote(ctx, phone, noteID)
	if err != nil {
		return nil, err
	}

	existing.Content = content
	existing.Tags = normalized

	if err := s.Notes.UpdateNote(ctx, phone, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *NotesService) DeleteNote(ctx context.Context, phone, noteID string) error {
	return s.Notes.DeleteNote(ctx, phone, noteID)
}

// normalizeTags trims whitespace and drops empty entries, preserving
// insertion order for display.
func normalizeTags(tags []string) ([]string, error) {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	if len(normalized) > 10 {
		return nil, ErrTooManyTags
	}
	return normalized, nil
}
