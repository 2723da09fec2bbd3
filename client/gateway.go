package client

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/riadev/ria-server/model"
)

// ErrNoteNotFound is returned when a fallback mutation cannot find the
// note in the local cache either.
var ErrNoteNotFound = errors.New("Note not found")

// Gateway mediates between the remote note service and the local cache.
// Policy: try the remote, mirror successes locally, and on transport
// failure fall back entirely to local storage. Well-formed error
// responses are surfaced; transport failures are not, so the user can
// always write a note. The Degraded flag on results lets callers choose
// to mention degraded mode instead of hiding it.
type Gateway struct {
	api   *API
	local *LocalStore

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func NewGateway(api *API, local *LocalStore) *Gateway {
	return &Gateway{api: api, local: local, now: time.Now}
}

type ListResult struct {
	Notes    []model.Note
	Degraded bool
}

type NoteResult struct {
	Note     model.Note
	Degraded bool
}

// ListNotes fetches the user's notes newest-first. A user-not-found from
// the server means a legacy local-only account; that and any transport
// failure serve the local cache instead.
func (g *Gateway) ListNotes(ctx context.Context, phone string) (ListResult, error) {
	notes, err := g.api.ListNotes(ctx, phone)
	if err == nil {
		sort.Slice(notes, func(i, j int) bool {
			return notes[i].Timestamp > notes[j].Timestamp
		})
		if err := g.local.SaveNotes(notes); err != nil {
			return ListResult{}, err
		}
		return ListResult{Notes: notes}, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != http.StatusNotFound {
		return ListResult{}, err
	}

	local, lerr := g.local.Notes()
	if lerr != nil {
		return ListResult{}, lerr
	}
	return ListResult{Notes: local, Degraded: true}, nil
}

// CreateNote writes through to the server and mirrors the result. When
// the server is unreachable the note is created locally with a
// time-based id and the call still succeeds.
func (g *Gateway) CreateNote(ctx context.Context, phone, content string, tags []string) (NoteResult, error) {
	note, err := g.api.CreateNote(ctx, phone, content, tags)
	if err == nil {
		if err := g.local.PrependNote(*note); err != nil {
			return NoteResult{}, err
		}
		return NoteResult{Note: *note}, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return NoteResult{}, err
	}

	now := g.now()
	fallback := model.Note{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Content:   content,
		Tags:      tags,
		Timestamp: now.UnixMilli(),
	}
	if err := g.local.PrependNote(fallback); err != nil {
		return NoteResult{}, err
	}
	return NoteResult{Note: fallback, Degraded: true}, nil
}

// UpdateNote replaces content and tags, keeping id and timestamp.
func (g *Gateway) UpdateNote(ctx context.Context, phone, noteID, content string, tags []string) (NoteResult, error) {
	note, err := g.api.UpdateNote(ctx, phone, noteID, content, tags)
	if err == nil {
		if _, _, err := g.local.PatchNote(noteID, content, tags); err != nil {
			return NoteResult{}, err
		}
		return NoteResult{Note: *note}, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return NoteResult{}, err
	}

	patched, found, perr := g.local.PatchNote(noteID, content, tags)
	if perr != nil {
		return NoteResult{}, perr
	}
	if !found {
		return NoteResult{}, ErrNoteNotFound
	}
	return NoteResult{Note: patched, Degraded: true}, nil
}

// DeleteNote removes the note remotely and from the mirror. Reports
// whether the call was served from local storage only.
func (g *Gateway) DeleteNote(ctx context.Context, phone, noteID string) (bool, error) {
	err := g.api.DeleteNote(ctx, phone, noteID)
	if err == nil {
		return false, g.local.RemoveNote(noteID)
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return false, err
	}

	return true, g.local.RemoveNote(noteID)
}

// TagReport is the outcome of a bulk tag operation. There is no rollback:
// the succeeded subset stays applied and Failed identifies the notes to
// retry.
type TagReport struct {
	Succeeded []string
	Failed    []string
}

// RenameTag rewrites every note carrying oldTag. Per-note updates run
// concurrently with no limit; personal collections are small enough.
func (g *Gateway) RenameTag(ctx context.Context, phone, oldTag, newTag string) (TagReport, error) {
	return g.bulkRetag(ctx, phone, oldTag, func(tags []string) []string {
		out := make([]string, 0, len(tags))
		for _, tag := range tags {
			if tag == oldTag {
				tag = newTag
			}
			if !contains(out, tag) {
				out = append(out, tag)
			}
		}
		return out
	})
}

// RemoveTag strips the tag from every note carrying it.
func (g *Gateway) RemoveTag(ctx context.Context, phone, tag string) (TagReport, error) {
	return g.bulkRetag(ctx, phone, tag, func(tags []string) []string {
		out := make([]string, 0, len(tags))
		for _, t := range tags {
			if t != tag {
				out = append(out, t)
			}
		}
		return out
	})
}

func (g *Gateway) bulkRetag(ctx context.Context, phone, tag string, rewrite func([]string) []string) (TagReport, error) {
	list, err := g.ListNotes(ctx, phone)
	if err != nil {
		return TagReport{}, err
	}

	var targets []model.Note
	for _, note := range list.Notes {
		if contains(note.Tags, tag) {
			targets = append(targets, note)
		}
	}

	var (
		mu     sync.Mutex
		report TagReport
		wg     sync.WaitGroup
	)
	for _, note := range targets {
		wg.Add(1)
		go func(note model.Note) {
			defer wg.Done()
			_, err := g.UpdateNote(ctx, phone, note.ID, note.Content, rewrite(note.Tags))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed = append(report.Failed, note.ID)
			} else {
				report.Succeeded = append(report.Succeeded, note.ID)
			}
		}(note)
	}
	wg.Wait()

	return report, nil
}

// Goals, reminder settings and the current login live only in the local
// store; the server never sees them.

func (g *Gateway) Goals() (model.Goals, error)             { return g.local.Goals() }
func (g *Gateway) SaveGoals(goals model.Goals) error       { return g.local.SaveGoals(goals) }
func (g *Gateway) Reminder() (model.ReminderConfig, error) { return g.local.Reminder() }
func (g *Gateway) SaveReminder(cfg model.ReminderConfig) error {
	return g.local.SaveReminder(cfg)
}
func (g *Gateway) CurrentUser() (*model.User, error) { return g.local.User() }
func (g *Gateway) SaveUser(user model.User) error    { return g.local.SaveUser(user) }
func (g *Gateway) Logout() error                     { return g.local.ClearUser() }

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
