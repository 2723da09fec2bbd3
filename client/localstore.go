package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/riadev/ria-server/model"
)

const (
	notesFile    = "notes.json"
	goalsFile    = "goals.json"
	reminderFile = "reminder.json"
	userFile     = "user.json"
)

// LocalStore is the persistent local cache: one JSON file per record
// kind, independently loadable and saveable. All mutations go through a
// single mutex so concurrent gateway calls cannot interleave their
// read-modify-write cycles.
type LocalStore struct {
	mu  sync.Mutex
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// Notes returns the cached note list, empty when nothing is cached yet.
func (s *LocalStore) Notes() ([]model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readNotes()
}

// SaveNotes replaces the cached list wholesale.
func (s *LocalStore) SaveNotes(notes []model.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(notesFile, notes)
}

// PrependNote puts a note at the head of the cached list.
func (s *LocalStore) PrependNote(note model.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.readNotes()
	if err != nil {
		return err
	}
	notes = append([]model.Note{note}, notes...)
	return s.write(notesFile, notes)
}

// PatchNote rewrites content and tags of a cached note, preserving its id
// and timestamp. Reports whether the id was present.
func (s *LocalStore) PatchNote(noteID, content string, tags []string) (model.Note, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.readNotes()
	if err != nil {
		return model.Note{}, false, err
	}
	for i := range notes {
		if notes[i].ID == noteID {
			notes[i].Content = content
			notes[i].Tags = tags
			if err := s.write(notesFile, notes); err != nil {
				return model.Note{}, false, err
			}
			return notes[i], true, nil
		}
	}
	return model.Note{}, false, nil
}

// RemoveNote drops a note from the cache if present.
func (s *LocalStore) RemoveNote(noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.readNotes()
	if err != nil {
		return err
	}
	filtered := notes[:0]
	for _, note := range notes {
		if note.ID != noteID {
			filtered = append(filtered, note)
		}
	}
	return s.write(notesFile, filtered)
}

func (s *LocalStore) Goals() (model.Goals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var goals model.Goals
	err := s.read(goalsFile, &goals)
	return goals, err
}

func (s *LocalStore) SaveGoals(goals model.Goals) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(goalsFile, goals)
}

func (s *LocalStore) Reminder() (model.ReminderConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cfg model.ReminderConfig
	err := s.read(reminderFile, &cfg)
	return cfg, err
}

func (s *LocalStore) SaveReminder(cfg model.ReminderConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(reminderFile, cfg)
}

// User returns the persisted login, nil when logged out.
func (s *LocalStore) User() (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var user model.User
	if err := s.read(userFile, &user); err != nil {
		return nil, err
	}
	if user.Phone == "" {
		return nil, nil
	}
	return &user, nil
}

func (s *LocalStore) SaveUser(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(userFile, user)
}

func (s *LocalStore) ClearUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(filepath.Join(s.dir, userFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStore) readNotes() ([]model.Note, error) {
	var notes []model.Note
	if err := s.read(notesFile, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

func (s *LocalStore) read(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (s *LocalStore) write(name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}
