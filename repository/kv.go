package repository

import (
	"context"
	"errors"
)

// Store is the generic key-value port every repo is built on. Values are
// opaque JSON blobs. Listing is a prefix scan with no ordering guarantee;
// each call is a single independent key operation, there is no cross-key
// atomicity.
type Store interface {
	// Get returns (nil, nil) when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}

var (
	ErrUserExists   = errors.New("phone number already registered")
	ErrUserNotFound = errors.New("user not found")
	ErrNoteNotFound = errors.New("note not found")
	ErrCodeNotFound = errors.New("verification code expired or not found")
)

func userKey(phone string) string {
	return "user:" + phone
}

func noteKey(phone, noteID string) string {
	return "notes:" + phone + ":" + noteID
}

func notesPrefix(phone string) string {
	return "notes:" + phone + ":"
}

func codeKey(phone string) string {
	return "verification_code:" + phone
}
