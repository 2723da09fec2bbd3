package repository

import (
	"context"
	"encoding/json"

	"github.com/riadev/ria-server/model"
)

type UsersRepo struct {
	Store Store
}

func GetUsersRepo(store Store) *UsersRepo {
	return &UsersRepo{Store: store}
}

// CreateUser stores a new user record. Fails with ErrUserExists if the
// phone number is already taken.
func (r *UsersRepo) CreateUser(ctx context.Context, user *model.User) error {
	existing, err := r.Store.Get(ctx, userKey(user.Phone))
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.Store.Set(ctx, userKey(user.Phone), data)
}

// FindUser looks up a user by phone. Returns ErrUserNotFound on a miss.
func (r *UsersRepo) FindUser(ctx context.Context, phone string) (*model.User, error) {
	data, err := r.Store.Get(ctx, userKey(phone))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrUserNotFound
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
