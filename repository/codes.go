package repository

import (
	"context"
	"encoding/json"

	"github.com/riadev/ria-server/model"
)

type CodesRepo struct {
	Store Store
}

func GetCodesRepo(store Store) *CodesRepo {
	return &CodesRepo{Store: store}
}

// Put stores the verification code for a phone, overwriting any prior
// unconsumed code.
func (r *CodesRepo) Put(ctx context.Context, phone string, code *model.VerificationCode) error {
	data, err := json.Marshal(code)
	if err != nil {
		return err
	}
	return r.Store.Set(ctx, codeKey(phone), data)
}

// Get returns the live code for a phone, or ErrCodeNotFound.
func (r *CodesRepo) Get(ctx context.Context, phone string) (*model.VerificationCode, error) {
	data, err := r.Store.Get(ctx, codeKey(phone))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrCodeNotFound
	}

	var code model.VerificationCode
	if err := json.Unmarshal(data, &code); err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *CodesRepo) Delete(ctx context.Context, phone string) error {
	return r.Store.Delete(ctx, codeKey(phone))
}
