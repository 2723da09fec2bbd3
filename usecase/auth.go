package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/riadev/ria-server/model"
	"github.com/riadev/ria-server/repository"
	"github.com/riadev/ria-server/services"
)

// CodeTTL is how long a verification code stays valid. Strictly more than
// this since issuance invalidates the code at consumption time.
const CodeTTL = 5 * time.Minute

var (
	ErrInvalidPhone  = errors.New("Invalid phone number")
	ErrMissingFields = errors.New("Missing required fields")
	ErrCodeMissing   = errors.New("Verification code expired or not found")
	ErrCodeExpired   = errors.New("Verification code expired")
	ErrCodeInvalid   = errors.New("Invalid verification code")
	ErrPhoneTaken    = errors.New("Phone number already registered")
	ErrNotRegistered = errors.New("Phone number not registered")
)

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// ValidPhone reports whether phone is an 11-digit mobile number.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

type AuthService struct {
	Users *repository.UsersRepo
	Codes *repository.CodesRepo
	SMS   services.SMSSender

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SendCode issues a fresh 6-digit code for the phone, overwriting any
// prior unconsumed code, and hands it to the SMS sender. The plaintext
// code is returned so dev builds can expose it as devCode.
func (s *AuthService) SendCode(ctx context.Context, phone string) (string, error) {
	if !ValidPhone(phone) {
		return "", ErrInvalidPhone
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	record := &model.VerificationCode{
		CodeHash: string(hash),
		IssuedAt: s.now().UnixMilli(),
	}
	if err := s.Codes.Put(ctx, phone, record); err != nil {
		return "", err
	}

	if err := s.SMS.Send(phone, code); err != nil {
		return "", err
	}
	return code, nil
}

// Register creates a new account after checking the verification code.
// The code survives a failed duplicate-phone check and is only consumed
// once registration fully succeeds.
func (s *AuthService) Register(ctx context.Context, phone, code, nickname string) (*model.User, error) {
	if phone == "" || code == "" || nickname == "" {
		return nil, ErrMissingFields
	}

	if err := s.checkCode(ctx, phone, code); err != nil {
		return nil, err
	}

	now := s.now().UnixMilli()
	user := &model.User{
		Phone:     phone,
		Nickname:  nickname,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, ErrPhoneTaken
		}
		return nil, err
	}

	if err := s.Codes.Delete(ctx, phone); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the code for an existing account and consumes it.
func (s *AuthService) Login(ctx context.Context, phone, code string) (*model.User, error) {
	if phone == "" || code == "" {
		return nil, ErrMissingFields
	}

	if err := s.checkCode(ctx, phone, code); err != nil {
		return nil, err
	}

	user, err := s.Users.FindUser(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotRegistered
		}
		return nil, err
	}

	if err := s.Codes.Delete(ctx, phone); err != nil {
		return nil, err
	}
	return user, nil
}

// checkCode verifies without consuming. Expired codes are removed on the
// spot; there is no background sweep.
func (s *AuthService) checkCode(ctx context.Context, phone, code string) error {
	record, err := s.Codes.Get(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return ErrCodeMissing
		}
		return err
	}

	if s.now().UnixMilli()-record.IssuedAt > CodeTTL.Milliseconds() {
		if err := s.Codes.Delete(ctx, phone); err != nil {
			return err
		}
		return ErrCodeExpired
	}

	if bcrypt.CompareHashAndPassword([]byte(record.CodeHash), []byte(code)) != nil {
		return ErrCodeInvalid
	}
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
