package repository

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/rentfornest/rentfornest/internal/model"
	"github.com/rentfornest/rentfornest/internal/storage"
)

// AccountRepo is the single source of truth for user identity and
// credentials. The collection is loaded once at construction and kept
// in memory as a write-through cache: every successful mutation
// persists the full collection before returning.
type AccountRepo struct {
	store storage.Store
	log   *zap.Logger

	mu    sync.Mutex
	users []model.User
}

// NewAccountRepo loads the users collection from the store. An absent
// blob means no accounts yet; a blob that fails to decode aborts
// construction with ErrCorruptData.
func NewAccountRepo(store storage.Store, log *zap.Logger) (*AccountRepo, error) {
	blob, ok, err := store.Load(storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	var users []model.User
	if ok {
		if err := json.Unmarshal(blob, &users); err != nil {
			return nil, fmt.Errorf("%w: users: %v", ErrCorruptData, err)
		}
	}
	log.Info("accounts loaded", zap.Int("count", len(users)))
	return &AccountRepo{store: store, log: log, users: users}, nil
}

// Register creates a new account. Any existing record sharing the
// mobile number or the email blocks registration with
// ErrDuplicateIdentity. New records are appended so registration
// order is preserved.
func (r *AccountRepo) Register(fullName, mobile, email, password string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Mobile == mobile || u.Email == email {
			return model.User{}, ErrDuplicateIdentity
		}
	}

	user := model.User{
		FullName: fullName,
		Mobile:   mobile,
		Email:    email,
		Password: password,
	}

	next := append(append([]model.User{}, r.users...), user)
	if err := r.persist(next); err != nil {
		return model.User{}, err
	}
	r.users = next
	r.log.Info("account registered", zap.String("mobile", mobile))
	return user, nil
}

// Authenticate looks an account up by mobile number. An unknown
// mobile yields ErrNotFound; a known mobile with a mismatched
// password yields ErrWrongPassword. Passwords are compared in
// plaintext as a placeholder.
func (r *AccountRepo) Authenticate(mobile, password string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Mobile != mobile {
			continue
		}
		if u.Password != password {
			return model.User{}, ErrWrongPassword
		}
		return u, nil
	}
	return model.User{}, ErrNotFound
}

// ResetPassword overwrites the password of the first account whose
// full name, mobile and email all match exactly. No match leaves the
// collection untouched and returns ErrNoMatch.
func (r *AccountRepo) ResetPassword(fullName, mobile, email, newPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, u := range r.users {
		if u.FullName == fullName && u.Mobile == mobile && u.Email == email {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNoMatch
	}

	next := append([]model.User{}, r.users...)
	next[idx].Password = newPassword
	if err := r.persist(next); err != nil {
		return err
	}
	r.users = next
	r.log.Info("password reset", zap.String("mobile", mobile))
	return nil
}

// Count reports the number of registered accounts.
func (r *AccountRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// persist writes the candidate collection; callers swap it into
// memory only on success so a failed save leaves state unchanged.
func (r *AccountRepo) persist(users []model.User) error {
	blob, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("%w: encode users: %v", ErrPersistenceFailed, err)
	}
	if err := r.store.Save(storage.KeyUsers, blob); err != nil {
		r.log.Error("saving users failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return nil
}
