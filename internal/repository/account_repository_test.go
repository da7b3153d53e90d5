package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rentfornest/rentfornest/internal/model"
	"github.com/rentfornest/rentfornest/internal/storage"
)

func newAccountRepo(t *testing.T) (*AccountRepo, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	repo, err := NewAccountRepo(mem, zap.NewNop())
	require.NoError(t, err)
	return repo, mem
}

func storedUsers(t *testing.T, mem *storage.Memory) []model.User {
	t.Helper()
	blob, ok, err := mem.Load(storage.KeyUsers)
	require.NoError(t, err)
	require.True(t, ok, "users blob should be persisted")
	var users []model.User
	require.NoError(t, json.Unmarshal(blob, &users))
	return users
}

func TestAccountRepo_Register(t *testing.T) {
	t.Run("success appends and persists", func(t *testing.T) {
		repo, mem := newAccountRepo(t)

		u, err := repo.Register("Raj Kumar", "9876543210", "raj@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, model.User{
			FullName: "Raj Kumar",
			Mobile:   "9876543210",
			Email:    "raj@example.com",
			Password: "secret",
		}, u)
		assert.Equal(t, 1, repo.Count())
		assert.Equal(t, []model.User{u}, storedUsers(t, mem))
	})

	t.Run("registration order preserved", func(t *testing.T) {
		repo, mem := newAccountRepo(t)

		_, err := repo.Register("First", "111", "first@example.com", "a")
		require.NoError(t, err)
		_, err = repo.Register("Second", "222", "second@example.com", "b")
		require.NoError(t, err)

		users := storedUsers(t, mem)
		require.Len(t, users, 2)
		assert.Equal(t, "First", users[0].FullName)
		assert.Equal(t, "Second", users[1].FullName)
	})

	t.Run("duplicate mobile blocks", func(t *testing.T) {
		repo, _ := newAccountRepo(t)
		_, err := repo.Register("Raj", "111", "raj@example.com", "a")
		require.NoError(t, err)

		_, err = repo.Register("Other", "111", "other@example.com", "b")
		assert.ErrorIs(t, err, ErrDuplicateIdentity)
		assert.Equal(t, 1, repo.Count())
	})

	t.Run("duplicate email blocks", func(t *testing.T) {
		repo, mem := newAccountRepo(t)
		first, err := repo.Register("Raj", "111", "raj@example.com", "a")
		require.NoError(t, err)

		_, err = repo.Register("Other", "222", "raj@example.com", "b")
		assert.ErrorIs(t, err, ErrDuplicateIdentity)
		assert.Equal(t, []model.User{first}, storedUsers(t, mem))
	})

	t.Run("failed save leaves state unchanged", func(t *testing.T) {
		repo, mem := newAccountRepo(t)
		mem.FailSaves = true

		_, err := repo.Register("Raj", "111", "raj@example.com", "a")
		assert.ErrorIs(t, err, ErrPersistenceFailed)
		assert.Equal(t, 0, repo.Count())

		_, err = repo.Authenticate("111", "a")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAccountRepo_Authenticate(t *testing.T) {
	repo, _ := newAccountRepo(t)
	registered, err := repo.Register("Raj Kumar", "9876543210", "raj@example.com", "secret")
	require.NoError(t, err)

	t.Run("unknown mobile", func(t *testing.T) {
		_, err := repo.Authenticate("0000000000", "secret")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := repo.Authenticate("9876543210", "SECRET")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("match returns the record", func(t *testing.T) {
		u, err := repo.Authenticate("9876543210", "secret")
		require.NoError(t, err)
		assert.Equal(t, registered, u)
	})
}

func TestAccountRepo_ResetPassword(t *testing.T) {
	t.Run("all three fields must match", func(t *testing.T) {
		repo, _ := newAccountRepo(t)
		_, err := repo.Register("Raj Kumar", "111", "raj@example.com", "old")
		require.NoError(t, err)

		assert.ErrorIs(t, repo.ResetPassword("Raj", "111", "raj@example.com", "new"), ErrNoMatch)
		assert.ErrorIs(t, repo.ResetPassword("Raj Kumar", "222", "raj@example.com", "new"), ErrNoMatch)
		assert.ErrorIs(t, repo.ResetPassword("Raj Kumar", "111", "other@example.com", "new"), ErrNoMatch)

		// Old credential still works after failed resets.
		_, err = repo.Authenticate("111", "old")
		assert.NoError(t, err)
	})

	t.Run("changes only the matched password", func(t *testing.T) {
		repo, mem := newAccountRepo(t)
		_, err := repo.Register("Raj Kumar", "111", "raj@example.com", "old")
		require.NoError(t, err)
		other, err := repo.Register("Priya Sharma", "222", "priya@example.com", "untouched")
		require.NoError(t, err)

		require.NoError(t, repo.ResetPassword("Raj Kumar", "111", "raj@example.com", "new"))

		_, err = repo.Authenticate("111", "old")
		assert.ErrorIs(t, err, ErrWrongPassword)
		u, err := repo.Authenticate("111", "new")
		require.NoError(t, err)
		assert.Equal(t, "Raj Kumar", u.FullName)
		assert.Equal(t, "raj@example.com", u.Email)

		users := storedUsers(t, mem)
		require.Len(t, users, 2)
		assert.Equal(t, other, users[1])
	})

	t.Run("failed save keeps the old password", func(t *testing.T) {
		repo, mem := newAccountRepo(t)
		_, err := repo.Register("Raj Kumar", "111", "raj@example.com", "old")
		require.NoError(t, err)

		mem.FailSaves = true
		assert.ErrorIs(t, repo.ResetPassword("Raj Kumar", "111", "raj@example.com", "new"), ErrPersistenceFailed)

		mem.FailSaves = false
		_, err = repo.Authenticate("111", "old")
		assert.NoError(t, err)
	})
}

func TestNewAccountRepo_CorruptBlob(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.Save(storage.KeyUsers, []byte("{not json")))

	_, err := NewAccountRepo(mem, zap.NewNop())
	assert.ErrorIs(t, err, ErrCorruptData)
}
