package services

import (
	"context"
	"sync"
	"testing"

	"community-board/internal/domain/user"
	board_errors "community-board/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validRegistration() RegisterInput {
	return RegisterInput{Name: "Alice", Email: "alice@example.com", Username: "alice", Password: "secret"}
}

func TestRegister_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	svc := NewAuthService(repo, nil)

	pub, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.NotEmpty(t, pub.ID)
	assert.Equal(t, "Alice", pub.Name)
	assert.Equal(t, "alice", pub.Username)
	assert.Equal(t, "alice@example.com", pub.Email)
	require.Len(t, repo.users, 1)
	assert.Equal(t, "secret", repo.users[0].Password, "plaintext scheme stores the password verbatim")
}

func TestRegister_MissingFields(t *testing.T) {
	cases := map[string]func(*RegisterInput){
		"name":     func(in *RegisterInput) { in.Name = "" },
		"email":    func(in *RegisterInput) { in.Email = "" },
		"username": func(in *RegisterInput) { in.Username = "" },
		"password": func(in *RegisterInput) { in.Password = "" },
	}
	for field, blank := range cases {
		t.Run(field, func(t *testing.T) {
			repo := &fakeUsersRepo{}
			svc := NewAuthService(repo, nil)
			in := validRegistration()
			blank(&in)

			_, err := svc.Register(context.Background(), in)
			assert.ErrorIs(t, err, board_errors.ErrInvalidInput)
			assert.Equal(t, 400, HTTPStatus(err))
			assert.Zero(t, repo.creates)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := &fakeUsersRepo{}
	svc := NewAuthService(repo, nil)

	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	second := validRegistration()
	second.Email = "other@example.com"
	_, err = svc.Register(context.Background(), second)
	assert.ErrorIs(t, err, board_errors.ErrConflict)
	assert.Equal(t, 409, HTTPStatus(err))
	assert.Len(t, repo.users, 1)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUsersRepo{}
	svc := NewAuthService(repo, nil)

	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	second := validRegistration()
	second.Username = "alice2"
	_, err = svc.Register(context.Background(), second)
	assert.ErrorIs(t, err, board_errors.ErrConflict)
	assert.Len(t, repo.users, 1)
}

func TestRegister_StoreDuplicateKeyIsConflict(t *testing.T) {
	repo := &fakeUsersRepo{createErr: board_errors.ErrAlreadyExists}
	svc := NewAuthService(repo, nil)

	_, err := svc.Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, board_errors.ErrAlreadyExists)
	assert.Equal(t, 409, HTTPStatus(err))
}

func TestRegister_StoreFailure(t *testing.T) {
	repo := &fakeUsersRepo{findErr: errStoreDown}
	svc := NewAuthService(repo, nil)

	_, err := svc.Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, errStoreDown)
	assert.Equal(t, 500, HTTPStatus(err))
	assert.Zero(t, repo.creates)
}

// Concurrent registrations with the same username are not guaranteed to be
// rejected: each request may pass the uniqueness check before either insert.
func TestRegister_ConcurrentSameUsernameMayBothSucceed(t *testing.T) {
	repo := &fakeUsersRepo{}
	svc := NewAuthService(repo, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := validRegistration()
			in.Email = []string{"a@example.com", "b@example.com"}[i]
			_, errs[i] = svc.Register(context.Background(), in)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, board_errors.ErrConflict)
		}
	}
	assert.GreaterOrEqual(t, succeeded, 1)
	assert.Len(t, repo.users, succeeded)
}

func TestLogin_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	svc := NewAuthService(repo, nil)
	registered, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	pub, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, registered, pub)
}

func TestLogin_Failures(t *testing.T) {
	repo := &fakeUsersRepo{}
	svc := NewAuthService(repo, nil)
	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	cases := map[string]LoginInput{
		"wrong password":   {Username: "alice", Password: "nope"},
		"unknown username": {Username: "bob", Password: "secret"},
		"case differs":     {Username: "Alice", Password: "secret"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), in)
			assert.ErrorIs(t, err, board_errors.ErrUnauthorized)
			assert.Equal(t, 401, HTTPStatus(err))
		})
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc := NewAuthService(&fakeUsersRepo{}, nil)

	for _, in := range []LoginInput{{Username: "alice"}, {Password: "secret"}, {}} {
		_, err := svc.Login(context.Background(), in)
		assert.ErrorIs(t, err, board_errors.ErrInvalidInput)
	}
}

func TestLogin_PicksMatchingDuplicate(t *testing.T) {
	repo := &fakeUsersRepo{users: []user.User{
		{Name: "First", Username: "alice", Password: "one"},
		{Name: "Second", Username: "alice", Password: "two"},
	}}
	svc := NewAuthService(repo, nil)

	pub, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "two"})
	require.NoError(t, err)
	assert.Equal(t, "Second", pub.Name)
}

func TestLogin_StoreFailure(t *testing.T) {
	svc := NewAuthService(&fakeUsersRepo{findErr: errStoreDown}, nil)

	_, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "secret"})
	assert.ErrorIs(t, err, errStoreDown)
	assert.Equal(t, 500, HTTPStatus(err))
}

func TestBcryptScheme_RegisterThenLogin(t *testing.T) {
	repo := &fakeUsersRepo{}
	svc := NewAuthService(repo, BcryptPasswords{Cost: bcrypt.MinCost})

	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "secret", repo.users[0].Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users[0].Password), []byte("secret")))

	_, err = svc.Login(context.Background(), LoginInput{Username: "alice", Password: "secret"})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, board_errors.ErrUnauthorized)
}
