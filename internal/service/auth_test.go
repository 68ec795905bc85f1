package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pricewatch/pricewatch-server/internal/mocks"
	"github.com/pricewatch/pricewatch-server/internal/model"
	"github.com/pricewatch/pricewatch-server/internal/testutil"
)

func TestAuth_Register_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}
	tokenManager := &mocks.TokenManager{}
	notifier := &mocks.Notifier{}

	userStore.On("GetByEmail", mock.Anything, "a@b.com").Return(model.User{}, model.ErrNotFound)
	hasher.On("Hash", "pw123").Return("pbkdf2:sha512:1000:aa:bb", nil)
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "a@b.com" && u.PasswordHash == "pbkdf2:sha512:1000:aa:bb" && u.PhoneNumber == "+15551234567"
	})).Return(model.User{Email: "a@b.com"}, nil)
	notifier.On("RegisterPhoneNumber", mock.Anything, "+15551234567").Return(nil)
	tokenManager.On("GenerateToken", "a@b.com").Return("token", nil)

	a := NewAuth(userStore, hasher, tokenManager, notifier, testutil.MakeNoopLogger())

	token, err := a.Register(ctx, "a@b.com", "pw123", "+15551234567")
	require.NoError(t, err)
	assert.Equal(t, "token", token)
	notifier.AssertExpectations(t)
}

func TestAuth_Register_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}
	tokenManager := &mocks.TokenManager{}
	notifier := &mocks.Notifier{}

	userStore.On("GetByEmail", mock.Anything, "a@b.com").Return(model.User{Email: "a@b.com"}, nil)

	a := NewAuth(userStore, hasher, tokenManager, notifier, testutil.MakeNoopLogger())

	_, err := a.Register(ctx, "a@b.com", "pw123", "+15551234567")
	require.ErrorIs(t, err, model.ErrAlreadyExists)
	userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuth_Register_LostCreateRace(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}
	tokenManager := &mocks.TokenManager{}
	notifier := &mocks.Notifier{}

	userStore.On("GetByEmail", mock.Anything, "a@b.com").Return(model.User{}, model.ErrNotFound)
	hasher.On("Hash", "pw123").Return("hash", nil)
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrAlreadyExists)

	a := NewAuth(userStore, hasher, tokenManager, notifier, testutil.MakeNoopLogger())

	_, err := a.Register(ctx, "a@b.com", "pw123", "+15551234567")
	require.ErrorIs(t, err, model.ErrAlreadyExists)
}

func TestAuth_Register_NotifierFailureIsBestEffort(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}
	tokenManager := &mocks.TokenManager{}
	notifier := &mocks.Notifier{}

	userStore.On("GetByEmail", mock.Anything, "a@b.com").Return(model.User{}, model.ErrNotFound)
	hasher.On("Hash", "pw123").Return("hash", nil)
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{Email: "a@b.com"}, nil)
	notifier.On("RegisterPhoneNumber", mock.Anything, "+15551234567").Return(errors.New("sns down"))
	tokenManager.On("GenerateToken", "a@b.com").Return("token", nil)

	a := NewAuth(userStore, hasher, tokenManager, notifier, testutil.MakeNoopLogger())

	token, err := a.Register(ctx, "a@b.com", "pw123", "+15551234567")
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}
	tokenManager := &mocks.TokenManager{}
	notifier := &mocks.Notifier{}

	userStore.On("GetByEmail", mock.Anything, "a@b.com").Return(model.User{Email: "a@b.com", PasswordHash: "stored"}, nil)
	hasher.On("Verify", "pw123", "stored").Return(true, nil)
	tokenManager.On("GenerateToken", "a@b.com").Return("token", nil)

	a := NewAuth(userStore, hasher, tokenManager, notifier, testutil.MakeNoopLogger())

	token, err := a.Login(ctx, "a@b.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}

func TestAuth_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	userStore.On("GetByEmail", mock.Anything, "missing@b.com").Return(model.User{}, model.ErrNotFound)

	a := NewAuth(userStore, &mocks.PasswordHasher{}, &mocks.TokenManager{}, &mocks.Notifier{}, testutil.MakeNoopLogger())

	_, err := a.Login(ctx, "missing@b.com", "pw123")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	userStore.On("GetByEmail", mock.Anything, "a@b.com").Return(model.User{Email: "a@b.com", PasswordHash: "stored"}, nil)
	hasher.On("Verify", "wrong", "stored").Return(false, nil)

	a := NewAuth(userStore, hasher, &mocks.TokenManager{}, &mocks.Notifier{}, testutil.MakeNoopLogger())

	_, err := a.Login(ctx, "a@b.com", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_MalformedStoredHash(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	userStore.On("GetByEmail", mock.Anything, "a@b.com").Return(model.User{Email: "a@b.com", PasswordHash: "garbage"}, nil)
	hasher.On("Verify", "pw123", "garbage").Return(false, errors.New("malformed password encoding"))

	a := NewAuth(userStore, hasher, &mocks.TokenManager{}, &mocks.Notifier{}, testutil.MakeNoopLogger())

	_, err := a.Login(ctx, "a@b.com", "pw123")
	require.Error(t, err)
	// a data-integrity failure is not the same outcome as a bad password
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
}
