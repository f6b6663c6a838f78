package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ryodanqqe/link-shortener/internal/entity"
	"github.com/ryodanqqe/link-shortener/mocks/usecase"
)

type CredentialStoreTestSuite struct {
	suite.Suite
	errUnknown   error
	userRepoMock *usecase.MockUserRepository
	hasherMock   *usecase.MockPasswordHasher
	store        *CredentialStore
}

func (suite *CredentialStoreTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
}

func (suite *CredentialStoreTestSuite) SetupSubTest() {
	suite.userRepoMock = usecase.NewMockUserRepository(suite.T())
	suite.hasherMock = usecase.NewMockPasswordHasher(suite.T())
	suite.store = NewCredentialStore(suite.userRepoMock, suite.hasherMock)
}

func (suite *CredentialStoreTestSuite) TearDownSubTest() {
	suite.userRepoMock.AssertExpectations(suite.T())
	suite.hasherMock.AssertExpectations(suite.T())
}

func (suite *CredentialStoreTestSuite) TestFindByEmail() {
	ctx := context.Background()

	suite.Run("email normalized", func() {
		suite.userRepoMock.
			On("RetrieveByEmail", ctx, "bob@example.com").
			Once().
			Return(&entity.User{ID: 2, Email: "bob@example.com"}, nil)

		user, err := suite.store.FindByEmail(ctx, "  Bob@Example.COM ")

		suite.NoError(err)
		suite.Equal(int64(2), user.ID)
	})

	suite.Run("user not found", func() {
		suite.userRepoMock.
			On("RetrieveByEmail", ctx, "nobody@example.com").
			Once().
			Return(nil, entity.ErrUserNotFound)

		user, err := suite.store.FindByEmail(ctx, "nobody@example.com")

		suite.ErrorIs(err, entity.ErrUserNotFound)
		suite.Nil(user)
	})
}

func (suite *CredentialStoreTestSuite) TestFindByID() {
	ctx := context.Background()

	suite.Run("unknown error", func() {
		suite.userRepoMock.
			On("RetrieveByID", ctx, int64(7)).
			Once().
			Return(nil, suite.errUnknown)

		user, err := suite.store.FindByID(ctx, 7)

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(user)
	})

	suite.Run("success", func() {
		suite.userRepoMock.
			On("RetrieveByID", ctx, int64(7)).
			Once().
			Return(&entity.User{ID: 7}, nil)

		user, err := suite.store.FindByID(ctx, 7)

		suite.NoError(err)
		suite.Equal(int64(7), user.ID)
	})
}

func (suite *CredentialStoreTestSuite) TestCreate() {
	ctx := context.Background()

	suite.Run("hash error", func() {
		suite.hasherMock.
			On("Hash", "password").
			Once().
			Return("", suite.errUnknown)

		user, err := suite.store.Create(ctx, "Bob", "bob@example.com", "password", false)

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(user)
	})

	suite.Run("only the hash is stored", func() {
		suite.hasherMock.
			On("Hash", "password").
			Once().
			Return("bob-hash", nil)
		suite.userRepoMock.
			On("Save", ctx, "Bob", "bob@example.com", "bob-hash", true).
			Once().
			Return(&entity.User{ID: 2, Name: "Bob", Email: "bob@example.com", PasswordHash: "bob-hash", IsSuperuser: true}, nil)

		user, err := suite.store.Create(ctx, "Bob", "BOB@example.com", "password", true)

		suite.NoError(err)
		suite.Equal("bob-hash", user.PasswordHash)
	})
}

func TestCredentialStore(t *testing.T) {
	suite.Run(t, new(CredentialStoreTestSuite))
}
