package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ryodanqqe/link-shortener/internal/entity"
	"github.com/ryodanqqe/link-shortener/mocks/usecase"
	"github.com/ryodanqqe/link-shortener/pkg/token"
)

type TokenIssuerTestSuite struct {
	suite.Suite
	errUnknown    error
	user          *entity.User
	userRepoMock  *usecase.MockUserRepository
	tokenRepoMock *usecase.MockTokenRepository
	issuer        *TokenIssuer
}

func (suite *TokenIssuerTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.user = &entity.User{ID: 2, Email: "bob@example.com"}
}

func (suite *TokenIssuerTestSuite) SetupSubTest() {
	suite.userRepoMock = usecase.NewMockUserRepository(suite.T())
	suite.tokenRepoMock = usecase.NewMockTokenRepository(suite.T())
	suite.issuer = NewTokenIssuer(suite.tokenRepoMock, suite.userRepoMock)
}

func (suite *TokenIssuerTestSuite) TearDownSubTest() {
	suite.userRepoMock.AssertExpectations(suite.T())
	suite.tokenRepoMock.AssertExpectations(suite.T())
}

func (suite *TokenIssuerTestSuite) TestIssue() {
	ctx := context.Background()

	suite.Run("generation error", func() {
		suite.issuer.generate = func() (string, error) {
			return "", suite.errUnknown
		}

		secret, err := suite.issuer.Issue(ctx, suite.user)

		suite.ErrorIs(err, suite.errUnknown)
		suite.Empty(secret)
	})

	suite.Run("secret never stored", func() {
		suite.issuer.generate = func() (string, error) {
			return "fixed-secret", nil
		}
		suite.tokenRepoMock.
			On("Save", ctx, suite.user.ID, token.Hash("fixed-secret")).
			Once().
			Return(&entity.Token{ID: 1, UserID: suite.user.ID, Hash: token.Hash("fixed-secret")}, nil)

		secret, err := suite.issuer.Issue(ctx, suite.user)

		suite.NoError(err)
		suite.Equal("fixed-secret", secret)
	})

	suite.Run("distinct secrets", func() {
		suite.tokenRepoMock.
			On("Save", ctx, suite.user.ID, mock.AnythingOfType("string")).
			Twice().
			Return(&entity.Token{}, nil)

		first, err := suite.issuer.Issue(ctx, suite.user)
		suite.Require().NoError(err)
		second, err := suite.issuer.Issue(ctx, suite.user)
		suite.Require().NoError(err)

		suite.NotEqual(first, second)
	})
}

func (suite *TokenIssuerTestSuite) TestRevokeAll() {
	ctx := context.Background()

	suite.Run("no tokens", func() {
		suite.tokenRepoMock.
			On("RemoveByUserID", ctx, suite.user.ID).
			Once().
			Return(nil)

		suite.NoError(suite.issuer.RevokeAll(ctx, suite.user))
	})

	suite.Run("unknown error", func() {
		suite.tokenRepoMock.
			On("RemoveByUserID", ctx, suite.user.ID).
			Once().
			Return(suite.errUnknown)

		suite.ErrorIs(suite.issuer.RevokeAll(ctx, suite.user), suite.errUnknown)
	})
}

func TestTokenIssuer(t *testing.T) {
	suite.Run(t, new(TokenIssuerTestSuite))
}
