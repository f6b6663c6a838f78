package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ryodanqqe/link-shortener/internal/entity"
	"github.com/stretchr/testify/suite"
)

type TokenRepositoryTestSuite struct {
	suite.Suite
	errUnknown error
	mock       sqlmock.Sqlmock
	repo       *TokenRepository
}

func (suite *TokenRepositoryTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
}

func (suite *TokenRepositoryTestSuite) SetupSubTest() {
	db, mock := newMockDB(suite.T())

	suite.mock = mock
	suite.repo = NewTokenRepository(db)
}

func (suite *TokenRepositoryTestSuite) TearDownSubTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *TokenRepositoryTestSuite) TestSave() {
	suite.Run("token exists", func() {
		suite.mock.ExpectQuery(`INSERT INTO tokens`).
			WithArgs(int64(1), "hash").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode})

		token, err := suite.repo.Save(context.Background(), 1, "hash")

		suite.ErrorIs(err, entity.ErrTokenExists)
		suite.Nil(token)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`INSERT INTO tokens`).
			WithArgs(int64(1), "hash").
			WillReturnError(suite.errUnknown)

		token, err := suite.repo.Save(context.Background(), 1, "hash")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(token)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows([]string{"id", "user_id", "token_hash", "created_at"}).
			AddRow(7, 1, "hash", time.Time{})

		suite.mock.ExpectQuery(`INSERT INTO tokens`).
			WithArgs(int64(1), "hash").
			WillReturnRows(rows)

		token, err := suite.repo.Save(context.Background(), 1, "hash")

		suite.NoError(err)
		suite.Equal(entity.Token{ID: 7, UserID: 1, Hash: "hash"}, *token)
	})
}

func (suite *TokenRepositoryTestSuite) TestRetrieveUserID() {
	suite.Run("token not found", func() {
		suite.mock.ExpectQuery(`SELECT user_id FROM tokens`).
			WithArgs("hash").
			WillReturnError(sql.ErrNoRows)

		userID, err := suite.repo.RetrieveUserID(context.Background(), "hash")

		suite.ErrorIs(err, entity.ErrTokenNotFound)
		suite.Zero(userID)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT user_id FROM tokens`).
			WithArgs("hash").
			WillReturnError(suite.errUnknown)

		userID, err := suite.repo.RetrieveUserID(context.Background(), "hash")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Zero(userID)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`SELECT user_id FROM tokens`).
			WithArgs("hash").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

		userID, err := suite.repo.RetrieveUserID(context.Background(), "hash")

		suite.NoError(err)
		suite.Equal(int64(1), userID)
	})
}

func (suite *TokenRepositoryTestSuite) TestRemoveByUserID() {
	suite.Run("unknown error", func() {
		suite.mock.ExpectExec(`DELETE FROM tokens`).
			WithArgs(int64(1)).
			WillReturnError(suite.errUnknown)

		err := suite.repo.RemoveByUserID(context.Background(), 1)

		suite.ErrorIs(err, suite.errUnknown)
	})

	suite.Run("no tokens", func() {
		suite.mock.ExpectExec(`DELETE FROM tokens`).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := suite.repo.RemoveByUserID(context.Background(), 1)

		suite.NoError(err)
	})

	suite.Run("success", func() {
		suite.mock.ExpectExec(`DELETE FROM tokens`).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 3))

		err := suite.repo.RemoveByUserID(context.Background(), 1)

		suite.NoError(err)
	})
}

func TestTokenRepository(t *testing.T) {
	suite.Run(t, new(TokenRepositoryTestSuite))
}
