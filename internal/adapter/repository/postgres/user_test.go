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

type UserRepositoryTestSuite struct {
	suite.Suite
	errUnknown error
	columns    []string
	mock       sqlmock.Sqlmock
	repo       *UserRepository
}

func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.columns = []string{"id", "name", "email", "password_hash", "is_superuser", "created_at", "updated_at"}
}

func (suite *UserRepositoryTestSuite) SetupSubTest() {
	db, mock := newMockDB(suite.T())

	suite.mock = mock
	suite.repo = NewUserRepository(db)
}

func (suite *UserRepositoryTestSuite) TearDownSubTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *UserRepositoryTestSuite) TestSave() {
	suite.Run("email taken", func() {
		suite.mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("Bob", "bob@example.com", "hash", false).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode})

		user, err := suite.repo.Save(context.Background(), "Bob", "bob@example.com", "hash", false)

		suite.ErrorIs(err, entity.ErrEmailTaken)
		suite.Nil(user)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("Bob", "bob@example.com", "hash", false).
			WillReturnError(suite.errUnknown)

		user, err := suite.repo.Save(context.Background(), "Bob", "bob@example.com", "hash", false)

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(user)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow(1, "Bob", "bob@example.com", "hash", true, time.Time{}, time.Time{})

		suite.mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("Bob", "bob@example.com", "hash", true).
			WillReturnRows(rows)

		user, err := suite.repo.Save(context.Background(), "Bob", "bob@example.com", "hash", true)

		suite.NoError(err)
		suite.Equal(entity.User{
			ID:           1,
			Name:         "Bob",
			Email:        "bob@example.com",
			PasswordHash: "hash",
			IsSuperuser:  true,
		}, *user)
	})
}

func (suite *UserRepositoryTestSuite) TestRetrieveByEmail() {
	suite.Run("user not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
			WithArgs("bob@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := suite.repo.RetrieveByEmail(context.Background(), "bob@example.com")

		suite.ErrorIs(err, entity.ErrUserNotFound)
		suite.Nil(user)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
			WithArgs("bob@example.com").
			WillReturnError(suite.errUnknown)

		user, err := suite.repo.RetrieveByEmail(context.Background(), "bob@example.com")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(user)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow(1, "Bob", "bob@example.com", "hash", false, time.Time{}, time.Time{})

		suite.mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
			WithArgs("bob@example.com").
			WillReturnRows(rows)

		user, err := suite.repo.RetrieveByEmail(context.Background(), "bob@example.com")

		suite.NoError(err)
		suite.Equal(int64(1), user.ID)
		suite.Equal("hash", user.PasswordHash)
	})
}

func (suite *UserRepositoryTestSuite) TestRetrieveByID() {
	suite.Run("user not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM users WHERE id`).
			WithArgs(int64(1)).
			WillReturnError(sql.ErrNoRows)

		user, err := suite.repo.RetrieveByID(context.Background(), 1)

		suite.ErrorIs(err, entity.ErrUserNotFound)
		suite.Nil(user)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow(1, "Bob", "bob@example.com", "hash", false, time.Time{}, time.Time{})

		suite.mock.ExpectQuery(`SELECT (.+) FROM users WHERE id`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		user, err := suite.repo.RetrieveByID(context.Background(), 1)

		suite.NoError(err)
		suite.Equal("Bob", user.Name)
	})
}

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
