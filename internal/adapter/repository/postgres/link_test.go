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

type LinkRepositoryTestSuite struct {
	suite.Suite
	errUnknown error
	columns    []string
	mock       sqlmock.Sqlmock
	repo       *LinkRepository
}

func (suite *LinkRepositoryTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.columns = []string{"id", "user_id", "original_url", "short_token", "is_private", "created_at", "updated_at"}
}

func (suite *LinkRepositoryTestSuite) SetupSubTest() {
	db, mock := newMockDB(suite.T())

	suite.mock = mock
	suite.repo = NewLinkRepository(db)
}

func (suite *LinkRepositoryTestSuite) TearDownSubTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *LinkRepositoryTestSuite) TestSave() {
	suite.Run("short token exists", func() {
		suite.mock.ExpectQuery(`INSERT INTO links`).
			WithArgs(int64(1), "https://example.com", "abc123", false).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode})

		link, err := suite.repo.Save(context.Background(), 1, "https://example.com", "abc123", false)

		suite.ErrorIs(err, entity.ErrShortTokenExists)
		suite.Nil(link)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`INSERT INTO links`).
			WithArgs(int64(1), "https://example.com", "abc123", false).
			WillReturnError(suite.errUnknown)

		link, err := suite.repo.Save(context.Background(), 1, "https://example.com", "abc123", false)

		suite.ErrorIs(err, suite.errUnknown)
		suite.NotErrorIs(err, entity.ErrShortTokenExists)
		suite.Nil(link)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow(1, 1, "https://example.com", "abc123", true, time.Time{}, time.Time{})

		suite.mock.ExpectQuery(`INSERT INTO links`).
			WithArgs(int64(1), "https://example.com", "abc123", true).
			WillReturnRows(rows)

		link, err := suite.repo.Save(context.Background(), 1, "https://example.com", "abc123", true)

		suite.NoError(err)
		suite.Equal(entity.Link{
			ID:          1,
			UserID:      1,
			OriginalURL: "https://example.com",
			ShortToken:  "abc123",
			IsPrivate:   true,
		}, *link)
	})
}

func (suite *LinkRepositoryTestSuite) TestRetrieveByShortToken() {
	suite.Run("link not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM links WHERE short_token`).
			WithArgs("abc123").
			WillReturnError(sql.ErrNoRows)

		link, err := suite.repo.RetrieveByShortToken(context.Background(), "abc123")

		suite.ErrorIs(err, entity.ErrLinkNotFound)
		suite.Nil(link)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM links WHERE short_token`).
			WithArgs("abc123").
			WillReturnError(suite.errUnknown)

		link, err := suite.repo.RetrieveByShortToken(context.Background(), "abc123")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(link)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow(1, 1, "https://example.com", "abc123", false, time.Time{}, time.Time{})

		suite.mock.ExpectQuery(`SELECT (.+) FROM links WHERE short_token`).
			WithArgs("abc123").
			WillReturnRows(rows)

		link, err := suite.repo.RetrieveByShortToken(context.Background(), "abc123")

		suite.NoError(err)
		suite.Equal("abc123", link.ShortToken)
		suite.Equal("https://example.com", link.OriginalURL)
	})
}

func (suite *LinkRepositoryTestSuite) TestRetrieveByUserID() {
	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM links WHERE user_id = \$1 ORDER BY id`).
			WithArgs(int64(1)).
			WillReturnError(suite.errUnknown)

		links, err := suite.repo.RetrieveByUserID(context.Background(), 1)

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(links)
	})

	suite.Run("no links", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM links WHERE user_id = \$1 ORDER BY id`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(suite.columns))

		links, err := suite.repo.RetrieveByUserID(context.Background(), 1)

		suite.NoError(err)
		suite.NotNil(links)
		suite.Empty(links)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow(1, 1, "https://example.com", "first", false, time.Time{}, time.Time{}).
			AddRow(2, 1, "https://example.org", "second", true, time.Time{}, time.Time{})

		suite.mock.ExpectQuery(`SELECT (.+) FROM links WHERE user_id = \$1 ORDER BY id`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		links, err := suite.repo.RetrieveByUserID(context.Background(), 1)

		suite.NoError(err)
		suite.Len(links, 2)
		suite.Equal("first", links[0].ShortToken)
		suite.Equal("second", links[1].ShortToken)
		suite.True(links[1].IsPrivate)
	})
}

func TestLinkRepository(t *testing.T) {
	suite.Run(t, new(LinkRepositoryTestSuite))
}
