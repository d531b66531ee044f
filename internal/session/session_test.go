package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Issue(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.MatchExpectationsInOrder(true)
	mock.Regexp().ExpectSetEx(`auth_[0-9a-f-]{36}`, "user-1", TTL).SetVal("OK")

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store := NewRedisStore(db)
	store.now = func() time.Time { return fixed }

	sess, err := store.Issue(context.Background(), "user-1")

	require.NoError(t, err)
	_, err = uuid.Parse(sess.Token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, fixed.Add(24*time.Hour), sess.ExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_IssueError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectSetEx(`auth_.*`, "user-1", TTL).SetErr(errors.New("connection refused"))

	sess, err := NewRedisStore(db).Issue(context.Background(), "user-1")

	assert.Nil(t, sess)
	assert.EqualError(t, err, "store session: connection refused")
}

func TestRedisStore_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("known token", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet("auth_tok").SetVal("user-1")

		userID, err := NewRedisStore(db).Validate(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown or expired token", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet("auth_tok").RedisNil()

		_, err := NewRedisStore(db).Validate(ctx, "tok")

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty token never reaches redis", func(t *testing.T) {
		db, mock := redismock.NewClientMock()

		_, err := NewRedisStore(db).Validate(ctx, "")

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure is not an auth failure", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet("auth_tok").SetErr(errors.New("i/o timeout"))

		_, err := NewRedisStore(db).Validate(ctx, "tok")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRedisStore_Revoke(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	store := NewRedisStore(db)

	mock.ExpectDel("auth_tok").SetVal(1)
	mock.ExpectGet("auth_tok").RedisNil()
	mock.ExpectDel("auth_tok").SetVal(0)

	require.NoError(t, store.Revoke(ctx, "tok"))
	_, err := store.Validate(ctx, "tok")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// revoking again is a no-op
	assert.NoError(t, store.Revoke(ctx, "tok"))
	assert.NoError(t, store.Revoke(ctx, ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}
