package database

import (
	"errors"
	"testing"

	"dbadmin/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func stubConn(t *testing.T, openErr error) (opens, closes *int) {
	t.Helper()
	origOpen, origClose := openConn, closeConn
	t.Cleanup(func() {
		openConn, closeConn = origOpen, origClose
	})

	opens, closes = new(int), new(int)
	openConn = func(cfg *config.Config) (*gorm.DB, error) {
		*opens++
		if openErr != nil {
			return nil, openErr
		}
		return &gorm.DB{}, nil
	}
	closeConn = func(db *gorm.DB) error {
		*closes++
		return nil
	}
	return opens, closes
}

func TestRun_ClosesOnSuccess(t *testing.T) {
	opens, closes := stubConn(t, nil)

	err := Run(&config.Config{}, func(db *gorm.DB) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 1, *opens)
	assert.Equal(t, 1, *closes)
}

func TestRun_ClosesOnOperationError(t *testing.T) {
	opens, closes := stubConn(t, nil)

	opErr := errors.New("query failed")
	err := Run(&config.Config{}, func(db *gorm.DB) error { return opErr })
	assert.ErrorIs(t, err, opErr)
	assert.Equal(t, 1, *opens)
	assert.Equal(t, 1, *closes)
}

func TestRun_OpenFailureSkipsClose(t *testing.T) {
	openErr := errors.New("connection refused")
	opens, closes := stubConn(t, openErr)

	called := false
	err := Run(&config.Config{}, func(db *gorm.DB) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, openErr)
	assert.False(t, called)
	assert.Equal(t, 1, *opens)
	assert.Equal(t, 0, *closes)
}
