package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrNotFound, "source root not found")
	assert.Equal(t, "[NOT_FOUND] source root not found", err.Error())
	assert.Equal(t, ErrNotFound, err.Code)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrConfigValid, "category %s has no patterns", "Kicks")
	assert.Contains(t, err.Error(), "category Kicks has no patterns")
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := Wrap(inner, ErrSymlinkCreate, "failed to link")

	assert.Contains(t, err.Error(), "SYMLINK_CREATE")
	assert.Contains(t, err.Error(), "permission denied")
	assert.ErrorIs(t, err, inner)

	assert.Nil(t, Wrap(nil, ErrSymlinkCreate, "ignored"))
}

func TestIsErrorCode(t *testing.T) {
	err := Wrapf(stderrors.New("boom"), ErrStoreSave, "failed to write link index")

	assert.True(t, IsErrorCode(err, ErrStoreSave))
	assert.False(t, IsErrorCode(err, ErrStoreLoad))
	assert.False(t, IsErrorCode(stderrors.New("plain"), ErrStoreSave))
	assert.False(t, IsErrorCode(nil, ErrStoreSave))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrScan, GetErrorCode(New(ErrScan, "scan failed")))
	assert.Equal(t, ErrUnknown, GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrSymlinkCreate, "failed to link").
		WithDetail("link", "/organized/All/Pack__kick.wav").
		WithDetail("source", "/library/Pack/kick.wav")

	require.NotNil(t, err.Details)
	assert.Equal(t, "/organized/All/Pack__kick.wav", err.Details["link"])
	assert.Equal(t, "/library/Pack/kick.wav", err.Details["source"])
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	a := New(ErrWatchInit, "failed to create watcher")
	b := New(ErrWatchInit, "different message")
	assert.True(t, stderrors.Is(a, b))

	c := New(ErrWatchEvent, "other code")
	assert.False(t, stderrors.Is(a, c))
}
