package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire_ZeroFilled(t *testing.T) {
	size := PageSize()
	data, release, err := Acquire(size)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = release()
	})

	require.Len(t, data, size)
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d is %#x, want zero-filled region", i, b)
		}
	}

	// The region must be writable.
	data[0] = 0xAB
	data[size-1] = 0xCD
	assert.Equal(t, byte(0xAB), data[0])
	assert.Equal(t, byte(0xCD), data[size-1])
}

func TestAcquire_RejectsNonPositive(t *testing.T) {
	_, _, err := Acquire(0)
	assert.ErrorIs(t, err, ErrAcquire)

	_, _, err = Acquire(-1)
	assert.ErrorIs(t, err, ErrAcquire)
}

func TestRound(t *testing.T) {
	page := PageSize()
	require.Positive(t, page)

	assert.Equal(t, page, Round(1))
	assert.Equal(t, page, Round(page))
	assert.Equal(t, 2*page, Round(page+1))
}

func TestRelease_Idempotent(t *testing.T) {
	data, release, err := Acquire(PageSize())
	require.NoError(t, err)
	require.NotNil(t, data)

	require.NoError(t, release())
	assert.NoError(t, release(), "second release is a no-op")
}
