package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireLock(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	ok, release, err := AcquireLock(ctx, client, "slotlock:doc-1:1742461200", SlotLockTTL)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, mr.Exists("slotlock:doc-1:1742461200"))

	again, _, err := AcquireLock(ctx, client, "slotlock:doc-1:1742461200", SlotLockTTL)
	require.NoError(t, err)
	assert.False(t, again)

	release()
	assert.False(t, mr.Exists("slotlock:doc-1:1742461200"))
}

func TestAcquireLockKeepsForeignLock(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	ok, release, err := AcquireLock(context.Background(), client, "slotlock:x", SlotLockTTL)
	require.NoError(t, err)
	require.True(t, ok)

	// The lock expired and someone else took it.
	require.NoError(t, mr.Set("slotlock:x", "other-owner"))
	release()
	got, err := mr.Get("slotlock:x")
	require.NoError(t, err)
	assert.Equal(t, "other-owner", got)
}

func TestAcquireLockWithoutClient(t *testing.T) {
	ok, release, err := AcquireLock(context.Background(), nil, "k", time.Second)
	assert.Error(t, err)
	assert.False(t, ok)
	release()
}

func TestStartOfWeek(t *testing.T) {
	wed := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), StartOfWeek(wed, time.UTC))

	sun := time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), StartOfWeek(sun, time.UTC))
}

func TestClockRoundTrip(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)
	assert.Equal(t, "09:30", FormatClock(m))

	_, err = ParseClock("9h30")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+1", 3600)
	d, err := ParseDate("2025-03-20", loc)
	require.NoError(t, err)
	assert.Equal(t, loc, d.Location())
	assert.Equal(t, 20, d.Day())

	_, err = ParseDate("20/03/2025", loc)
	assert.Error(t, err)
}

func TestGenerateAndVerifyToken(t *testing.T) {
	v, err := NewTokenVerifier("secret", "", "")
	require.NoError(t, err)

	tok, err := GenerateToken("secret", "user-1", "u@example.com", []string{"DOCTOR"}, time.Minute)
	require.NoError(t, err)
	claims, err := v.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.True(t, claims.HasRole("doctor"))

	_, err = NewTokenVerifier("", "", "")
	assert.Error(t, err)
}
