package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jbeshir/star-reviews/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestMustGetEnv(t *testing.T) {
	ctx := testContext()

	t.Setenv("TEST_STRING", "hygraph")
	t.Setenv("TEST_INT", "8080")
	t.Setenv("TEST_BOOL", "TRUE")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_STRINGS", "reviews.example.com, www.reviews.example.com")
	t.Setenv("TEST_EMPTY_STRINGS", "")

	assert.Equal(t, "hygraph", MustGetEnvAsString(ctx, "TEST_STRING"))
	assert.Equal(t, 8080, MustGetEnvAsInt(ctx, "TEST_INT"))
	assert.True(t, MustGetEnvAsBoolean(ctx, "TEST_BOOL"))
	assert.Equal(t, 90*time.Second, MustGetEnvAsDuration(ctx, "TEST_DURATION"))
	assert.Equal(t, []string{"reviews.example.com", "www.reviews.example.com"}, MustGetEnvAsStrings(ctx, "TEST_STRINGS"))
	assert.Equal(t, []string{""}, MustGetEnvAsStrings(ctx, "TEST_EMPTY_STRINGS"))
}

func TestMustGetEnv_Panics(t *testing.T) {
	ctx := testContext()

	t.Setenv("TEST_BAD_INT", "eighty")
	t.Setenv("TEST_BAD_BOOL", "yes")
	t.Setenv("TEST_BAD_DURATION", "soon")

	assert.Panics(t, func() { MustGetEnvAsString(ctx, "TEST_DEFINITELY_UNSET_VARIABLE") })
	assert.Panics(t, func() { MustGetEnvAsInt(ctx, "TEST_BAD_INT") })
	assert.Panics(t, func() { MustGetEnvAsBoolean(ctx, "TEST_BAD_BOOL") })
	assert.Panics(t, func() { MustGetEnvAsDuration(ctx, "TEST_BAD_DURATION") })
}
