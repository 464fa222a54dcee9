package redisconn_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/otastrings/otastrings/pkg/redisconn"
)

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := redisconn.Connect(context.Background(), "not-a-url")
	require.ErrorIs(t, err, redisconn.ErrInvalidURL)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := redisconn.Connect(ctx, "redis://127.0.0.1:1/0",
		redisconn.WithDialTimeout(100*time.Millisecond),
		redisconn.WithRetry(1, time.Millisecond))
	require.ErrorIs(t, err, redisconn.ErrConnectionFailed)
}
