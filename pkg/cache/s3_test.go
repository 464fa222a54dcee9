package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/otastrings/otastrings/pkg/cache"
)

func TestNewS3Provider(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		p, err := cache.NewS3Provider(cache.S3Config{
			Region:    "us-east-1",
			Bucket:    "snapshots",
			Key:       "app/strings.json",
			AccessKey: "key",
			SecretKey: "secret",
		})
		require.NoError(t, err)
		require.NotNil(t, p)
	})

	t.Run("missing region", func(t *testing.T) {
		t.Parallel()

		_, err := cache.NewS3Provider(cache.S3Config{Bucket: "b", Key: "k"})
		require.ErrorIs(t, err, cache.ErrInvalidS3Config)
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()

		_, err := cache.NewS3Provider(cache.S3Config{Region: "us-east-1", Key: "k"})
		require.ErrorIs(t, err, cache.ErrInvalidS3Config)
	})

	t.Run("missing object key", func(t *testing.T) {
		t.Parallel()

		_, err := cache.NewS3Provider(cache.S3Config{Region: "us-east-1", Bucket: "b"})
		require.ErrorIs(t, err, cache.ErrInvalidS3Config)
	})
}
