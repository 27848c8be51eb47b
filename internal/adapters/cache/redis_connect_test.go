package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectParsesURL(t *testing.T) {
	client, err := Connect(context.Background(), "redis://localhost:6379/2")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	opt := client.Options()
	assert.Equal(t, "localhost:6379", opt.Addr)
	assert.Equal(t, 2, opt.DB)
	assert.Equal(t, 10, opt.PoolSize)
}

func TestConnectRejectsNonURLForm(t *testing.T) {
	_, err := Connect(context.Background(), "localhost:6379")
	assert.Error(t, err, "bare host:port must be rejected at bootstrap")

	_, err = Connect(context.Background(), "")
	assert.Error(t, err)
}
