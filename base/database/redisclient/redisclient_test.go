package redisclient

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolSize(t *testing.T) {
	idle, active := Config{}.poolSize()
	assert.Equal(t, defaultMaxIdle, idle)
	assert.Equal(t, defaultMaxActive, active)

	cpu := runtime.NumCPU()
	idle, active = Config{PoolMultiplier: 4}.poolSize()
	assert.Equal(t, 4*cpu, active)
	assert.Equal(t, (4*cpu+3)/4, idle)

	idle, active = Config{PoolMultiplier: 0.0001}.poolSize()
	assert.Equal(t, 1, active)
	assert.Equal(t, 1, idle)
}

func TestConnectRedisUnreachable(t *testing.T) {
	// nothing listens on port 1
	_, err := ConnectRedis(Config{URI: "127.0.0.1:1"})
	require.Error(t, err)
}
