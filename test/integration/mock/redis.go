package mock

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// NewRedis starts an in-process redis server and returns a client connected
// to it. The server lives until the test process exits.
func NewRedis() *redis.Client {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic("failed to start test redis: " + err.Error())
	}

	return redis.NewClient(&redis.Options{
		Addr: miniRedis.Addr(),
	})
}
