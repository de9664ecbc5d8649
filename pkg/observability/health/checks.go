/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package health

import (
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"

	"github.com/anbesabank/fyda-otp/pkg/observability/health/healthutil"
	redischeck "github.com/anbesabank/fyda-otp/pkg/observability/health/redis"
	"github.com/anbesabank/fyda-otp/pkg/storage/redis"
)

const checkTimeout = 5 * time.Second

type Config struct {
	// StoreType is the session store in use (mem, redis).
	StoreType string
	// RedisClient is set when sessions are kept in redis.
	RedisClient *redis.Client
}

// NewHandler returns the /health handler reporting the state of the session store.
func NewHandler(config *Config) http.Handler {
	monitor := healthutil.NewStoreMonitor(config.StoreType)

	opts := []health.CheckerOption{
		health.WithTimeout(checkTimeout),
	}

	if config.RedisClient != nil {
		opts = append(opts, health.WithCheck(health.Check{
			Name:               healthutil.SessionStoreCheck,
			Check:              monitor.Wrap(redischeck.New(config.RedisClient)),
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		}))
	}

	return health.NewHandler(
		health.NewChecker(opts...),
		health.WithResultWriter(monitor),
	)
}
