/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
)

const (
	// SessionStoreFlagName is the session store type.
	SessionStoreFlagName = "session-store"
	// SessionStoreEnvKey is the session store type.
	SessionStoreEnvKey = "FYDA_OTP_SESSION_STORE"
	// SessionStoreFlagUsage describes the usage.
	SessionStoreFlagUsage = "Where form sessions are kept. Supported options: mem, redis. Default: mem." +
		" Alternatively, this can be set with the following environment variable: " + SessionStoreEnvKey

	// SessionTTLFlagName is the session lifetime.
	SessionTTLFlagName = "session-ttl"
	// SessionTTLEnvKey is the session lifetime.
	SessionTTLEnvKey = "FYDA_OTP_SESSION_TTL"
	// SessionTTLFlagUsage describes the usage.
	SessionTTLFlagUsage = "Lifetime of an idle form session, e.g. 30m. Default: 30m." +
		" Alternatively, this can be set with the following environment variable: " + SessionTTLEnvKey

	// RedisURLFlagName is the list of redis addresses.
	RedisURLFlagName = "redis-url"
	// RedisURLEnvKey is the list of redis addresses.
	RedisURLEnvKey = "FYDA_OTP_REDIS_URL"
	// RedisURLFlagUsage describes the usage.
	RedisURLFlagUsage = "Comma-separated list of redis addresses (host:port). Required for the redis session store." +
		" Alternatively, this can be set with the following environment variable: " + RedisURLEnvKey

	// RedisPasswordFlagName is the redis password.
	RedisPasswordFlagName = "redis-password"
	// RedisPasswordEnvKey is the redis password.
	RedisPasswordEnvKey = "FYDA_OTP_REDIS_PASSWORD" //nolint:gosec
	// RedisPasswordFlagUsage describes the usage.
	RedisPasswordFlagUsage = "Redis password." +
		" Alternatively, this can be set with the following environment variable: " + RedisPasswordEnvKey

	// RedisDisableTLSFlagName disables TLS towards redis.
	RedisDisableTLSFlagName = "redis-disable-tls"
	// RedisDisableTLSEnvKey disables TLS towards redis.
	RedisDisableTLSEnvKey = "FYDA_OTP_REDIS_DISABLE_TLS"
	// RedisDisableTLSFlagUsage describes the usage.
	RedisDisableTLSFlagUsage = "Disable TLS towards redis. Possible values [true] [false]. Defaults to false." +
		" Alternatively, this can be set with the following environment variable: " + RedisDisableTLSEnvKey

	// SessionStoreTimeoutFlagName is the session store timeout.
	SessionStoreTimeoutFlagName = "session-store-timeout"
	// SessionStoreTimeoutEnvKey is the session store timeout.
	SessionStoreTimeoutEnvKey = "FYDA_OTP_SESSION_STORE_TIMEOUT"
	// SessionStoreTimeoutFlagUsage describes the usage.
	SessionStoreTimeoutFlagUsage = "Total time in seconds to wait until redis is available before giving up." +
		" Default: 30 seconds." +
		" Alternatively, this can be set with the following environment variable: " + SessionStoreTimeoutEnvKey

	// SessionStoreTimeoutDefault is the default session store timeout in seconds.
	SessionStoreTimeoutDefault = 30

	// SessionTTLDefault is the default session lifetime.
	SessionTTLDefault = 30 * time.Minute
)

// Session store types.
const (
	SessionStoreMem   = "mem"
	SessionStoreRedis = "redis"
)

// SessionStoreParameters holds session store configuration.
type SessionStoreParameters struct {
	Type          string
	TTL           time.Duration
	RedisAddrs    []string
	RedisPassword string
	RedisTLS      bool
	Timeout       uint64
}

// Flags registers session store flags.
func Flags(cmd *cobra.Command) {
	cmd.Flags().StringP(SessionStoreFlagName, "", "", SessionStoreFlagUsage)
	cmd.Flags().StringP(SessionTTLFlagName, "", "", SessionTTLFlagUsage)
	cmd.Flags().StringSliceP(RedisURLFlagName, "", []string{}, RedisURLFlagUsage)
	cmd.Flags().StringP(RedisPasswordFlagName, "", "", RedisPasswordFlagUsage)
	cmd.Flags().StringP(RedisDisableTLSFlagName, "", "", RedisDisableTLSFlagUsage)
	cmd.Flags().StringP(SessionStoreTimeoutFlagName, "", "", SessionStoreTimeoutFlagUsage)
}

// SessionStoreParams fetches the session store parameters configured for this command.
func SessionStoreParams(cmd *cobra.Command) (*SessionStoreParameters, error) {
	params := &SessionStoreParameters{
		Type: strings.ToLower(cmdutils.GetUserSetOptionalVarFromString(cmd, SessionStoreFlagName, SessionStoreEnvKey)),
		TTL:  SessionTTLDefault,
	}

	if params.Type == "" {
		params.Type = SessionStoreMem
	}

	if params.Type != SessionStoreMem && params.Type != SessionStoreRedis {
		return nil, fmt.Errorf("%s is not a valid session store type. "+
			"run start --help to see the available options", params.Type)
	}

	if ttl := cmdutils.GetUserSetOptionalVarFromString(cmd, SessionTTLFlagName, SessionTTLEnvKey); ttl != "" {
		var err error

		params.TTL, err = time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("failed to parse sessionTTL %s: %w", ttl, err)
		}

		if params.TTL <= 0 {
			return nil, fmt.Errorf("sessionTTL must be positive: %s", ttl)
		}
	}

	if params.Type == SessionStoreRedis {
		params.RedisAddrs = cmdutils.GetUserSetOptionalCSVVar(cmd, RedisURLFlagName, RedisURLEnvKey)
		if len(params.RedisAddrs) == 0 {
			return nil, fmt.Errorf("%s is required for the redis session store", RedisURLFlagName)
		}

		params.RedisPassword = cmdutils.GetUserSetOptionalVarFromString(cmd, RedisPasswordFlagName, RedisPasswordEnvKey)
		params.RedisTLS = true

		if disableTLS := cmdutils.GetUserSetOptionalVarFromString(cmd, RedisDisableTLSFlagName,
			RedisDisableTLSEnvKey); disableTLS != "" {
			disabled, err := strconv.ParseBool(disableTLS)
			if err != nil {
				return nil, fmt.Errorf("failed to parse redisDisableTLS %s: %w", disableTLS, err)
			}

			params.RedisTLS = !disabled
		}
	}

	timeout := cmdutils.GetUserSetOptionalVarFromString(cmd, SessionStoreTimeoutFlagName, SessionStoreTimeoutEnvKey)
	if timeout == "" {
		timeout = strconv.Itoa(SessionStoreTimeoutDefault)
	}

	var err error

	params.Timeout, err = strconv.ParseUint(timeout, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sessionStoreTimeout %s: %w", timeout, err)
	}

	return params, nil
}
