/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/anbesabank/fyda-otp/pkg/restapi/resterr"
	"github.com/anbesabank/fyda-otp/pkg/service/otpflow"
	"github.com/anbesabank/fyda-otp/pkg/storage/redis"
)

const (
	keyPrefix = "fydaotpsession"
)

var ErrSessionKeyDuplication = errors.New("session key duplication")

// Store stores form sessions in redis.
type Store struct {
	ttl         time.Duration
	redisClient *redis.Client
}

// New creates a new instance of Store.
func New(redisClient *redis.Client, ttl time.Duration) *Store {
	return &Store{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (s *Store) Create(ctx context.Context, session *otpflow.Session) error {
	key := resolveRedisKey(session.ID)

	ok, err := s.redisClient.API().SetNX(ctx, key, s.newDocument(session), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	if !ok {
		return ErrSessionKeyDuplication
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*otpflow.Session, error) {
	var doc redisDocument

	if err := s.redisClient.API().Get(ctx, resolveRedisKey(id)).Scan(&doc); err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, resterr.ErrDataNotFound
		}

		return nil, fmt.Errorf("find: %w", err)
	}

	if doc.ExpireAt.Before(time.Now().UTC()) {
		return nil, resterr.ErrDataNotFound
	}

	return doc.Session, nil
}

// Update replaces the stored session and extends its expiry.
// Returns resterr.ErrDataNotFound when the session has already expired.
func (s *Store) Update(ctx context.Context, session *otpflow.Session) error {
	ok, err := s.redisClient.API().SetXX(ctx, resolveRedisKey(session.ID), s.newDocument(session), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	if !ok {
		return resterr.ErrDataNotFound
	}

	return nil
}

func (s *Store) newDocument(session *otpflow.Session) *redisDocument {
	return &redisDocument{
		ExpireAt: time.Now().UTC().Add(s.ttl),
		Session:  session,
	}
}

func resolveRedisKey(id string) string {
	return fmt.Sprintf("%s-%s", keyPrefix, id)
}
