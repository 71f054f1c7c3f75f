// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/yomira-press/internal/platform/apperr"
	"github.com/taibuivan/yomira-press/internal/platform/constants"
)

// # Session Repository

/*
RedisSessionRepository implements [SessionRepository] using Redis.

Layout:
  - auth:session:<token hash>       JSON session, expires with the refresh token
  - auth:user_sessions:<user id>    set of token hashes owned by the user

The index set may outlive individual sessions; stale members are pruned
whenever the set is read.
*/
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed [SessionRepository].
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

func userSessionsKey(userID string) string {
	return constants.RedisPrefixUserSessions + userID
}

/*
Create stores the session and indexes it under its owner.

Parameters:
  - context: context.Context
  - session: *Session

Returns:
  - error: Execution errors
*/
func (repository *RedisSessionRepository) Create(context context.Context, session *Session) error {
	timeToLive := time.Until(session.ExpiresAt)
	if timeToLive <= 0 {
		return fmt.Errorf("redis_session_create_failed: session already expired")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	// Both writes land together or not at all
	pipe := repository.client.TxPipeline()
	pipe.Set(context, sessionKey(session.TokenHash), payload, timeToLive)
	pipe.SAdd(context, userSessionsKey(session.UserID), session.TokenHash)
	pipe.Expire(context, userSessionsKey(session.UserID), RefreshTokenTTL)

	if _, err := pipe.Exec(context); err != nil {
		return fmt.Errorf("redis_session_create_failed: %w", err)
	}

	return nil
}

/*
FindByTokenHash loads a session.

Description: Expired sessions have already been evicted by Redis, so a
missing key covers both expiry and revocation.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - *Session: Hydrated entity
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	payload, err := repository.client.Get(context, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Session")
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}

	return session, nil
}

/*
ListByUser returns every live session of the user, newest first.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []*Session: Possibly empty
  - error: Connectivity errors
*/
func (repository *RedisSessionRepository) ListByUser(context context.Context, userID string) ([]*Session, error) {
	hashes, err := repository.client.SMembers(context, userSessionsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_session_index_failed: %w", err)
	}

	sessions := make([]*Session, 0, len(hashes))
	if len(hashes) == 0 {
		return sessions, nil
	}

	keys := make([]string, len(hashes))
	for i, hash := range hashes {
		keys[i] = sessionKey(hash)
	}

	values, err := repository.client.MGet(context, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_session_mget_failed: %w", err)
	}

	stale := make([]any, 0)
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			stale = append(stale, hashes[i])
			continue
		}

		session := &Session{}
		if err := json.Unmarshal([]byte(raw), session); err != nil {
			return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
		}
		sessions = append(sessions, session)
	}

	if len(stale) > 0 {
		_ = repository.client.SRem(context, userSessionsKey(userID), stale...).Err()
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	return sessions, nil
}

/*
Revoke deletes one session and drops it from the owner's index.

Parameters:
  - context: context.Context
  - userID: string
  - tokenHash: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisSessionRepository) Revoke(context context.Context, userID, tokenHash string) error {
	pipe := repository.client.TxPipeline()
	pipe.Del(context, sessionKey(tokenHash))
	pipe.SRem(context, userSessionsKey(userID), tokenHash)

	if _, err := pipe.Exec(context); err != nil {
		return fmt.Errorf("redis_session_revoke_failed: %w", err)
	}

	return nil
}

// RevokeAll deletes every session of the user together with the index.
func (repository *RedisSessionRepository) RevokeAll(context context.Context, userID string) error {
	return repository.revokeWhere(context, userID, func(string) bool { return true }, true)
}

// RevokeOthers deletes every session of the user except keepTokenHash.
func (repository *RedisSessionRepository) RevokeOthers(context context.Context, userID, keepTokenHash string) error {
	return repository.revokeWhere(context, userID, func(hash string) bool { return hash != keepTokenHash }, false)
}

// revokeWhere deletes the indexed sessions selected by match. When dropIndex
// is set the index key itself is removed as well.
func (repository *RedisSessionRepository) revokeWhere(context context.Context, userID string, match func(string) bool, dropIndex bool) error {
	indexKey := userSessionsKey(userID)

	hashes, err := repository.client.SMembers(context, indexKey).Result()
	if err != nil {
		return fmt.Errorf("redis_session_index_failed: %w", err)
	}

	keys := make([]string, 0, len(hashes))
	members := make([]any, 0, len(hashes))
	for _, hash := range hashes {
		if match(hash) {
			keys = append(keys, sessionKey(hash))
			members = append(members, hash)
		}
	}

	pipe := repository.client.TxPipeline()
	if len(keys) > 0 {
		pipe.Del(context, keys...)
	}
	if dropIndex {
		pipe.Del(context, indexKey)
	} else if len(members) > 0 {
		pipe.SRem(context, indexKey, members...)
	}

	if _, err := pipe.Exec(context); err != nil {
		return fmt.Errorf("redis_session_revoke_failed: %w", err)
	}

	return nil
}
