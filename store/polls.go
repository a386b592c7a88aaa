// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/danielhkuo/book-poll/models"
)

const (
	pollPrefix    = "poll:"
	sessionPrefix = "session:"
)

// PollStore reads and writes poll and session documents as JSON in a KV.
type PollStore struct {
	kv    KV
	locks keyedMutex
}

func NewPollStore(kv KV) *PollStore {
	return &PollStore{kv: kv, locks: keyedMutex{locks: make(map[string]*refLock)}}
}

// GetPoll returns ErrNotFound if the poll does not exist
func (s *PollStore) GetPoll(ctx context.Context, id string) (*models.Poll, error) {
	var poll models.Poll
	if err := s.get(ctx, pollPrefix+id, &poll); err != nil {
		return nil, err
	}
	return &poll, nil
}

func (s *PollStore) SavePoll(ctx context.Context, poll *models.Poll) error {
	return s.set(ctx, pollPrefix+poll.ID, poll)
}

func (s *PollStore) DeletePoll(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, pollPrefix+id)
}

// UpdatePoll loads a poll, applies fn and saves the result. Updates to the
// same poll are serialized within this process only. If fn returns an
// error nothing is saved.
func (s *PollStore) UpdatePoll(ctx context.Context, id string, fn func(*models.Poll) error) (*models.Poll, error) {
	unlock := s.locks.lock(pollPrefix + id)
	defer unlock()

	poll, err := s.GetPoll(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(poll); err != nil {
		return nil, err
	}
	if err := s.SavePoll(ctx, poll); err != nil {
		return nil, err
	}
	return poll, nil
}

func (s *PollStore) GetSession(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	if err := s.get(ctx, sessionPrefix+id, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *PollStore) SaveSession(ctx context.Context, session *models.Session) error {
	return s.set(ctx, sessionPrefix+session.ID, session)
}

func (s *PollStore) get(ctx context.Context, key string, v any) error {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (s *PollStore) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, data)
}

// keyedMutex hands out one mutex per key and forgets it once unused.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &refLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
