// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package supervisor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// fakeService is a controllable suture.Service.
type fakeService struct {
	name     string
	starts   atomic.Int32
	fails    atomic.Int32
	mu       sync.Mutex
	maxFails int32
}

func newFakeService(name string) *fakeService {
	return &fakeService{name: name}
}

func (s *fakeService) Serve(ctx context.Context) error {
	s.starts.Add(1)

	s.mu.Lock()
	maxFails := s.maxFails
	s.mu.Unlock()

	if maxFails > 0 && s.fails.Add(1) <= maxFails {
		return errors.New("simulated failure")
	}

	<-ctx.Done()
	return ctx.Err()
}

// failTimes makes the next n runs fail immediately.
func (s *fakeService) failTimes(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxFails = int32(n)
}

func (s *fakeService) String() string {
	return s.name
}
