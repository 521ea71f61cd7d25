package main

import (
	"log"
	"time"
)

const (
	reaperInterval  = time.Minute
	roomIdleTimeout = 5 * time.Minute
)

// startReaper wakes on the given interval and deletes rooms that have
// sat with no members past the idle timeout. Runs until stop is closed.
func (s *ChatServer) startReaper(interval, timeout time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweepIdleRooms(timeout)
		case <-stop:
			return
		}
	}
}

// sweepIdleRooms removes every empty, long-idle room outright: no
// tombstone, no notification. A client mid-poll sees its next call fail
// with room-not-found. User rows still naming a deleted room are left
// alone. A failed persist is logged and swallowed; a sweep must never
// take the server down.
func (s *ChatServer) sweepIdleRooms(timeout time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for name, rm := range s.rooms {
		if len(rm.users) == 0 && now.Sub(rm.lastActive) > timeout {
			delete(s.rooms, name)
			log.Printf("Room '%s' removed for inactivity", name)
		}
	}

	if err := s.saveAllUsersLocked(); err != nil {
		log.Printf("reaper: persisting users after sweep failed: %v", err)
	}
}
