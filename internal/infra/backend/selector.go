package backend

import "sync"

// Factory builds a remote store bound to one owner identity.
type Factory func(ownerID string) Store

// Selector picks the backend for the current session: an empty owner identity
// yields the shared local store, anything else a remote store bound to that
// owner. The last (owner, store) pair is cached; changing identity, including
// to or from anonymous, discards the cache and constructs anew.
type Selector struct {
	mu        sync.Mutex
	local     Store
	newRemote Factory

	cachedOwner string
	cached      Store
	bound       bool
}

func NewSelector(local Store, newRemote Factory) *Selector {
	return &Selector{local: local, newRemote: newRemote}
}

func (s *Selector) Select(ownerID string) Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bound && s.cachedOwner == ownerID {
		return s.cached
	}

	var st Store
	if ownerID == "" {
		st = s.local
	} else {
		st = s.newRemote(ownerID)
	}

	s.cachedOwner = ownerID
	s.cached = st
	s.bound = true
	return st
}

// ClearCache forces the next Select to reconstruct.
func (s *Selector) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cachedOwner = ""
	s.cached = nil
	s.bound = false
}

// Local exposes the device-local store directly; the migration routine reads
// from it regardless of the active session.
func (s *Selector) Local() Store {
	return s.local
}
