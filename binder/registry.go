package main

import (
	"log"
	"sync"

	"distchat/types"
)

// Registry maps a procedure name to the host and port it was last
// registered at. A second registration for the same name silently
// overwrites the first, records never expire, and nothing checks that a
// registered endpoint is still alive. Callers that resolve a crashed
// process get a stale address; that is the contract.
type Registry struct {
	mu         sync.RWMutex
	procedures map[string]types.ServiceRecord
}

func NewRegistry() *Registry {
	return &Registry{procedures: make(map[string]types.ServiceRecord)}
}

func (r *Registry) Register(name, host string, port int) {
	r.mu.Lock()
	r.procedures[name] = types.ServiceRecord{Name: name, Host: host, Port: port}
	r.mu.Unlock()
	log.Printf("Procedure %s registered at %s:%d", name, host, port)
}

// Lookup returns the most recent record for name. A miss is a normal
// result, not an error.
func (r *Registry) Lookup(name string) (types.ServiceRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, exists := r.procedures[name]
	return record, exists
}
