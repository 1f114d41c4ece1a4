// Package tenantlock provides keyed mutual exclusion for per-tenant
// read-modify-write cycles. Locks for different tenants never contend.
package tenantlock

import "sync"

// Keyed is a set of named mutexes, one per tenant. The zero value is not
// usable; call New.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty lock set.
func New() *Keyed {
	return &Keyed{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the given tenant, creating it on first use.
// A mutex lives for the process lifetime; the set is bounded by the number
// of distinct tenants seen.
func (k *Keyed) Lock(tenantID string) {
	k.get(tenantID).Lock()
}

// Unlock releases the mutex for the given tenant.
func (k *Keyed) Unlock(tenantID string) {
	k.get(tenantID).Unlock()
}

func (k *Keyed) get(tenantID string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	lock, ok := k.locks[tenantID]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[tenantID] = lock
	}
	return lock
}
