package session

import "sync"

// Registry tracks at most one voice handle per guild and provides the
// per-guild lock that keeps voice-affecting commands from interleaving
// destructively. Commands for different guilds never contend.
type Registry struct {
	mu     sync.Mutex
	guilds map[int64]*guildEntry
}

type guildEntry struct {
	cmdMu  sync.Mutex
	handle Handle
}

func NewRegistry() *Registry {
	return &Registry{guilds: make(map[int64]*guildEntry)}
}

func (r *Registry) entry(guildID int64) *guildEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.guilds[guildID]
	if e == nil {
		e = &guildEntry{}
		r.guilds[guildID] = e
	}
	return e
}

// Lock acquires the guild's command lock and returns its unlock func.
func (r *Registry) Lock(guildID int64) func() {
	e := r.entry(guildID)
	e.cmdMu.Lock()
	return e.cmdMu.Unlock
}

// Handle returns the guild's handle, or nil when none exists.
func (r *Registry) Handle(guildID int64) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e := r.guilds[guildID]; e != nil {
		return e.handle
	}
	return nil
}

// Set binds the guild's handle, replacing any previous one.
func (r *Registry) Set(guildID int64, h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.guilds[guildID]
	if e == nil {
		e = &guildEntry{}
		r.guilds[guildID] = e
	}
	e.handle = h
}

// Remove drops the guild's handle, if any.
func (r *Registry) Remove(guildID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e := r.guilds[guildID]; e != nil {
		e.handle = nil
	}
}

// Single returns the guild of the only connected handle. ok is false when
// zero or more than one handle is connected.
func (r *Registry) Single() (guildID int64, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for gid, e := range r.guilds {
		if e.handle != nil && e.handle.Connected() {
			guildID = gid
			n++
		}
	}
	return guildID, n == 1
}
