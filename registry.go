// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// Registry maps link identifiers to links for the lifetime of a program.
// Entries are never removed. The registry lock guards registration and
// lookup only; rendezvous traffic runs under each link's own mutex.
type Registry struct {
	mu    sync.RWMutex
	links map[string]*Link
	log   *logrus.Entry
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registry and process diagnostics.
func WithLogger(log *logrus.Entry) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		links: make(map[string]*Link),
		log:   logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithField("component", "link")
	return r
}

// Register stores l under its own identifier.
// Registering a second link with the same identifier replaces the first
// without error; units already holding the old link keep using it.
func (r *Registry) Register(l *Link) {
	r.mu.Lock()
	prev, ok := r.links[l.id]
	r.links[l.id] = l
	r.mu.Unlock()

	if ok && prev != l {
		r.log.WithFields(logrus.Fields{
			"link":     l.id,
			"serial":   l.serial,
			"replaced": prev.serial,
		}).Debug("link identifier re-registered")
		return
	}
	r.log.WithField("link", l.id).Debug("link registered")
}

// Declare returns the link registered under id, creating and registering
// it on first use.
func (r *Registry) Declare(id string) *Link {
	r.mu.RLock()
	l, ok := r.links[id]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	if l, ok = r.links[id]; !ok {
		l = NewLink(id)
		r.links[id] = l
	}
	r.mu.Unlock()
	if !ok {
		r.log.WithField("link", id).Debug("link declared")
	}
	return l
}

// Lookup returns the link registered under id.
// It fails with ErrUnknownLink if id was never registered.
func (r *Registry) Lookup(id string) (*Link, error) {
	r.mu.RLock()
	l, ok := r.links[id]
	r.mu.RUnlock()
	if !ok {
		return nil, unknownLink(id)
	}
	return l, nil
}

// All returns a snapshot of the registered links ordered by identifier.
func (r *Registry) All() []*Link {
	r.mu.RLock()
	out := make([]*Link, 0, len(r.links))
	for _, l := range r.links {
		out = append(out, l)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.links)
}

// Logger returns the registry logger.
func (r *Registry) Logger() *logrus.Entry {
	return r.log
}
