// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link

import (
	"context"

	"code.hybscloud.com/kont"
	"github.com/sirupsen/logrus"
)

// procContext is what a process sees while its effects are dispatched:
// the cancellation scope and the registry used to resolve link names.
type procContext struct {
	ctx context.Context
	reg *Registry
	log *logrus.Entry
}

// linkDispatcher is the structural interface for link operations.
// DispatchLink blocks until the rendezvous completes or ctx ends.
type linkDispatcher interface {
	DispatchLink(pc *procContext) (kont.Resumed, error)
}

// In is the effect operation for an input step on a link.
// Perform(In{Link: id}) blocks until a sender rendezvouses on id.
type In struct {
	kont.Phantom[Token]
	Link string
}

// DispatchLink resolves the link and blocks in Receive.
func (op In) DispatchLink(pc *procContext) (kont.Resumed, error) {
	l, err := pc.reg.Lookup(op.Link)
	if err != nil {
		return nil, err
	}
	t, err := l.Receive(pc.ctx)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Out is the effect operation for an output step on a link.
// Perform(Out{Link: id}) blocks until a receiver rendezvouses on id.
type Out struct {
	kont.Phantom[struct{}]
	Link string
}

// DispatchLink resolves the link and blocks in Send.
func (op Out) DispatchLink(pc *procContext) (kont.Resumed, error) {
	l, err := pc.reg.Lookup(op.Link)
	if err != nil {
		return nil, err
	}
	if err := l.Send(pc.ctx); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// Choose is the effect operation for a guarded choice among inputs.
// Perform(Choose{Links: ids}) resumes with the token of the first link
// that fires.
type Choose struct {
	kont.Phantom[Token]
	Links []string
}

// DispatchLink resolves every candidate and waits on a Choice.
// Tokens that lose the race are logged; their senders have already
// completed.
func (op Choose) DispatchLink(pc *procContext) (kont.Resumed, error) {
	links := make([]*Link, 0, len(op.Links))
	for _, id := range op.Links {
		l, err := pc.reg.Lookup(id)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	c := NewChoice(links...)
	t, err := c.Wait(pc.ctx)
	if err != nil {
		return nil, err
	}
	if s := c.Surplus(); len(s) > 0 {
		pc.log.WithFields(logrus.Fields{
			"winner":  t.Link(),
			"surplus": len(s),
		}).Warn("choice received surplus rendezvous")
	}
	return t, nil
}
