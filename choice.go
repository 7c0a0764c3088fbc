// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link

import (
	"context"
	"strings"
	"sync"
)

// Choice is a single-use guarded external choice over several links.
// It commits to whichever candidate link rendezvouses first and
// withdraws its registration from the others.
//
// A sender may match a losing candidate between the first delivery and
// the withdrawal. That rendezvous has already completed for the sender,
// so its token is kept and reported by Surplus instead of being dropped.
type Choice struct {
	links []*Link
	inbox choiceInbox

	mu      sync.Mutex
	used    bool
	surplus []Token
}

// NewChoice creates a choice over links. Duplicate links are ignored.
func NewChoice(links ...*Link) *Choice {
	seen := make(map[*Link]struct{}, len(links))
	uniq := make([]*Link, 0, len(links))
	for _, l := range links {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		uniq = append(uniq, l)
	}
	return &Choice{
		links: uniq,
		// Each link delivers at most once per registration.
		inbox: make(choiceInbox, len(uniq)),
	}
}

// choiceInbox is the Receiver a Choice registers on its candidates.
// Keeping it unexported means only matchers can fill it, which Wait's
// pending count relies on.
type choiceInbox chan Token

func (in choiceInbox) Deliver(t Token) {
	in <- t
}

// Wait registers on every candidate and blocks until one fires.
//
// Registration stops early when a candidate matches a waiting sender
// synchronously. If ctx ends before any delivery, all registrations are
// withdrawn and the context error is returned; if a delivery is already
// guaranteed at that point, it is returned instead.
func (c *Choice) Wait(ctx context.Context) (Token, error) {
	c.mu.Lock()
	if c.used {
		c.mu.Unlock()
		panic("link: choice reused")
	}
	c.used = true
	c.mu.Unlock()

	if len(c.links) == 0 {
		<-ctx.Done()
		return Token{}, interrupted("", ctx.Err())
	}
	if err := ctx.Err(); err != nil {
		return Token{}, interrupted(c.name(), err)
	}

	registered := c.links[:0:0]
	for _, l := range c.links {
		l.RegisterAsync(c.inbox)
		registered = append(registered, l)
		if len(c.inbox) > 0 {
			break
		}
	}

	var (
		first Token
		won   bool
	)
	select {
	case first = <-c.inbox:
		won = true
	case <-ctx.Done():
	}

	pending := 0
	for _, l := range registered {
		if !l.CancelAsync(c.inbox) {
			pending++
		}
	}
	if won {
		pending--
	} else if pending > 0 {
		first = <-c.inbox
		pending--
		won = true
	}
	if !won {
		return Token{}, interrupted(c.name(), ctx.Err())
	}

	for ; pending > 0; pending-- {
		t := <-c.inbox
		c.mu.Lock()
		c.surplus = append(c.surplus, t)
		c.mu.Unlock()
	}
	return first, nil
}

// Surplus returns tokens delivered after the winning one.
// It is only meaningful once Wait has returned.
func (c *Choice) Surplus() []Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Token, len(c.surplus))
	copy(out, c.surplus)
	return out
}

func (c *Choice) name() string {
	ids := make([]string, len(c.links))
	for i, l := range c.links {
		ids[i] = l.id
	}
	return strings.Join(ids, "|")
}
