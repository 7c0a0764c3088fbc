// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/link"
)

// waitTimeout bounds every wait in this package's tests.
const waitTimeout = 5 * time.Second

// recorder is an asynchronous Receiver that keeps every token delivered to it.
type recorder struct {
	mu  sync.Mutex
	got []link.Token
}

func (r *recorder) Deliver(t link.Token) {
	r.mu.Lock()
	r.got = append(r.got, t)
	r.mu.Unlock()
}

func (r *recorder) tokens() []link.Token {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]link.Token, len(r.got))
	copy(out, r.got)
	return out
}

// awaitWaiting polls l until it holds exactly the given queue depths.
// Backs off with iox.Backoff between polls.
func awaitWaiting(tb testing.TB, l *link.Link, receivers, senders int) {
	tb.Helper()
	deadline := time.Now().Add(waitTimeout)
	var bo iox.Backoff
	for {
		r, s := l.Waiting()
		if r == receivers && s == senders {
			return
		}
		if time.Now().After(deadline) {
			tb.Fatalf("link %q waiting = (%d, %d), want (%d, %d)", l.ID(), r, s, receivers, senders)
		}
		bo.Wait()
	}
}

// recvResult is what a background Receive reports.
type recvResult struct {
	name string
	tok  link.Token
	err  error
}

func mustRecv[T any](tb testing.TB, ch <-chan T) T {
	tb.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(waitTimeout):
		tb.Fatal("timed out waiting for result")
	}
	panic("unreachable")
}

func mustNotRecv[T any](tb testing.TB, ch <-chan T) {
	tb.Helper()
	select {
	case v := <-ch:
		tb.Fatalf("unexpected result: %v", v)
	case <-time.After(20 * time.Millisecond):
	}
}
