// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link_test

import (
	"context"
	"testing"

	"code.hybscloud.com/link"
)

// BenchmarkSendReceive measures a blocking rendezvous between two goroutines.
func BenchmarkSendReceive(b *testing.B) {
	b.ReportAllocs()
	l := link.NewLink("bench")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, err := l.Receive(ctx); err != nil {
				return
			}
		}
	}()
	for b.Loop() {
		if err := l.Send(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
	cancel()
	<-done
}

// BenchmarkRegisterTrySend measures an asynchronous registration matched
// by a non-blocking send on one goroutine.
func BenchmarkRegisterTrySend(b *testing.B) {
	b.ReportAllocs()
	l := link.NewLink("bench")
	r := &recorder{}
	for b.Loop() {
		l.RegisterAsync(r)
		if err := l.TrySend(); err != nil {
			b.Fatal(err)
		}
		r.got = r.got[:0]
	}
}

// BenchmarkRegisterCancel measures the choice retraction path.
func BenchmarkRegisterCancel(b *testing.B) {
	b.ReportAllocs()
	l := link.NewLink("bench")
	r := &recorder{}
	for b.Loop() {
		l.RegisterAsync(r)
		l.CancelAsync(r)
	}
}
