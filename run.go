// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link

import (
	"context"

	"code.hybscloud.com/kont"
	"golang.org/x/sync/errgroup"
)

// Run executes two Cont-world processes in parallel, one goroutine each,
// and returns both results. The first failure cancels the other process.
func Run[A, B any](ctx context.Context, reg *Registry, a kont.Eff[A], b kont.Eff[B]) (A, B, error) {
	return RunExpr(ctx, reg, Reify(a), Reify(b))
}

// RunExpr executes two Expr-world processes in parallel.
func RunExpr[A, B any](ctx context.Context, reg *Registry, a kont.Expr[A], b kont.Expr[B]) (A, B, error) {
	var (
		resultA A
		resultB B
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resultA, err = ExecExpr(gctx, reg, a)
		return err
	})
	g.Go(func() (err error) {
		resultB, err = ExecExpr(gctx, reg, b)
		return err
	})
	err := g.Wait()
	return resultA, resultB, err
}

// Par is parallel composition: it runs every process on its own
// goroutine and waits for all of them. The first failure cancels the
// remaining processes and is returned.
func Par(ctx context.Context, reg *Registry, procs ...kont.Eff[struct{}]) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range procs {
		g.Go(func() error {
			_, err := Exec(gctx, reg, p)
			return err
		})
	}
	return g.Wait()
}
