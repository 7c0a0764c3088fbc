// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scenario

import (
	"context"
	"fmt"
	"sync"
	"time"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/link"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Report summarizes a scenario run.
type Report struct {
	RunID   string
	Elapsed time.Duration
	// Matches is the per-link match count after the run.
	Matches map[string]uint64
	// ChoiceWins counts choices that committed to a link.
	ChoiceWins int
	// ChoiceSurplus counts rendezvous absorbed by a choice after it had
	// already committed.
	ChoiceSurplus int
	// ChoiceIdle counts choices withdrawn without any delivery.
	ChoiceIdle int
}

// Run declares every link of sc in reg and drives the workload to
// completion. Pair traffic runs as parallel processes; choices run
// once pair traffic is done.
func Run(ctx context.Context, reg *link.Registry, sc Scenario) (Report, error) {
	rep := Report{RunID: uuid.New().String(), Matches: make(map[string]uint64)}
	log := reg.Logger().WithField("run", rep.RunID)

	if sc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sc.Timeout)
		defer cancel()
	}

	for _, ls := range sc.Links {
		reg.Declare(ls.ID)
	}
	for _, cs := range sc.Choices {
		for _, id := range cs.Links {
			reg.Declare(id)
		}
	}

	start := time.Now()
	if err := runPairs(ctx, reg, sc.Links); err != nil {
		return rep, fmt.Errorf("run %s: %w", rep.RunID, err)
	}
	log.WithField("links", len(sc.Links)).Debug("pair traffic done")

	for _, cs := range sc.Choices {
		if err := runChoice(ctx, reg, cs, &rep); err != nil {
			return rep, fmt.Errorf("run %s: %w", rep.RunID, err)
		}
	}
	rep.Elapsed = time.Since(start)

	for _, l := range reg.All() {
		rep.Matches[l.ID()] = l.Matches()
	}
	log.WithFields(logrus.Fields{
		"elapsed":   rep.Elapsed,
		"wins":      rep.ChoiceWins,
		"surplus":   rep.ChoiceSurplus,
		"idle":      rep.ChoiceIdle,
		"linkCount": len(rep.Matches),
	}).Info("scenario finished")
	return rep, nil
}

func runPairs(ctx context.Context, reg *link.Registry, specs []LinkSpec) error {
	var procs []kont.Eff[struct{}]
	for _, ls := range specs {
		for i := 0; i < ls.Pairs; i++ {
			procs = append(procs,
				link.OutThen(ls.ID, link.Done(struct{}{})),
				link.InThen(ls.ID, link.Done(struct{}{})),
			)
		}
	}
	return link.Par(ctx, reg, procs...)
}

// runChoice starts cs.Count choices and as many senders. Every sender
// is absorbed by some choice, either as its winner or as surplus, so
// the senders always finish; choices left without a sender are then
// withdrawn and counted as idle.
func runChoice(ctx context.Context, reg *link.Registry, cs ChoiceSpec, rep *Report) error {
	links := make([]*link.Link, len(cs.Links))
	for i, id := range cs.Links {
		l, err := reg.Lookup(id)
		if err != nil {
			return err
		}
		links[i] = l
	}

	chooseCtx, stopChoosing := context.WithCancel(ctx)
	defer stopChoosing()

	var (
		mu      sync.Mutex
		choices sync.WaitGroup
	)
	for i := 0; i < cs.Count; i++ {
		choices.Add(1)
		go func() {
			defer choices.Done()
			c := link.NewChoice(links...)
			_, err := c.Wait(chooseCtx)
			surplus := len(c.Surplus())
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				rep.ChoiceIdle++
				return
			}
			rep.ChoiceWins++
			rep.ChoiceSurplus += surplus
		}()
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < cs.Count; i++ {
		l := links[i%len(links)]
		g.Go(func() error { return l.Send(gctx) })
	}
	err := g.Wait()
	stopChoosing()
	choices.Wait()
	return err
}
