package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sghaida/scopedi/di"
	"go.uber.org/zap"
)

// simConfig carries the run subcommand's knobs.
type simConfig struct {
	requests  int
	workers   int
	failEvery int
}

var errSimulatedFailure = errors.New("simulated downstream failure")

// requestHandler is what a real handler's dependency struct looks like: every
// field resolves from the request's scope, falling through to the root for
// process-wide bindings like the app name.
type requestHandler struct {
	Log       *zap.Logger `inject:"logger"`
	RequestID string      `inject:"request_id"`
	AppName   string      `inject:"app_name"`
}

// runSimulation provides the root bindings, fans requests out over a worker
// pool, and prints a summary. Each request runs inside its own scope, so the
// per-request logger and request ID never leak across requests or workers.
func runSimulation(cfg simConfig, log *zap.Logger, out io.Writer) error {
	if cfg.requests <= 0 || cfg.workers <= 0 {
		return errors.New("requests and workers must be positive")
	}

	injector := di.New()
	root := context.Background()

	// Composition root: process-wide bindings live in the shared root frame.
	injector.Provide(root, "logger", log)
	injector.Provide(root, "app_name", "reqsim")

	var handled, failed atomic.Int64

	handle := injector.Scoped(func(ctx context.Context) error {
		h := &requestHandler{}
		if err := injector.Fill(ctx, h); err != nil {
			return err
		}

		h.Log.Info("handling request",
			zap.String("app", h.AppName),
			zap.String("request_id", h.RequestID),
		)

		if fail, _ := injector.TryInject(ctx, "fail"); fail == true {
			h.Log.Warn("request failed", zap.String("request_id", h.RequestID))
			return errSimulatedFailure
		}
		return nil
	}, di.WithLabel("request"))

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < cfg.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				// One scope per request: the request ID, the tagged logger,
				// and the failure flag all die with it.
				ctx, scope := injector.EnterScope(root, di.WithLabel("request"))

				id := uuid.NewString()
				injector.Provide(ctx, "request_id", id)
				injector.Provide(ctx, "logger", log.With(zap.String("request_id", id)))
				if cfg.failEvery > 0 && n%cfg.failEvery == 0 {
					injector.Provide(ctx, "fail", true)
				}

				if err := handle(ctx); err != nil {
					failed.Add(1)
				}
				handled.Add(1)

				scope.Release()
			}
		}()
	}

	for n := 1; n <= cfg.requests; n++ {
		jobs <- n
	}
	close(jobs)
	wg.Wait()

	// The root frame is untouched by everything the requests provided.
	if _, ok := injector.TryInject(root, "request_id"); ok {
		return errors.New("request-scoped binding leaked into the root")
	}

	fmt.Fprintf(out, "handled %d requests across %d workers (%d failed)\n",
		handled.Load(), cfg.workers, failed.Load())
	return nil
}

// runShadowWalk prints the visible binding for one key while entering and
// unwinding three nested scopes.
func runShadowWalk(out io.Writer) error {
	injector := di.New()
	ctx := context.Background()

	show := func(ctx context.Context, at string) {
		v := injector.MustInject(ctx, "who")
		fmt.Fprintf(out, "%-18s -> %v\n", at, v)
	}

	injector.Provide(ctx, "who", "root")
	show(ctx, "root")

	ctx1, s1 := injector.EnterScope(ctx, di.WithLabel("outer"))
	injector.Provide(ctx1, "who", "outer")
	show(ctx1, "enter outer")

	ctx2, s2 := injector.EnterScope(ctx1, di.WithLabel("middle"))
	injector.Provide(ctx2, "who", "middle")
	show(ctx2, "enter middle")

	ctx3, s3 := injector.EnterScope(ctx2, di.WithLabel("inner"))
	injector.Provide(ctx3, "who", "inner")
	show(ctx3, "enter inner")

	s3.Release()
	show(ctx2, "release inner")

	s2.Release()
	show(ctx1, "release middle")

	s1.Release()
	show(ctx, "release outer")

	return nil
}
