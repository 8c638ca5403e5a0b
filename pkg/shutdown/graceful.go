package shutdown

import (
	"context"
	"errors"
	"time"

	"github.com/honeycarbs/career-hunter/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Runner serves in the foreground until it is shut down
type Runner interface {
	Stoppable
	Run() error
}

// Serve runs srv until ctx is done, then stops srv followed by components within
// a shared timeout. It returns only once every component has stopped, because
// srv.Run returns as soon as its shutdown begins.
func Serve(ctx context.Context, srv Runner, timeout time.Duration, log *logging.Logger, components ...Stoppable) error {
	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		log.Info("shutdown signal received")

		stopCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		stopped <- Stop(stopCtx, append([]Stoppable{srv}, components...)...)
	}()

	if err := srv.Run(); err != nil {
		return err
	}

	if err := <-stopped; err != nil {
		log.Warn("graceful shutdown completed with error", "err", err)
		return err
	}
	log.Info("graceful shutdown completed successfully")
	return nil
}

// Stop shuts components down in order and joins their errors
func Stop(ctx context.Context, components ...Stoppable) error {
	var errs []error
	for _, c := range components {
		if c == nil {
			continue
		}
		if err := c.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
