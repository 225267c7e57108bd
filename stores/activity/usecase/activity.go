package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain/activity"
)

const notifyTimeout = 3 * time.Second

type impl struct {
	repo       activity.Repo
	sinks      []activity.Sink
	workerPool *goroutines.Pool
}

// New returns the activity usecase. Events are stored synchronously and pushed to
// sinks on a worker pool, so a slow sink never holds up the caller.
func New(repo activity.Repo, sinks ...activity.Sink) activity.Usecase {
	return &impl{
		repo:       repo,
		sinks:      sinks,
		workerPool: goroutines.NewPool(8, goroutines.WithTaskQueueLength(256), goroutines.WithPreAllocWorkers(2)),
	}
}

func (im *impl) Publish(c ctx.Ctx, events ...activity.Event) {
	for _, e := range events {
		if len(e.Id) == 0 {
			e.Id = uuid.NewString()
		}
		e.Account = e.Account.ToLower()

		if err := im.repo.Insert(c, e); err != nil {
			c.WithFields(log.Fields{
				"type": e.Type,
				"err":  err,
			}).Error("repo.Insert failed")
		}

		for _, sink := range im.sinks {
			sink, e := sink, e
			if err := im.workerPool.ScheduleWithTimeout(notifyTimeout, func() {
				if err := sink.Notify(c, e); err != nil {
					c.WithFields(log.Fields{
						"type": e.Type,
						"err":  err,
					}).Warn("sink.Notify failed")
				}
			}); err != nil {
				c.WithField("err", err).Warn("workerPool.ScheduleWithTimeout failed")
			}
		}
	}
}

func (im *impl) Search(c ctx.Ctx, opts ...activity.SearchOptionsFunc) ([]*activity.Event, error) {
	res, err := im.repo.Search(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.Search failed")
		return nil, err
	}
	return res, nil
}
