package cronrunner

import (
	"context"

	"toy-exchange/utils"

	"github.com/robfig/cron/v3"
)

type Runner struct {
	cron    *cron.Cron
	baseCtx context.Context
}

// New creates a seconds-enabled runner. Jobs receive baseCtx.
func New(baseCtx context.Context) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Runner{
		cron:    cron.New(cron.WithSeconds()),
		baseCtx: baseCtx,
	}
}

func (r *Runner) Add(spec string, job func(context.Context)) (cron.EntryID, error) {
	return r.cron.AddFunc(spec, func() {
		if r.baseCtx.Err() != nil {
			return
		}
		job(r.baseCtx)
	})
}

func (r *Runner) Start() {
	utils.Info("cron started", map[string]any{"entries": len(r.cron.Entries())})
	r.cron.Start()
}

// Stop waits for running jobs to finish
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	utils.Info("cron stopped", nil)
}

// ExpirySweep returns a job that ends listings whose time has run out
func ExpirySweep(expire func() []string) func(context.Context) {
	return func(context.Context) {
		ids := expire()
		utils.Debug("expiry sweep finished", map[string]any{"expired": len(ids)})
	}
}
