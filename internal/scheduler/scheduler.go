package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/example/srsqueue/internal/metrics"
	"github.com/example/srsqueue/internal/queue"
)

// Default notification window, inclusive
const (
	DefaultNotificationStartHour = 4
	DefaultNotificationEndHour   = 18
)

// Notifier sends a due reminder
type Notifier interface {
	SendReminders(count int) error
}

// DueCounterI is the part of queue.DueCounter the jobs need
type DueCounterI interface {
	Update(ctx context.Context, skipServer bool) (int, error)
	Count() int
}

// QueueI is the part of queue.Queue the jobs need
type QueueI interface {
	FetchNext(ctx context.Context, opts queue.NextOptions) error
	AddItems(ctx context.Context, opts queue.AddOptions) (queue.AddResult, error)
}

// FlusherI drains the review outbox
type FlusherI interface {
	Flush(ctx context.Context) (int, error)
}

// Config holds job intervals and the reminder window
type Config struct {
	DueCountInterval time.Duration
	FetchInterval    time.Duration
	FlushInterval    time.Duration
	ReminderInterval time.Duration
	FetchLimit       int
	AddBelowDue      int
	AddLimit         int
	StartHour        int
	EndHour          int
}

// Scheduler manages the daemon's periodic jobs
type Scheduler struct {
	scheduler *gocron.Scheduler
	cfg       Config
	due       DueCounterI
	queue     QueueI
	flusher   FlusherI
	notifier  Notifier // nil disables reminders
	logger    *zap.Logger
	now       func() time.Time

	ctx context.Context
}

// New creates a scheduler. Jobs never overlap with themselves.
func New(cfg Config, due DueCounterI, q QueueI, flusher FlusherI, notifier Notifier, logger *zap.Logger) *Scheduler {
	if cfg.StartHour == 0 && cfg.EndHour == 0 {
		cfg.StartHour = DefaultNotificationStartHour
		cfg.EndHour = DefaultNotificationEndHour
	}
	s := gocron.NewScheduler(time.Local)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		cfg:       cfg,
		due:       due,
		queue:     q,
		flusher:   flusher,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
		ctx:       context.Background(),
	}
}

type job struct {
	name     string
	interval time.Duration
	fn       func(context.Context) error
}

// Start registers every job and runs the scheduler in the background.
// Jobs stop receiving new runs once ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx = ctx

	jobs := []job{
		{"due_count", s.cfg.DueCountInterval, s.refreshDueCount},
		{"fetch_next", s.cfg.FetchInterval, s.fetchNext},
		{"flush_reviews", s.cfg.FlushInterval, s.flushReviews},
	}
	if s.notifier != nil {
		jobs = append(jobs, job{"reminders", s.cfg.ReminderInterval, s.checkAndSendReminders})
	}

	for _, j := range jobs {
		if j.interval <= 0 {
			return fmt.Errorf("job %s: interval must be positive", j.name)
		}
		name, fn := j.name, j.fn
		_, err := s.scheduler.Every(j.interval).WaitForSchedule().Do(func() {
			s.run(name, fn)
		})
		if err != nil {
			return fmt.Errorf("failed to schedule %s: %w", name, err)
		}
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop terminates all scheduled tasks and waits for running ones
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) run(name string, fn func(context.Context) error) {
	if s.ctx.Err() != nil {
		return
	}
	start := time.Now()
	err := fn(s.ctx)
	metrics.JobDuration.WithLabelValues(name, metrics.Status(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Warn("job failed", zap.String("job", name), zap.Error(err))
	}
}

// refreshDueCount pulls the server count and tops the queue up with new items
// when fewer than AddBelowDue are due.
func (s *Scheduler) refreshDueCount(ctx context.Context) error {
	count, err := s.due.Update(ctx, false)
	if err != nil {
		return err
	}
	if s.cfg.AddBelowDue <= 0 || count >= s.cfg.AddBelowDue {
		return nil
	}
	result, err := s.queue.AddItems(ctx, queue.AddOptions{Limit: s.cfg.AddLimit})
	if err != nil {
		return fmt.Errorf("add items: %w", err)
	}
	s.logger.Info("topped up queue",
		zap.Int("due", count),
		zap.Int("added", len(result.Items)),
		zap.Int("failed", result.ItemsFailed),
	)
	return nil
}

func (s *Scheduler) fetchNext(ctx context.Context) error {
	return s.queue.FetchNext(ctx, queue.NextOptions{Limit: s.cfg.FetchLimit})
}

func (s *Scheduler) flushReviews(ctx context.Context) error {
	n, err := s.flusher.Flush(ctx)
	if n > 0 {
		s.logger.Info("submitted reviews", zap.Int("count", n))
	}
	return err
}

// checkAndSendReminders sends a reminder when items are due and the current
// hour is inside the notification window
func (s *Scheduler) checkAndSendReminders(ctx context.Context) error {
	currentHour := s.now().Hour()
	if currentHour < s.cfg.StartHour || currentHour > s.cfg.EndHour {
		s.logger.Debug("outside notification hours, skipping reminders",
			zap.Int("hour", currentHour),
			zap.Int("start", s.cfg.StartHour),
			zap.Int("end", s.cfg.EndHour),
		)
		return nil
	}

	// Local reviews since the last fetch are already reflected in Count
	if _, err := s.due.Update(ctx, true); err != nil {
		return err
	}
	count := s.due.Count()
	if count == 0 {
		return nil
	}
	if err := s.notifier.SendReminders(count); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}
	return nil
}

// RunManualCheck forces a server refresh and sends a reminder if anything is
// due, ignoring the notification window
func (s *Scheduler) RunManualCheck(ctx context.Context) error {
	if s.notifier == nil {
		return nil
	}
	count, err := s.due.Update(ctx, false)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	return s.notifier.SendReminders(count)
}
