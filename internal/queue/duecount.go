package queue

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/example/srsqueue/internal/api"
	"github.com/example/srsqueue/internal/metrics"
)

// DueCountEvent is emitted after every due count update
type DueCountEvent struct {
	Count      int
	Server     int
	Offset     int
	SkipServer bool
	Err        error
}

// DueCounter reconciles the server's due count with local reviews and
// additions the server hasn't seen yet.
//
// offset is reviews minus additions recorded locally; the displayed count is
// the server count less the offset and is never negative. unsettled counts the
// reviews recorded by this counter that the server has not acknowledged yet;
// reviews left over from an earlier process were never recorded and are not settled.
type DueCounter struct {
	fetcher DueCountFetcherI
	logger  *zap.Logger

	mu          sync.Mutex
	req         api.DueRequest
	state       DueCountState
	server      int
	offset      int
	unsettled   int
	subscribers []func(DueCountEvent)
}

// NewDueCounter creates a counter in standby with a zero count
func NewDueCounter(fetcher DueCountFetcherI, req api.DueRequest, logger *zap.Logger) *DueCounter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DueCounter{fetcher: fetcher, req: req, logger: logger}
}

// SetRequest changes the filters used for server fetches
func (d *DueCounter) SetRequest(req api.DueRequest) {
	d.mu.Lock()
	d.req = req
	d.mu.Unlock()
}

// Subscribe registers fn to receive every event. fn runs on the updating goroutine.
func (d *DueCounter) Subscribe(fn func(DueCountEvent)) {
	d.mu.Lock()
	d.subscribers = append(d.subscribers, fn)
	d.mu.Unlock()
}

// Count is the current due count including local adjustments
func (d *DueCounter) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.countLocked()
}

// Offset is local reviews minus local additions not yet reflected by the server
func (d *DueCounter) Offset() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.offset
}

func (d *DueCounter) State() DueCountState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// RecordAdded accounts for n items added locally that will become due
func (d *DueCounter) RecordAdded(n int) {
	d.mu.Lock()
	d.offset -= n
	d.mu.Unlock()
}

// RecordReviewed accounts for n due items reviewed locally
func (d *DueCounter) RecordReviewed(n int) {
	d.mu.Lock()
	d.offset += n
	d.unsettled += n
	d.mu.Unlock()
}

// Settle removes n due reviews from the offset once the server has accepted
// them. Only reviews recorded with RecordReviewed are settled.
func (d *DueCounter) Settle(n int) {
	d.mu.Lock()
	if n > d.unsettled {
		n = d.unsettled
	}
	d.offset -= n
	d.unsettled -= n
	d.mu.Unlock()
}

// Update refreshes the count. With skipServer only local adjustments are
// applied. While a server fetch is in flight Update does nothing and returns
// the current count.
func (d *DueCounter) Update(ctx context.Context, skipServer bool) (int, error) {
	d.mu.Lock()
	if d.state == Fetching {
		count := d.countLocked()
		d.mu.Unlock()
		return count, nil
	}

	if skipServer {
		ev := d.eventLocked(true, nil)
		subs := d.subscribersLocked()
		d.mu.Unlock()
		d.emit(subs, ev)
		return ev.Count, nil
	}

	d.state = Fetching
	req := d.req
	d.mu.Unlock()

	counts, err := d.fetcher.DueCount(ctx, req)

	d.mu.Lock()
	d.state = Standby
	if err != nil {
		err = fmt.Errorf("due count: %w", err)
		ev := d.eventLocked(false, err)
		subs := d.subscribersLocked()
		d.mu.Unlock()
		d.logger.Warn("due count fetch failed", zap.Error(err))
		d.emit(subs, ev)
		return ev.Count, err
	}
	d.server = counts.Sum()
	ev := d.eventLocked(false, nil)
	subs := d.subscribersLocked()
	d.mu.Unlock()

	d.logger.Debug("due count updated", zap.Int("count", ev.Count), zap.Int("server", ev.Server), zap.Int("offset", ev.Offset))
	d.emit(subs, ev)
	return ev.Count, nil
}

func (d *DueCounter) countLocked() int {
	if n := d.server - d.offset; n > 0 {
		return n
	}
	return 0
}

func (d *DueCounter) eventLocked(skipServer bool, err error) DueCountEvent {
	return DueCountEvent{
		Count:      d.countLocked(),
		Server:     d.server,
		Offset:     d.offset,
		SkipServer: skipServer,
		Err:        err,
	}
}

func (d *DueCounter) subscribersLocked() []func(DueCountEvent) {
	subs := make([]func(DueCountEvent), len(d.subscribers))
	copy(subs, d.subscribers)
	return subs
}

func (d *DueCounter) emit(subs []func(DueCountEvent), ev DueCountEvent) {
	if ev.Err == nil {
		metrics.DueCount.Set(float64(ev.Count))
	}
	for _, fn := range subs {
		fn(ev)
	}
}
