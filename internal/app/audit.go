package app

import (
	"sync"

	"github.com/ohadaerp/erp/internal/bus"
	"github.com/ohadaerp/erp/internal/guard"
	"github.com/ohadaerp/erp/internal/record"
	"go.uber.org/zap"
)

// startAudit logs deletions and deletion-dialog transitions from the bus
// until the returned stop function is called.
func startAudit(b *bus.Bus, logger *zap.Logger) func() {
	records, unsubRecords := b.Subscribe("record.", 64)
	guards, unsubGuards := b.Subscribe("guard.", 64)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for records != nil || guards != nil {
			select {
			case ev, ok := <-records:
				if !ok {
					records = nil
					continue
				}
				logRecordEvent(logger, ev)
			case ev, ok := <-guards:
				if !ok {
					guards = nil
					continue
				}
				if sc, ok := ev.Payload.(guard.StateChange); ok {
					logger.Debug("delete dialog",
						zap.String("kind", sc.Kind),
						zap.String("id", sc.ID),
						zap.String("from", string(sc.From)),
						zap.String("to", string(sc.To)),
					)
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubRecords()
			unsubGuards()
			wg.Wait()
			if n := b.Dropped(); n > 0 {
				logger.Warn("audit events dropped", zap.Uint64("count", n))
			}
		})
	}
}

func logRecordEvent(logger *zap.Logger, ev bus.Event) {
	c, ok := ev.Payload.(record.Change)
	if !ok {
		return
	}
	switch ev.Kind {
	case record.EventRemoved:
		logger.Info("record deleted", zap.String("kind", c.Kind), zap.String("id", c.ID))
	case record.EventUpserted:
		logger.Debug("record saved", zap.String("kind", c.Kind), zap.String("id", c.ID), zap.Bool("inserted", c.Inserted))
	}
}
