package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/donaldgifford/medwatch/internal/metrics"
	"github.com/donaldgifford/medwatch/internal/notify"
	"github.com/donaldgifford/medwatch/internal/source"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

const batchThreshold = 5

// dispatch executes decisions in priority order: bookings first, then
// notifications, then deactivation. It returns the keys of the fingerprints
// whose side effect succeeded. Failures are logged and counted; a failed
// record is not committed and comes back next cycle.
func (eng *Engine) dispatch(
	ctx context.Context,
	log *slog.Logger,
	s domain.Search,
	decisions []domain.Decision,
) map[string]bool {
	executed := make(map[string]bool)

	var (
		pending     []notify.Notification
		pendingKeys []string
		deactivate  *domain.Decision
	)
	queue := func(d *domain.Decision, reason domain.Reason) {
		n := notify.NewNotification(s, d)
		n.Reason = reason
		pending = append(pending, n)
		pendingKeys = append(pendingKeys, d.Fingerprint.Key)
	}

	for i := range decisions {
		d := &decisions[i]
		switch d.Action {
		case domain.ActionAutoBook:
			if err := eng.book(ctx, s, d); err != nil {
				logBookingFailure(log, err)
				if eng.notificationsEnabled {
					queue(d, domain.ReasonAutoBookFallback)
				}
				continue
			}
			executed[d.Fingerprint.Key] = true
			if eng.notificationsEnabled {
				eng.sendSingle(ctx, log, notify.NewNotification(s, d))
			}
		case domain.ActionNotify:
			queue(d, d.Reason)
		case domain.ActionDeactivate:
			deactivate = d
		}
	}

	for _, key := range eng.sendNotifications(ctx, log, pending, pendingKeys, notify.SearchTitle(s)) {
		executed[key] = true
	}

	if deactivate != nil {
		eng.deactivate(ctx, log, s, deactivate)
	}

	return executed
}

// book reserves the slot of an AutoBook decision.
func (eng *Engine) book(ctx context.Context, s domain.Search, d *domain.Decision) error {
	w, ok := s.(*domain.Watch)
	if !ok {
		return errors.New("auto-book on a non-appointment search")
	}
	if eng.booker == nil {
		return errors.New("no booker configured")
	}
	return eng.booker.Book(ctx, w, d.Record)
}

func logBookingFailure(log *slog.Logger, err error) {
	if errors.Is(err, source.ErrSlotTaken) {
		log.Info("auto-book lost the slot", "error", err)
		return
	}
	log.Warn("auto-book failed", "error", err)
}

// sendNotifications delivers notifications for one search, as a batch when
// there are batchThreshold or more. It returns the keys delivered.
func (eng *Engine) sendNotifications(
	ctx context.Context,
	log *slog.Logger,
	ns []notify.Notification,
	keys []string,
	title string,
) []string {
	if len(ns) == 0 {
		return nil
	}

	if len(ns) >= batchThreshold {
		if err := eng.notifier.SendBatch(ctx, ns, title); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			log.Error("sending batch notification failed", "count", len(ns), "error", err)
			return nil
		}
		metrics.NotificationsSentTotal.Add(float64(len(ns)))
		return keys
	}

	var sent []string
	for i := range ns {
		if eng.sendSingle(ctx, log, ns[i]) {
			sent = append(sent, keys[i])
		}
	}
	return sent
}

func (eng *Engine) sendSingle(ctx context.Context, log *slog.Logger, n notify.Notification) bool {
	if err := eng.notifier.SendDecision(ctx, &n); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		log.Error("sending notification failed", "reason", n.Reason, "error", err)
		return false
	}
	metrics.NotificationsSentTotal.Inc()
	return true
}

func (eng *Engine) deactivate(ctx context.Context, log *slog.Logger, s domain.Search, d *domain.Decision) {
	if err := eng.store.SetSearchActive(ctx, s.SearchID(), false); err != nil {
		log.Error("deactivating search failed", "error", err)
		return
	}
	metrics.SearchesDeactivatedTotal.Inc()
	log.Info("search deactivated", "reason", d.Reason)

	if eng.notificationsEnabled {
		eng.sendSingle(ctx, log, notify.NewNotification(s, d))
	}
}

// commitSet filters the decider's commit list down to what was executed,
// keeping its order.
func commitSet(commit []domain.Fingerprint, executed map[string]bool) []domain.Fingerprint {
	var out []domain.Fingerprint
	for _, fp := range commit {
		if executed[fp.Key] {
			out = append(out, fp)
		}
	}
	return out
}
