// Package tracking simulates delivery progress for whichever order the
// customer is currently watching. It is presentation-layer fiction, not
// authoritative state: every tick nudges the tracked order one step along
// the confirmed → preparing → out_for_delivery → delivered timeline.
//
// Each tracker is explicitly cancellable and stops itself at a terminal
// step. Leaking a timer past the view that started it is a defect, so
// Stop and Shutdown wait for the tracker goroutine to exit: once they
// return, no further tick can touch the order.
package tracking

import (
	"log/slog"
	"sync"
	"time"

	"quickbite-api/store"
)

type tracker struct {
	stop chan struct{}
	done chan struct{}
}

type Simulator struct {
	store    *store.Store
	log      *slog.Logger
	interval time.Duration

	mu      sync.Mutex
	active  map[string]*tracker
	stopped bool
}

func NewSimulator(st *store.Store, log *slog.Logger, interval time.Duration) *Simulator {
	return &Simulator{
		store:    st,
		log:      log,
		interval: interval,
		active:   make(map[string]*tracker),
	}
}

// Start begins advancing an order. Tracking an order that is already
// tracked is a no-op; tracking an unknown order is an error.
func (s *Simulator) Start(orderID string) error {
	if _, err := s.store.OrderByID(orderID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil
	}
	if _, ok := s.active[orderID]; ok {
		return nil
	}
	t := &tracker{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	s.active[orderID] = t
	go s.run(orderID, t)
	s.log.Info("tracking started", "order_id", orderID)
	return nil
}

func (s *Simulator) run(orderID string, t *tracker) {
	defer close(t.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			// a cancel racing the tick must win: never advance a
			// torn-down view's order
			select {
			case <-t.stop:
				return
			default:
			}
			status, done, err := s.store.AutoAdvance(orderID)
			if err != nil {
				s.log.Warn("tracking lost its order", "order_id", orderID)
				s.remove(orderID, t)
				return
			}
			s.log.Debug("tracking advanced", "order_id", orderID, "status", string(status))
			if done {
				s.remove(orderID, t)
				return
			}
		}
	}
}

// remove drops the tracker entry unless someone already replaced it.
func (s *Simulator) remove(orderID string, t *tracker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.active[orderID]; ok && cur == t {
		delete(s.active, orderID)
	}
}

// Stop cancels tracking for one order and waits for its tracker to exit.
// Stopping an untracked order is fine; the view may have torn down after
// the order delivered itself.
func (s *Simulator) Stop(orderID string) {
	s.mu.Lock()
	t, ok := s.active[orderID]
	if ok {
		delete(s.active, orderID)
	}
	s.mu.Unlock()

	if ok {
		close(t.stop)
		<-t.done
	}
}

// Tracking reports whether an order is currently being simulated.
func (s *Simulator) Tracking(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.active[orderID]
	return ok
}

// Shutdown cancels every tracker, waits them out, and refuses new ones.
func (s *Simulator) Shutdown() {
	s.mu.Lock()
	s.stopped = true
	trackers := make([]*tracker, 0, len(s.active))
	for id, t := range s.active {
		trackers = append(trackers, t)
		delete(s.active, id)
	}
	s.mu.Unlock()

	for _, t := range trackers {
		close(t.stop)
		<-t.done
	}
}
