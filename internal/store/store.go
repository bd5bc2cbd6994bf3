// Package store holds the in-memory client state: theme, session, cart and
// the saved address mirror. Mutations apply to memory immediately and are
// written behind to a StateRepository; write failures never undo them.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/alitto/pond"
	"github.com/nikolayk812/storefront-client/internal/domain"
	"github.com/nikolayk812/storefront-client/internal/port"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
)

// PersistError reports a failed background write.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

var errPoolFull = errors.New("persist pool is full")

type Listener func(domain.AppState)

var _ port.TokenSource = (*Store)(nil)

type Store struct {
	repo           port.StateRepository
	log            logrus.FieldLogger
	onPersistError func(error)
	currency       currency.Unit
	writeTimeout   time.Duration

	pool   *pond.WorkerPool
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	state    domain.AppState
	ready    bool
	closed   bool
	dirty    dirtyKeys
	draining bool
	// idle is closed whenever no drain is scheduled or running.
	idle chan struct{}

	listenersMu  sync.Mutex
	listeners    map[int]Listener
	nextListener int
}

func New(repo port.StateRepository, opts ...Option) (*Store, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}

	s := &Store{
		repo:         repo,
		log:          logrus.StandardLogger(),
		currency:     currency.GBP,
		writeTimeout: defaultWriteTimeout,
		state:        domain.DefaultAppState(),
		idle:         closedChan(),
		listeners:    make(map[int]Listener),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.WithField("component", "store")
	s.ctx, s.cancel = context.WithCancel(context.Background())
	// at most one drain task is ever queued
	s.pool = pond.New(1, 1,
		pond.PanicHandler(func(p interface{}) {
			s.log.WithField("panic", p).Error("persist task panicked")
		}),
	)

	return s, nil
}

// Initialize restores the persisted state and marks the store ready. Keys
// that are absent or unreadable fall back to defaults; only a canceled
// context makes it fail. Calling it on a ready store does nothing.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.RLock()
	closed, ready := s.closed, s.ready
	s.mu.RUnlock()
	if closed {
		return fmt.Errorf("initialize: %w", domain.ErrNotReady)
	}
	if ready {
		return nil
	}

	state, err := s.repo.Load(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("repo.Load: %w", ctxErr)
	}
	if err != nil {
		s.log.WithError(err).Warn("some persisted keys were unreadable, using defaults")
	}

	s.mu.Lock()
	if s.ready || s.closed {
		s.mu.Unlock()
		return nil
	}
	s.state = state
	s.ready = true
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"lines":     len(snap.Cart.Lines),
		"signed_in": snap.SignedIn(),
		"theme":     snap.Theme,
	}).Info("state restored")

	s.notify(snap)
	return nil
}

func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ready
}

// Snapshot returns a deep copy of the current state with the cart summary filled in.
func (s *Store) Snapshot() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() domain.AppState {
	snap := s.state.Clone()
	snap.Cart.Summary = domain.Summarize(snap.Cart.Lines, s.currency)
	return snap
}

// AuthToken returns the token of the in-memory session, so requests see a
// sign-in or sign-out before it reaches storage.
func (s *Store) AuthToken(context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.Session == nil || s.state.Session.AuthToken == "" {
		return "", false
	}
	return s.state.Session.AuthToken, true
}

// Subscribe registers fn to receive a snapshot after every change.
// Listeners run synchronously on the mutating goroutine.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) notify(snap domain.AppState) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(snap.Clone())
	}
}

// mutate applies fn to the state under the write lock and marks the keys it
// returns as dirty. It never waits for storage.
func (s *Store) mutate(op string, fn func(st *domain.AppState) dirtyKeys) error {
	s.mu.Lock()
	if !s.ready {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, domain.ErrNotReady)
	}

	keys := fn(&s.state)
	submitted := s.markDirtyLocked(keys)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if !submitted {
		s.persistFailed(&PersistError{Op: op, Err: errPoolFull})
	}

	s.notify(snap)
	return nil
}

// markDirtyLocked reports false when a drain was needed but the pool refused
// it. The keys stay dirty for the next mutation to pick up.
func (s *Store) markDirtyLocked(keys dirtyKeys) bool {
	if keys == 0 {
		return true
	}

	if keys&dirtyPurge != 0 {
		s.dirty &^= sessionKeys
	}
	s.dirty |= keys

	if s.draining {
		return true
	}

	s.draining = true
	s.idle = make(chan struct{})
	if !s.pool.TrySubmit(s.drain) {
		s.draining = false
		close(s.idle)
		return false
	}
	return true
}

// drain writes dirty keys until none are left. Values are taken from the
// state at the time of each pass, so a burst of mutations to one key costs
// one write and storage converges on the latest state.
func (s *Store) drain() {
	for {
		s.mu.Lock()
		if s.dirty == 0 {
			s.draining = false
			close(s.idle)
			s.mu.Unlock()
			return
		}
		keys := s.dirty
		s.dirty = 0
		st := s.state.Clone()
		s.mu.Unlock()

		s.persist(keys, st)
	}
}

func (s *Store) persist(keys dirtyKeys, st domain.AppState) {
	for _, w := range writeOrder {
		if keys&w.key == 0 {
			continue
		}

		ctx, cancel := context.WithTimeout(s.ctx, s.writeTimeout)
		err := w.write(ctx, s.repo, st)
		cancel()

		if err != nil {
			s.persistFailed(&PersistError{Op: w.op, Err: err})
		}
	}
}

func (s *Store) persistFailed(err *PersistError) {
	s.log.WithError(err.Err).WithField("op", err.Op).Error("persist failed")

	if s.onPersistError != nil {
		s.onPersistError(err)
	}
}

// Flush waits until every pending change has been written.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.RLock()
	idle := s.idle
	s.mu.RUnlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("flush: %w", ctx.Err())
	}
}

// Close writes pending changes and stops the pool. Mutations fail with
// ErrNotReady afterwards.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.ready = false
	s.mu.Unlock()

	s.pool.StopAndWait()
	s.cancel()
}

func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func (s *Store) AddOrUpdateCartLine(line domain.CartLine) error {
	return s.mutate("AddOrUpdateCartLine", func(st *domain.AppState) dirtyKeys {
		if i := domain.FindLine(st.Cart.Lines, line.ID); i >= 0 {
			st.Cart.Lines[i] = line
		} else {
			st.Cart.Lines = append(st.Cart.Lines, line)
		}

		return dirtyLines
	})
}

// RemoveCartLine drops the line with id. An unknown id changes nothing.
func (s *Store) RemoveCartLine(id string) error {
	return s.mutate("RemoveCartLine", func(st *domain.AppState) dirtyKeys {
		if domain.FindLine(st.Cart.Lines, id) < 0 {
			return 0
		}

		st.Cart.Lines = slices.DeleteFunc(slices.Clone(st.Cart.Lines), func(l domain.CartLine) bool {
			return l.ID == id
		})

		return dirtyLines
	})
}

// ClearCart empties the line list. Address and payment method are kept.
func (s *Store) ClearCart() error {
	return s.mutate("ClearCart", func(st *domain.AppState) dirtyKeys {
		st.Cart.Lines = []domain.CartLine{}
		return dirtyLines
	})
}

func (s *Store) SetTheme(theme domain.Theme) error {
	theme, err := domain.ParseTheme(string(theme))
	if err != nil {
		return fmt.Errorf("SetTheme: %w", err)
	}

	return s.mutate("SetTheme", func(st *domain.AppState) dirtyKeys {
		st.Theme = theme
		return dirtyTheme
	})
}

func (s *Store) ToggleTheme() error {
	return s.mutate("ToggleTheme", func(st *domain.AppState) dirtyKeys {
		st.Theme = st.Theme.Toggle()
		return dirtyTheme
	})
}

// SignIn replaces the session. Cart contents collected while anonymous are kept.
func (s *Store) SignIn(session domain.Session) error {
	return s.mutate("SignIn", func(st *domain.AppState) dirtyKeys {
		st.Session = session.Clone()
		return dirtySession
	})
}

// SignOut drops the session and the whole cart and purges their keys in one
// batch. Theme and saved addresses survive. Repeated calls are harmless.
func (s *Store) SignOut() error {
	return s.mutate("SignOut", func(st *domain.AppState) dirtyKeys {
		st.Session = nil
		st.Cart = domain.EmptyCart()
		return dirtyPurge
	})
}

func (s *Store) SaveShippingAddress(addr domain.ShippingAddress) error {
	return s.mutate("SaveShippingAddress", func(st *domain.AppState) dirtyKeys {
		st.Cart.ShippingAddress = addr
		return dirtyAddress
	})
}

func (s *Store) SavePaymentMethod(pm domain.PaymentMethod) error {
	return s.mutate("SavePaymentMethod", func(st *domain.AppState) dirtyKeys {
		st.Cart.PaymentMethod = pm
		return dirtyPayment
	})
}

// SaveSavedAddresses replaces the local mirror of the user's server-side addresses.
func (s *Store) SaveSavedAddresses(addrs []domain.ShippingAddress) error {
	addrs = slices.Clone(addrs)
	if addrs == nil {
		addrs = []domain.ShippingAddress{}
	}

	return s.mutate("SaveSavedAddresses", func(st *domain.AppState) dirtyKeys {
		st.SavedAddresses = addrs
		return dirtySavedAddresses
	})
}
