package session

import (
	"context"
	"sync"
	"time"

	"fitswitch/internal/logger"
	"fitswitch/internal/metrics"
	"fitswitch/internal/visitcache"
)

// API is the slice of the backend the controller needs. The bearer token is
// explicit on every call; nothing ambient.
type API interface {
	Current(ctx context.Context, token string, id int64) (*Session, error)
	CheckIn(ctx context.Context, token string, id int64) (*Session, error)
	CheckOut(ctx context.Context, token string, id int64) (*Session, error)
	Active(ctx context.Context, token string) ([]ActiveInfo, error)
}

type CacheStore interface {
	Get(ctx context.Context, userID, gymID int64) (*visitcache.Record, error)
	Put(ctx context.Context, rec visitcache.Record) error
}

// Snapshot is the derived per-day view returned by Refresh and after every
// successful transition.
type Snapshot struct {
	State         VisitState `json:"state"`
	ActiveSession *Session   `json:"active_session,omitempty"`
	Today         time.Time  `json:"today"`
}

// Controller performs check-in/check-out transitions for one session kind
// and keeps the in-memory active-session view and the local visit cache
// consistent with confirmed server mutations.
type Controller struct {
	kind  Kind
	api   API
	cache CacheStore
	now   func() time.Time

	mu       sync.Mutex
	active   map[int64]*Session
	inFlight map[int64]bool
}

func NewController(kind Kind, api API, cache CacheStore) *Controller {
	return &Controller{
		kind:     kind,
		api:      api,
		cache:    cache,
		now:      time.Now,
		active:   make(map[int64]*Session),
		inFlight: make(map[int64]bool),
	}
}

// begin marks id as having an outstanding request. A second submission while
// one is in flight is the double-submit race the UI guard exists for; it is
// rejected locally without touching the backend.
func (c *Controller) begin(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight[id] {
		return ErrRequestInFlight
	}
	c.inFlight[id] = true
	return nil
}

func (c *Controller) end(id int64) {
	c.mu.Lock()
	delete(c.inFlight, id)
	c.mu.Unlock()
}

// CheckIn issues exactly one check-in call; no retries. On success the
// returned session becomes the in-memory active session. The local visit
// cache is untouched: only a check-out is terminal enough to cache.
func (c *Controller) CheckIn(ctx context.Context, token string, userID, id int64) (*Session, error) {
	if err := c.begin(id); err != nil {
		return nil, err
	}
	defer c.end(id)

	sess, err := c.api.CheckIn(ctx, token, id)
	if err != nil {
		metrics.RecordCheckIn(string(c.kind), "failure")
		return nil, &CheckInError{Reason: reasonFor(err, "check-in failed")}
	}

	c.mu.Lock()
	c.active[id] = sess
	c.mu.Unlock()

	metrics.RecordCheckIn(string(c.kind), "success")
	logger.Info("checked in",
		"kind", string(c.kind), "id", id, "user_id", userID, "session_id", sess.ID)

	return sess, nil
}

// CheckOut issues exactly one check-out call. On success the in-memory
// active session is cleared and the completed visit is persisted to the
// local cache before returning, so a reload ahead of the next server read
// still shows the day as completed. On failure nothing changes: the session
// is assumed still active and the caller may retry.
func (c *Controller) CheckOut(ctx context.Context, token string, userID, id, gymID int64) (*Session, error) {
	if err := c.begin(id); err != nil {
		return nil, err
	}
	defer c.end(id)

	sess, err := c.api.CheckOut(ctx, token, id)
	if err != nil {
		metrics.RecordCheckOut(string(c.kind), "failure")
		return nil, &CheckOutError{Reason: reasonFor(err, "check-out failed")}
	}

	c.mu.Lock()
	delete(c.active, id)
	c.mu.Unlock()

	now := c.now()
	visitDate := now
	switch {
	case sess.VisitDate != nil && !sess.VisitDate.IsZero():
		visitDate = *sess.VisitDate
	case !sess.CheckInTime.IsZero():
		visitDate = sess.CheckInTime
	}

	gym := sess.GymID
	if gym == 0 {
		gym = gymID
	}

	if gym == 0 {
		// No gym id from the session or the resolver. A record keyed to
		// gym 0 would never be read back, so skip the write.
		logger.Warn("skipping visit record write, gym unresolved",
			"kind", string(c.kind), "id", id, "user_id", userID)
	} else {
		rec := visitcache.Record{
			UserID:      userID,
			GymID:       gym,
			CompletedAt: now,
			VisitDate:   visitDate,
			Status:      visitcache.StatusCompleted,
		}
		if err := c.cache.Put(ctx, rec); err != nil {
			// The server confirmed the check-out; a failed cache write only
			// weakens the reload fallback.
			metrics.RecordVisitCacheWriteFailure()
			logger.Error("failed to persist visit record",
				"error", err.Error(), "user_id", userID, "gym_id", gym)
		}
	}

	metrics.RecordCheckOut(string(c.kind), "success")
	logger.Info("checked out",
		"kind", string(c.kind), "id", id, "user_id", userID, "session_id", sess.ID)

	return sess, nil
}

// Refresh re-derives the day's verdict from scratch: server session first,
// local record as fallback. Callable by the host UI on a timer or focus
// event. It never fails; a broken server lookup or cache read degrades to
// the most conservative state instead.
func (c *Controller) Refresh(ctx context.Context, token string, userID, id, gymID int64) *Snapshot {
	today := c.now()

	server, err := c.api.Current(ctx, token, id)
	if err != nil {
		logger.Debug("server session lookup failed",
			"kind", string(c.kind), "id", id, "error", err.Error())
		// The in-memory session originated from a confirmed server
		// mutation, so it still counts as server truth.
		server = c.activeFor(id)
	} else {
		c.reconcile(id, server)
	}

	var local *visitcache.Record
	if gymID != 0 {
		local, err = c.cache.Get(ctx, userID, gymID)
		if err != nil {
			logger.Debug("visit record read failed", "gym_id", gymID, "error", err.Error())
			local = nil
		}
	}

	state := DeriveVisitState(today, server, local)

	if state == StateCompletedToday && server == nil {
		// Verdict rests on the local cache alone. If the server keeps
		// failing this is never re-verified; see DESIGN.md.
		metrics.RecordVisitCacheFallback()
		logger.Warn("visit verdict from local cache only", "user_id", userID, "gym_id", gymID)
	}

	snap := &Snapshot{State: state, Today: today}
	if state == StateActiveSession {
		snap.ActiveSession = server
	}
	return snap
}

// Active proxies the backend's list of currently open sessions, used to seed
// dashboard state.
func (c *Controller) Active(ctx context.Context, token string) ([]ActiveInfo, error) {
	return c.api.Active(ctx, token)
}

func (c *Controller) activeFor(id int64) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active[id]
}

// reconcile replaces the in-memory view with server truth: the server is
// authoritative in both directions, including operator force-closes.
func (c *Controller) reconcile(id int64, server *Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if server != nil && server.Status == StatusActive {
		c.active[id] = server
	} else {
		delete(c.active, id)
	}
}
