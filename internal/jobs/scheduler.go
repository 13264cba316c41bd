package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"cyberstudy/portal/internal/session"
)

// Scheduler runs the periodic session sweep. Only the in-memory session store
// needs it; redis evicts expired sessions by key TTL.
type Scheduler struct {
	cron     *cron.Cron
	sessions *session.MemoryStore
	log      zerolog.Logger
}

func NewScheduler(sessions *session.MemoryStore, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:     c,
		sessions: sessions,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if s.sessions == nil {
		return nil
	}

	if _, err := s.cron.AddFunc("0 0 * * * *", s.sweepSessions); err != nil { // hourly
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts scheduling and blocks until running jobs finish, up to a short
// grace period.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("cron jobs still running at shutdown")
	}
}

func (s *Scheduler) sweepSessions() {
	removed := s.sessions.PurgeExpired(time.Now().UTC())
	if removed > 0 {
		s.log.Debug().Int("removed", removed).Msg("expired sessions purged")
	}
}
