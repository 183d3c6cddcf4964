package services

import (
	"log"

	"staffhub/internal/pkg/session"

	"github.com/robfig/cron/v3"
)

// SessionJanitorService sweeps expired sessions out of the store on a
// fixed schedule. The store already refuses expired sessions on read;
// the sweep just reclaims their memory.
type SessionJanitorService struct {
	sessions session.Store
	cron     *cron.Cron
}

// NewSessionJanitorService creates a new session janitor
func NewSessionJanitorService(sessions session.Store) *SessionJanitorService {
	return &SessionJanitorService{
		sessions: sessions,
		cron:     cron.New(),
	}
}

// Start schedules the sweep every minute
func (s *SessionJanitorService) Start() {
	s.cron.AddFunc("@every 1m", func() {
		if removed := s.sessions.DeleteExpired(); removed > 0 {
			log.Printf("🧹 Swept %d expired sessions", removed)
		}
	})
	s.cron.Start()
	log.Println("🚀 SessionJanitorService started")
}

// Stop stops the sweep schedule
func (s *SessionJanitorService) Stop() {
	s.cron.Stop()
	log.Println("🛑 SessionJanitorService stopped")
}
