// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes two endpoints under /daily:
//   - GET  /daily     → today's date key
//   - POST /daily/new → start a game whose answer is today's word
//
// Daily games are regular sessions: guesses go through /game/guess.
// Deterministic word selection is based on date + salt.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/gabble/internal/daily"
	"github.com/robalobadob/gabble/internal/game"
	"github.com/robalobadob/gabble/internal/words"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

// dateKeyNow returns today's date key and answer.
func (s *Server) dateKeyNow() (date string, answer string) {
	now := s.opts.Now()
	return daily.DateKey(now), daily.Answer(s.dict.Answers(), now, s.opts.DailySalt)
}

// handleDailyInfo reports the current daily date key.
func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	date, _ := s.dateKeyNow()
	_ = json.NewEncoder(w).Encode(map[string]string{"date": date})
}

// handleDailyNew creates a session for today's word.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	date, answer := s.dateKeyNow()
	if answer == "" {
		s.writeSetupError(w, words.ErrNotReady)
		return
	}
	sess, err := game.New(answer, s.dict, s.sessionOptions()...)
	if err != nil {
		s.writeSetupError(w, err)
		return
	}
	s.startSession(w, r, sess, date)
}
