// internal/httpserver/server.go
//
// HTTP server wiring for the game API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/board.
//   - Daily endpoints: mounted under /daily.
//
// Notes:
//   - Sessions live in an in-memory store and are dropped on a terminal outcome.
//   - POST /game/new hands out a signed token; the other game endpoints
//     require it as "Authorization: Bearer <token>".

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/gabble/internal/game"
	"github.com/robalobadob/gabble/internal/store"
	"github.com/robalobadob/gabble/internal/words"
)

// Dictionary is what the server needs from the word provider.
type Dictionary interface {
	game.Dictionary
	Answers() []string
	RandomAnswer() (string, error)
	Stats() (answersCount int, allowedCount int)
}

// Options configures a Server.
type Options struct {
	ClientOrigin string
	TokenSecret  string
	TokenTTL     time.Duration
	DailySalt    string
	Evaluator    game.Evaluator   // nil means game.Evaluate
	Now          func() time.Time // nil means time.Now
}

// Server bundles router, session store and dictionary.
type Server struct {
	r     *chi.Mux
	store store.Store
	dict  Dictionary
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict Dictionary, opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	s := &Server{r: chi.NewRouter(), store: st, dict: dict, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger(log.Logger))       // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"gabble","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/board","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.dict.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g, "sessions": s.store.Len()})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.With(s.requireSession()).Post("/game/guess", s.handleGuess)
	s.r.With(s.requireSession()).Get("/game/board", s.handleBoard)

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Router exposes the internal router as an http.Handler.
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (must be a word)
	Daily  bool   `json:"daily"`  // use today's word; ignored when Answer is set
}
type newGameRes struct {
	GameID         string `json:"gameId"`
	Token          string `json:"token"`
	MaxTurns       int    `json:"maxTurns"`
	TurnsRemaining int    `json:"turnsRemaining"`
	Date           string `json:"date,omitempty"`
}

// handleNewGame creates a session with a fixed, daily or random answer.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	if req.Answer == "" && req.Daily {
		s.handleDailyNew(w, r)
		return
	}

	var sess *game.Session
	var err error
	if req.Answer != "" {
		sess, err = game.Setup(req.Answer, s.dict, s.sessionOptions()...)
	} else {
		var answer string
		if answer, err = s.dict.RandomAnswer(); err == nil {
			sess, err = game.New(answer, s.dict, s.sessionOptions()...)
		}
	}
	if err != nil {
		s.writeSetupError(w, err)
		return
	}
	s.startSession(w, r, sess, "")
}

// startSession stores sess and replies with its token.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, sess *game.Session, date string) {
	if _, err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	tok, err := s.signToken(sess.ID())
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("gameId", sess.ID()).Str("date", date).Msg("game started")
	_ = json.NewEncoder(w).Encode(newGameRes{
		GameID:         sess.ID(),
		Token:          tok,
		MaxTurns:       game.MaxTurns,
		TurnsRemaining: sess.TurnsRemaining(),
		Date:           date,
	})
}

func (s *Server) sessionOptions() []game.Option {
	if s.opts.Evaluator == nil {
		return nil
	}
	return []game.Option{game.WithEvaluator(s.opts.Evaluator)}
}

// writeSetupError maps construction failures to status codes.
func (s *Server) writeSetupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameSetup):
		http.Error(w, `{"error":"invalid_answer"}`, http.StatusBadRequest)
	case errors.Is(err, words.ErrNotReady):
		log.Error().Err(err).Msg("dictionary not ready")
		http.Error(w, `{"error":"dictionary_not_ready"}`, http.StatusInternalServerError)
	default:
		log.Error().Err(err).Msg("new game")
		http.Error(w, `{"error":"new_game_failed"}`, http.StatusInternalServerError)
	}
}

// guessReq/boardRes payloads for POST /game/guess and GET /game/board.
type guessReq struct {
	Guess string `json:"guess"`
}
type boardRes struct {
	Outcome        game.Outcome    `json:"outcome,omitempty"`
	State          game.State      `json:"state"`
	Board          []game.GuessRow `json:"board"`
	Rows           []string        `json:"rows"`
	TurnsUsed      int             `json:"turnsUsed"`
	TurnsRemaining int             `json:"turnsRemaining"`
	Answer         string          `json:"answer,omitempty"` // revealed on terminal outcomes only
}

func snapshot(sess *game.Session) boardRes {
	res := boardRes{
		State:          sess.State(),
		Board:          sess.Board(),
		Rows:           sess.RenderBoard(),
		TurnsUsed:      sess.TurnsUsed(),
		TurnsRemaining: sess.TurnsRemaining(),
	}
	if sess.Finished() {
		res.Answer = sess.Answer()
	}
	return res
}

// handleGuess applies one turn; terminal sessions are removed from the store.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	e := sessionFromContext(r)
	if e == nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	e.Lock()
	defer e.Unlock()

	outcome, err := e.Session.TakeTurn(req.Guess)
	switch {
	case errors.Is(err, game.ErrGameFinished):
		http.Error(w, `{"error":"game_finished"}`, http.StatusGone)
		return
	case errors.Is(err, words.ErrNotReady):
		log.Error().Err(err).Msg("dictionary not ready")
		http.Error(w, `{"error":"dictionary_not_ready"}`, http.StatusInternalServerError)
		return
	case err != nil:
		log.Error().Err(err).Str("gameId", e.ID).Msg("take turn")
		http.Error(w, `{"error":"guess_failed"}`, http.StatusInternalServerError)
		return
	}

	if outcome.Terminal() {
		if err := s.store.Delete(r.Context(), e.ID); err != nil {
			log.Warn().Err(err).Str("gameId", e.ID).Msg("delete finished session")
		}
		log.Info().
			Str("gameId", e.ID).
			Str("outcome", string(outcome)).
			Int("turnsUsed", e.Session.TurnsUsed()).
			Msg("game finished")
	}

	res := snapshot(e.Session)
	res.Outcome = outcome
	_ = json.NewEncoder(w).Encode(res)
}

// handleBoard reports the current board without side effects.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	e := sessionFromContext(r)
	if e == nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	e.Lock()
	res := snapshot(e.Session)
	e.Unlock()
	_ = json.NewEncoder(w).Encode(res)
}
