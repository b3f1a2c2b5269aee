// serve.go
//
// `gabble serve`: load the dictionary and start the JSON HTTP API.

package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/gabble/internal/httpserver"
	"github.com/robalobadob/gabble/internal/store"
)

func (a *app) newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON game API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.Server.Port = port
			}
			dict, err := a.loadDictionary(cmd.Context())
			if err != nil {
				return err
			}

			srv := httpserver.New(store.NewMemoryStore(), dict, httpserver.Options{
				ClientOrigin: a.cfg.Server.ClientOrigin,
				TokenSecret:  a.cfg.Server.TokenSecret,
				TokenTTL:     a.cfg.Server.TokenTTL,
				DailySalt:    a.cfg.Game.DailySalt,
				Evaluator:    a.evaluator(),
				Now:          a.now,
			})
			return a.listen(cmd.Context(), srv)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (overrides PORT / server.port)")
	return cmd
}

// listen serves until ctx is cancelled, then shuts down gracefully.
func (a *app) listen(ctx context.Context, srv *httpserver.Server) error {
	hs := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", hs.Addr).Msg("starting gabble server")
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	}
}
