package server

import (
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"djtracker/internal/domain"
	"djtracker/pkg/httpx/reply"
	"djtracker/pkg/logx"
	"djtracker/pkg/middlewarex"
)

// Handler builds the router with the standard middleware chain.
func (s Server) Handler(sensitiveDataMasker logx.SensitiveDataMaskerInterface, logFieldMaxLen int) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.Metrics,
		middlewarex.RequestLogging(sensitiveDataMasker, logFieldMaxLen),
		middlewarex.ResponseLogging(sensitiveDataMasker, logFieldMaxLen),
	)

	r.NotFound(reply.NotFound)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/scores", func(r chi.Router) {
			r.Get("/", handler(s.getV1Scores))
			r.Get("/stats", handler(s.getV1ScoreStats))
		})
		r.Get("/profile", handler(s.getV1Profile))
		r.Post("/rank/evaluate", handler(s.postV1RankEvaluate))
		r.Get("/lamps/{code}", handler(s.getV1Lamp))

		r.Route("/events", func(r chi.Router) {
			r.Get("/", handler(s.getV1Events))
			r.Put("/{id}/check", handler(s.putV1EventCheck))
		})
		r.Get("/slideshow", handler(s.getV1Slideshow))

		r.Get("/exports", handler(s.getV1Exports))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, transportError(err))
		}
	}
}

// transportError turns invalid-argument domain errors into failure errors so
// the reply maps them to 400.
func transportError(err error) error {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) || !appErr.Invalid() {
		return err
	}

	return failure.NewInvalidArgumentErrorFromError(
		err,
		failure.WithCode(appErr.Code),
		failure.WithDescription(appErr.Message),
	)
}
