package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vncsmyrnk/kairos/docs"
)

// DefaultMaxBodyBytes caps request bodies when RouterOptions leaves it unset.
const DefaultMaxBodyBytes int64 = 100 << 10

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	// RequestTimeout bounds each request, storage calls included. Zero
	// disables it.
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

func NewHandler(eventHandler *EventHandler, voteHandler *VoteHandler, messages *Messages, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(opts.Logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	r.Use(middleware.RequestSize(maxBody))
	if opts.RequestTimeout > 0 {
		r.Use(RequestDeadline(opts.RequestTimeout))
	}

	welcome := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(messages.For(r, MsgWelcome)))
	}

	r.Get("/", welcome)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", welcome)

		r.Route("/events", func(r chi.Router) {
			r.Post("/", eventHandler.CreateEvent)
			r.Get("/{uniqueLink}", eventHandler.GetEvent)
			r.Post("/{uniqueLink}/vote", voteHandler.SubmitVote)
		})
	})

	return r
}
