package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// Healthcheck reports 503 when the database does not answer within a second.
func Healthcheck(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, map[string]string{"status": "unavailable"})
			return
		}

		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}
