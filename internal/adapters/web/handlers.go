package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"po-addon/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// readyMessage is served on GET / for platform health probes.
const readyMessage = "PO Add-on Ready!"

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc    app.ApplicationService
	log    *zap.Logger
	router chi.Router
	schema []byte // JSON Schema of the create-po body
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins string, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{
		svc:    svc,
		log:    log.Named("web"),
		schema: buildCreatePOSchema(),
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(h.log))
	r.Use(Metrics)
	r.Use(Recoverer(h.log))
	r.Use(CORS(allowedOrigins))

	// ── Health (public) ───────────────────────────────────────────────────────
	r.Get("/", h.ready)
	r.Get("/api/health", h.health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// ── Purchase orders ──────────────────────────────────────────────────────
	r.Get("/api/create-po/schema", h.createPOSchema)
	r.Group(func(r chi.Router) {
		r.Use(RequestBodyLimit(1 << 20)) // 1 MB

		r.Post("/create-po", h.createPO)
		r.Post("/api/create-po", h.createPO)
	})

	h.router = r
	return r
}

// ready answers the platform's readiness probe. It never calls downstream.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, readyMessage)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// decodeJSON decodes the request body into v and returns false + writes an appropriate
// error response on failure. Returns HTTP 413 when the body exceeds the size limit set
// by RequestBodyLimit middleware; HTTP 400 "Missing required fields" for any body that
// is not a JSON object of the expected shape. An empty body decodes to the zero value.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, missingFieldsMessage, "INVALID_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
