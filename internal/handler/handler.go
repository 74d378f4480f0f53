package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"fsanano/item-catalog/internal/compress"
	"fsanano/item-catalog/internal/logging"
)

type Handler struct {
	router *chi.Mux
	items  *ItemHandler
}

func NewHandler(log *zap.Logger, items *ItemHandler) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logging.RequestLogger(log))
	router.Use(middleware.Recoverer)
	router.Use(compress.DecodeRequestBody)
	router.Use(newCompressor().Handler)

	h := &Handler{
		router: router,
		items:  items,
	}

	h.registerRoutes()
	return h
}

func newCompressor() *middleware.Compressor {
	c := middleware.NewCompressor(5, "application/json")
	c.SetEncoder(compress.Brotli, compress.NewBrotliWriter)
	return c
}

func (h *Handler) registerRoutes() {
	h.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, detailMessage{Detail: "Not Found"})
	})
	h.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, detailMessage{Detail: "Method Not Allowed"})
	})

	h.router.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)
	})

	h.router.Route("/items", func(r chi.Router) {
		r.Post("/", h.items.CreateItem)
		r.Get("/{item_id}", h.items.ReadItem)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
