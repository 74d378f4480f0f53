package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"fsanano/item-catalog/internal/schema"
	"fsanano/item-catalog/internal/service"
)

type ItemHandler struct {
	svc *service.ItemService
	log *zap.Logger
}

func NewItemHandler(svc *service.ItemService, log *zap.Logger) *ItemHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ItemHandler{svc: svc, log: log}
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	in, err := schema.Decode(r.Body)
	if err != nil {
		h.log.Debug("rejected item", zap.Error(err))
		writeError(w, err)
		return
	}

	out, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.log.Error("failed to create item", zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Response())
}

func (h *ItemHandler) ReadItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "item_id"))
	if err != nil {
		writeError(w, &schema.ValidationError{Detail: []schema.FieldError{{
			Loc:  []string{"path", "item_id"},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		}}})
		return
	}

	out, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.log.Error("failed to read item", zap.Int("id", id), zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Response())
}
