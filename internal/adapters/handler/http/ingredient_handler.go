package http

import (
	"net/http"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
	"github.com/vncsmyrnk/cookgen/internal/logging"
)

type IngredientHandler struct {
	service ports.IngredientService
	logger  logging.Logger
}

func NewIngredientHandler(service ports.IngredientService, logger logging.Logger) *IngredientHandler {
	return &IngredientHandler{
		service: service,
		logger:  logger,
	}
}

type ingredientRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *IngredientHandler) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(r.Context(), w, h.logger, domain.ErrUnauthenticated)
		return
	}

	var req ingredientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	input := ports.IngredientInput{}
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Description != nil {
		input.Description = *req.Description
	}

	ingredient, err := h.service.Create(r.Context(), user.ID, input)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, ingredient)
}

func (h *IngredientHandler) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	ingredient, err := h.service.GetIngredient(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, ingredient)
}

func (h *IngredientHandler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	ingredients, err := h.service.ListIngredients(r.Context(), page)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, ingredients)
}

func (h *IngredientHandler) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(r.Context(), w, h.logger, domain.ErrUnauthenticated)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	var req ingredientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	ingredient, err := h.service.Update(r.Context(), user.ID, id, ports.UpdateIngredientInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, ingredient)
}

func (h *IngredientHandler) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(r.Context(), w, h.logger, domain.ErrUnauthenticated)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, id); err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
