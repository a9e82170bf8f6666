package http

import (
	"net/http"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
	"github.com/vncsmyrnk/cookgen/internal/logging"
)

type UserHandler struct {
	service ports.UserService
	logger  logging.Logger
}

func NewUserHandler(service ports.UserService, logger logging.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

type preferenceRequest struct {
	IngredientID   int64                 `json:"ingredient_id"`
	PreferenceType domain.PreferenceType `json:"preference_type"`
}

type savedRecipeRequest struct {
	RecipeID int64 `json:"recipe_id"`
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(r.Context(), w, h.logger, domain.ErrUnauthenticated)
		return
	}

	me, err := h.service.GetByID(r.Context(), user.ID)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, me)
}

func (h *UserHandler) ListPreferences(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(r.Context(), w, h.logger, domain.ErrUnauthenticated)
		return
	}

	prefs, err := h.service.Preferences(r.Context(), user.ID)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}

func (h *UserHandler) SetPreference(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(r.Context(), w, h.logger, domain.ErrUnauthenticated)
		return
	}

	var req preferenceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	err := h.service.SetPreference(r.Context(), user.ID, ports.SetPreferenceInput{
		IngredientID: req.IngredientID,
		Type:         req.PreferenceType,
	})
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "Preferences updated successfully"})
}

func (h *UserHandler) DeletePreference(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeletePreference(r.Context(), user.ID, id); err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) ListSavedRecipes(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(r.Context(), w, h.logger, domain.ErrUnauthenticated)
		return
	}

	page, err := pageParam(r)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	recipes, err := h.service.SavedRecipes(r.Context(), user.ID, page)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

func (h *UserHandler) SaveRecipe(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(r.Context(), w, h.logger, domain.ErrUnauthenticated)
		return
	}

	var req savedRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	if err := h.service.SaveRecipe(r.Context(), user.ID, req.RecipeID); err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "Recipe saved successfully"})
}

func (h *UserHandler) UnsaveRecipe(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.UnsaveRecipe(r.Context(), user.ID, id); err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
