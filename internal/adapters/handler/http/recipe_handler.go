package http

import (
	"net/http"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
	"github.com/vncsmyrnk/cookgen/internal/logging"
)

const maxImageSize = 10 << 20

type RecipeHandler struct {
	service ports.RecipeService
	logger  logging.Logger
}

func NewRecipeHandler(service ports.RecipeService, logger logging.Logger) *RecipeHandler {
	return &RecipeHandler{
		service: service,
		logger:  logger,
	}
}

type createRecipeRequest struct {
	Title         string  `json:"title"`
	Instructions  string  `json:"instructions"`
	IngredientIDs []int64 `json:"ingredients"`
	GlutenFree    bool    `json:"gluten_free"`
	LowCarb       bool    `json:"low_carb"`
}

type updateRecipeRequest struct {
	Title         *string  `json:"title"`
	Instructions  *string  `json:"instructions"`
	IngredientIDs *[]int64 `json:"ingredients"`
	GlutenFree    *bool    `json:"gluten_free"`
	LowCarb       *bool    `json:"low_carb"`
}

func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(r.Context(), w, h.logger, domain.ErrUnauthenticated)
		return
	}

	var req createRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	recipe, err := h.service.Create(r.Context(), user.ID, ports.CreateRecipeInput{
		Title:         req.Title,
		Instructions:  req.Instructions,
		IngredientIDs: req.IngredientIDs,
		GlutenFree:    req.GlutenFree,
		LowCarb:       req.LowCarb,
	})
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, recipe)
}

func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	recipe, err := h.service.GetRecipe(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	recipes, err := h.service.ListRecipes(r.Context(), page)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
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

	var req updateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	recipe, err := h.service.Update(r.Context(), user.ID, id, ports.UpdateRecipeInput{
		Title:         req.Title,
		Instructions:  req.Instructions,
		IngredientIDs: req.IngredientIDs,
		GlutenFree:    req.GlutenFree,
		LowCarb:       req.LowCarb,
	})
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
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

func (h *RecipeHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	image, err := h.service.ImageURL(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, image)
}

// UploadImage expects a multipart body with the file under "image_file".
func (h *RecipeHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
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

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(r.Context(), w, h.logger, validationError("image_file: invalid multipart body"))
		return
	}

	file, header, err := r.FormFile("image_file")
	if err != nil {
		writeError(r.Context(), w, h.logger, validationError("image_file: field required"))
		return
	}
	defer file.Close()

	recipe, err := h.service.SetImage(r.Context(), user.ID, id, ports.UploadImageInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, recipe)
}

func (h *RecipeHandler) SearchByPreferences(w http.ResponseWriter, r *http.Request) {
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
	glutenFree, err := boolParam(r, "gluten_free")
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}
	lowCarb, err := boolParam(r, "low_carb")
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	recipes, err := h.service.SearchByPreferences(r.Context(), user.ID, ports.SearchByPreferencesInput{
		GlutenFree: glutenFree,
		LowCarb:    lowCarb,
		Page:       page,
	})
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}
