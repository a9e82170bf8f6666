package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
	"github.com/vncsmyrnk/cookgen/internal/logging"
)

type Handlers struct {
	AppName     string
	AuthService ports.AuthService
	Logger      logging.Logger
	Auth        *AuthHandler
	Users       *UserHandler
	Recipes     *RecipeHandler
	Ingredients *IngredientHandler
}

func NewHandler(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	requireAuth := RequireAuth(h.AuthService, h.Logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "Welcome to " + h.AppName})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
		r.With(requireAuth).Get("/verify", h.Auth.Verify)
	})

	r.Route("/users/me", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", h.Users.GetMe)
		r.Get("/preferences", h.Users.ListPreferences)
		r.Post("/preferences", h.Users.SetPreference)
		r.Delete("/preferences/{id}", h.Users.DeletePreference)
		r.Get("/saved-recipes", h.Users.ListSavedRecipes)
		r.Post("/saved-recipes", h.Users.SaveRecipe)
		r.Delete("/saved-recipes/{id}", h.Users.UnsaveRecipe)
	})

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", h.Recipes.ListRecipes)
		r.Get("/{id}", h.Recipes.GetRecipe)
		r.Get("/{id}/image", h.Recipes.GetImage)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/search-by-preferences", h.Recipes.SearchByPreferences)
			r.Post("/", h.Recipes.CreateRecipe)
			r.Put("/{id}", h.Recipes.UpdateRecipe)
			r.Delete("/{id}", h.Recipes.DeleteRecipe)
			r.Patch("/{id}/image", h.Recipes.UploadImage)
		})
	})

	r.Route("/ingredients", func(r chi.Router) {
		r.Get("/", h.Ingredients.ListIngredients)
		r.Get("/{id}", h.Ingredients.GetIngredient)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.Ingredients.CreateIngredient)
			r.Put("/{id}", h.Ingredients.UpdateIngredient)
			r.Delete("/{id}", h.Ingredients.DeleteIngredient)
		})
	})

	return r
}
