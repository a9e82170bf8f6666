package http

import (
	"context"
	"io"
	"sync"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
)

type memUsers struct {
	mu     sync.Mutex
	byID   map[int64]*domain.User
	nextID int64
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[int64]*domain.User{}}
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Exists(_ context.Context, username, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	user.ID = m.nextID
	cp := *user
	m.byID[user.ID] = &cp
	return nil
}

func (m *memUsers) delete(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
}

// stubRecipes records calls and returns whatever the test configured.
type stubRecipes struct {
	recipe *domain.Recipe
	page   *domain.Page[*domain.Recipe]
	image  *domain.RecipeImage
	err    error

	lastActor  int64
	lastID     int64
	lastCreate ports.CreateRecipeInput
	lastUpdate ports.UpdateRecipeInput
	lastUpload struct {
		filename    string
		contentType string
		content     string
	}
	lastSearch ports.SearchByPreferencesInput
	lastPage   int
}

func (s *stubRecipes) Create(_ context.Context, authorID int64, input ports.CreateRecipeInput) (*domain.Recipe, error) {
	s.lastActor, s.lastCreate = authorID, input
	return s.recipe, s.err
}

func (s *stubRecipes) GetRecipe(_ context.Context, id int64) (*domain.Recipe, error) {
	s.lastID = id
	return s.recipe, s.err
}

func (s *stubRecipes) ListRecipes(_ context.Context, page int) (*domain.Page[*domain.Recipe], error) {
	s.lastPage = page
	return s.page, s.err
}

func (s *stubRecipes) Update(_ context.Context, actorID, id int64, input ports.UpdateRecipeInput) (*domain.Recipe, error) {
	s.lastActor, s.lastID, s.lastUpdate = actorID, id, input
	return s.recipe, s.err
}

func (s *stubRecipes) Delete(_ context.Context, actorID, id int64) error {
	s.lastActor, s.lastID = actorID, id
	return s.err
}

func (s *stubRecipes) SetImage(_ context.Context, actorID, id int64, input ports.UploadImageInput) (*domain.Recipe, error) {
	s.lastActor, s.lastID = actorID, id
	data, _ := io.ReadAll(input.Content)
	s.lastUpload.filename = input.Filename
	s.lastUpload.contentType = input.ContentType
	s.lastUpload.content = string(data)
	return s.recipe, s.err
}

func (s *stubRecipes) ImageURL(_ context.Context, id int64) (*domain.RecipeImage, error) {
	s.lastID = id
	return s.image, s.err
}

func (s *stubRecipes) SearchByPreferences(_ context.Context, userID int64, input ports.SearchByPreferencesInput) (*domain.Page[*domain.Recipe], error) {
	s.lastActor, s.lastSearch = userID, input
	return s.page, s.err
}

type stubIngredients struct {
	ingredient *domain.Ingredient
	page       *domain.Page[*domain.Ingredient]
	err        error

	lastActor  int64
	lastID     int64
	lastCreate ports.IngredientInput
	lastUpdate ports.UpdateIngredientInput
}

func (s *stubIngredients) Create(_ context.Context, authorID int64, input ports.IngredientInput) (*domain.Ingredient, error) {
	s.lastActor, s.lastCreate = authorID, input
	return s.ingredient, s.err
}

func (s *stubIngredients) GetIngredient(_ context.Context, id int64) (*domain.Ingredient, error) {
	s.lastID = id
	return s.ingredient, s.err
}

func (s *stubIngredients) ListIngredients(_ context.Context, _ int) (*domain.Page[*domain.Ingredient], error) {
	return s.page, s.err
}

func (s *stubIngredients) Update(_ context.Context, actorID, id int64, input ports.UpdateIngredientInput) (*domain.Ingredient, error) {
	s.lastActor, s.lastID, s.lastUpdate = actorID, id, input
	return s.ingredient, s.err
}

func (s *stubIngredients) Delete(_ context.Context, actorID, id int64) error {
	s.lastActor, s.lastID = actorID, id
	return s.err
}
