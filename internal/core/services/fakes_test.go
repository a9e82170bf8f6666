package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
)

var errStoreDown = errors.New("connection refused")

type fakeUsers struct {
	mu     sync.Mutex
	byID   map[int64]*domain.User
	nextID int64
	err    error
}

func newFakeUsers(users ...*domain.User) *fakeUsers {
	f := &fakeUsers{byID: map[int64]*domain.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
		if u.ID > f.nextID {
			f.nextID = u.ID
		}
	}
	return f
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeUsers) Exists(_ context.Context, username, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	user.ID = f.nextID
	f.byID[user.ID] = user
	return nil
}

// fakeHasher prefixes instead of hashing and counts Verify calls.
type fakeHasher struct {
	verifies int
}

func (h *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *fakeHasher) Verify(password, hash string) error {
	h.verifies++
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeCodec struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	issued map[string]domain.Claims
	seq    int
}

func newFakeCodec(ttl time.Duration, now func() time.Time) *fakeCodec {
	return &fakeCodec{ttl: ttl, now: now, issued: map[string]domain.Claims{}}
}

func (c *fakeCodec) Issue(subject int64) (string, error) {
	return c.issueWithExpiry(subject, c.now().Add(c.ttl)), nil
}

func (c *fakeCodec) issueWithExpiry(subject int64, exp time.Time) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	token := fmt.Sprintf("token-%d-%d", subject, c.seq)
	c.issued[token] = domain.Claims{Subject: subject, ExpiresAt: exp.Truncate(time.Second)}
	return token
}

func (c *fakeCodec) Decode(token string) (*domain.Claims, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	claims, ok := c.issued[token]
	if !ok {
		return nil, domain.ErrMalformedToken
	}
	return &claims, nil
}

type fakeLedger struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
	err     error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{revoked: map[string]time.Duration{}}
}

func (l *fakeLedger) Revoke(_ context.Context, token string, ttl time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDependencyUnavailable, l.err)
	}
	if ttl <= 0 {
		return domain.ErrInvalidTTL
	}
	l.revoked[token] = ttl
	return nil
}

func (l *fakeLedger) IsRevoked(_ context.Context, token string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrDependencyUnavailable, l.err)
	}
	_, ok := l.revoked[token]
	return ok, nil
}

type fakeIngredients struct {
	mu     sync.Mutex
	byID   map[int64]*domain.Ingredient
	nextID int64
}

func newFakeIngredients(items ...*domain.Ingredient) *fakeIngredients {
	f := &fakeIngredients{byID: map[int64]*domain.Ingredient{}}
	for _, i := range items {
		f.byID[i.ID] = i
		if i.ID > f.nextID {
			f.nextID = i.ID
		}
	}
	return f
}

func (f *fakeIngredients) Create(_ context.Context, ingredient *domain.Ingredient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	ingredient.ID = f.nextID
	f.byID[ingredient.ID] = ingredient
	return nil
}

func (f *fakeIngredients) GetByID(_ context.Context, id int64) (*domain.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *i
	return &cp, nil
}

func (f *fakeIngredients) CountExisting(_ context.Context, ids []int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, id := range ids {
		if _, ok := f.byID[id]; ok {
			n++
		}
	}
	return n, nil
}

func (f *fakeIngredients) List(_ context.Context, limit, offset int) ([]*domain.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*domain.Ingredient, 0, len(f.byID))
	for _, i := range f.byID {
		all = append(all, i)
	}
	sort.Slice(all, func(a, b int) bool { return all[a].Name < all[b].Name })
	return window(all, limit, offset), nil
}

func (f *fakeIngredients) Update(_ context.Context, ingredient *domain.Ingredient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *ingredient
	f.byID[ingredient.ID] = &cp
	return nil
}

func (f *fakeIngredients) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

type fakeRecipes struct {
	mu          sync.Mutex
	byID        map[int64]*domain.Recipe
	links       map[int64][]int64
	saved       map[int64][]int64
	ingredients *fakeIngredients
	nextID      int64
}

func newFakeRecipes(ingredients *fakeIngredients) *fakeRecipes {
	return &fakeRecipes{
		byID:        map[int64]*domain.Recipe{},
		links:       map[int64][]int64{},
		saved:       map[int64][]int64{},
		ingredients: ingredients,
	}
}

func (f *fakeRecipes) Create(_ context.Context, recipe *domain.Recipe, ingredientIDs []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	recipe.ID = f.nextID
	cp := *recipe
	f.byID[recipe.ID] = &cp
	f.links[recipe.ID] = ingredientIDs
	return nil
}

func (f *fakeRecipes) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	f.mu.Lock()
	r, ok := f.byID[id]
	links := f.links[id]
	f.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	cp.Ingredients = []domain.Ingredient{}
	for _, iid := range links {
		if i, err := f.ingredients.GetByID(ctx, iid); err == nil {
			cp.Ingredients = append(cp.Ingredients, *i)
		}
	}
	return &cp, nil
}

func (f *fakeRecipes) List(_ context.Context, limit, offset int) ([]*domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return window(f.sorted(), limit, offset), nil
}

func (f *fakeRecipes) Update(_ context.Context, recipe *domain.Recipe, ingredientIDs []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *recipe
	f.byID[recipe.ID] = &cp
	if ingredientIDs != nil {
		f.links[recipe.ID] = ingredientIDs
	}
	return nil
}

func (f *fakeRecipes) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	delete(f.links, id)
	return nil
}

func (f *fakeRecipes) SearchByPreferences(_ context.Context, filter ports.PreferenceFilter, limit, offset int) ([]*domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Recipe
	for _, r := range f.sorted() {
		if filter.GlutenFree && !r.GlutenFree || filter.LowCarb && !r.LowCarb {
			continue
		}
		links := f.links[r.ID]
		if containsAny(links, filter.Liked) && !containsAny(links, filter.Disliked) {
			out = append(out, r)
		}
	}
	return window(out, limit, offset), nil
}

func (f *fakeRecipes) ListSaved(_ context.Context, userID int64, limit, offset int) ([]*domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Recipe
	for _, id := range f.saved[userID] {
		if r, ok := f.byID[id]; ok {
			out = append(out, r)
		}
	}
	return window(out, limit, offset), nil
}

func (f *fakeRecipes) IsSaved(_ context.Context, userID, recipeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return containsAny(f.saved[userID], []int64{recipeID}), nil
}

func (f *fakeRecipes) Save(_ context.Context, userID, recipeID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved[userID] = append(f.saved[userID], recipeID)
	return nil
}

func (f *fakeRecipes) Remove(_ context.Context, userID, recipeID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.saved[userID][:0]
	for _, id := range f.saved[userID] {
		if id != recipeID {
			kept = append(kept, id)
		}
	}
	f.saved[userID] = kept
	return nil
}

func (f *fakeRecipes) sorted() []*domain.Recipe {
	all := make([]*domain.Recipe, 0, len(f.byID))
	for _, r := range f.byID {
		all = append(all, r)
	}
	sort.Slice(all, func(a, b int) bool { return all[a].ID < all[b].ID })
	return all
}

type fakePreferences struct {
	mu     sync.Mutex
	byID   map[int64]*domain.Preference
	nextID int64
}

func newFakePreferences() *fakePreferences {
	return &fakePreferences{byID: map[int64]*domain.Preference{}}
}

func (f *fakePreferences) ListByUser(_ context.Context, userID int64) ([]domain.Preference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Preference
	for _, p := range f.byID {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (f *fakePreferences) GetByID(_ context.Context, id int64) (*domain.Preference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePreferences) Upsert(_ context.Context, pref *domain.Preference) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byID {
		if p.UserID == pref.UserID && p.IngredientID == pref.IngredientID {
			p.Type = pref.Type
			pref.ID = p.ID
			return nil
		}
	}
	f.nextID++
	pref.ID = f.nextID
	cp := *pref
	f.byID[pref.ID] = &cp
	return nil
}

func (f *fakePreferences) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeImages struct {
	mu      sync.Mutex
	objects map[string]string
	deleted []string
	putErr  error
}

func newFakeImages() *fakeImages {
	return &fakeImages{objects: map[string]string{}}
}

func (f *fakeImages) Put(_ context.Context, key, _ string, body io.Reader) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = string(data)
	return nil
}

func (f *fakeImages) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeImages) URL(_ context.Context, key string) (string, error) {
	return "https://images.test/" + key + "?signature=abc", nil
}

func (f *fakeImages) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok
}

func containsAny(haystack, needles []int64) bool {
	for _, h := range haystack {
		for _, n := range needles {
			if h == n {
				return true
			}
		}
	}
	return false
}

func window[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func body(s string) io.Reader { return strings.NewReader(s) }
