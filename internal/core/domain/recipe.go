package domain

import "time"

// Owned is implemented by every resource that can only be mutated by its author.
type Owned interface {
	OwnerID() int64
}

type Recipe struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Instructions string       `json:"instructions"`
	AuthorID     int64        `json:"author_id"`
	ImageName    *string      `json:"image_name"`
	GlutenFree   bool         `json:"gluten_free"`
	LowCarb      bool         `json:"low_carb"`
	Ingredients  []Ingredient `json:"ingredients"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (r *Recipe) OwnerID() int64 { return r.AuthorID }

type Ingredient struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AuthorID    int64     `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (i *Ingredient) OwnerID() int64 { return i.AuthorID }

type RecipeImage struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
}
