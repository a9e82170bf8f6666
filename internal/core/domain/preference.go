package domain

type PreferenceType string

const (
	PreferenceAllergy PreferenceType = "allergy"
	PreferenceLike    PreferenceType = "like"
	PreferenceDislike PreferenceType = "dislike"
)

func (t PreferenceType) Valid() bool {
	switch t {
	case PreferenceAllergy, PreferenceLike, PreferenceDislike:
		return true
	}
	return false
}

type Preference struct {
	ID           int64          `json:"id"`
	UserID       int64          `json:"-"`
	IngredientID int64          `json:"ingredient_id"`
	Type         PreferenceType `json:"preference_type"`
}

func (p *Preference) OwnerID() int64 { return p.UserID }
