package domain

import "errors"

var (
	// Authentication
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrInvalidCredentials = errors.New("could not validate credentials")
	ErrTokenExpired       = errors.New("access token expired")
	ErrIdentityNotFound   = errors.New("user not found")
	ErrAlreadyExpired     = errors.New("token is already expired")
	ErrMalformedToken     = errors.New("malformed token")
	ErrInvalidTTL         = errors.New("revocation ttl must be positive")

	// Authorization
	ErrForbidden = errors.New("not authorized to modify this resource")

	// Resources
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidIngredients = errors.New("some ingredient ids are invalid")
	ErrInvalidPreference  = errors.New("invalid preference type")
	ErrAlreadySaved       = errors.New("recipe already saved")
	ErrNotSaved           = errors.New("recipe not found in saved recipes")

	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrInternal              = errors.New("internal server error")
)
