package services

import "github.com/vncsmyrnk/cookgen/internal/core/domain"

// RequireOwner allows a mutation only when actorID authored the resource.
// Callers load the resource first so a missing one reports not found instead.
func RequireOwner(resource domain.Owned, actorID int64) error {
	if resource == nil || resource.OwnerID() != actorID {
		return domain.ErrForbidden
	}
	return nil
}
