package bloglist

import (
	"strings"

	"github.com/google/uuid"
)

// AuthorizeOwner decides whether the authenticated identity may mutate a
// resource recorded as owned by ownerID. Ids are normalized before the
// comparison since they may arrive in different textual forms. An empty
// ownerID marks a legacy ownerless record: those are denied for everyone,
// never claimable by whoever shows up authenticated.
func AuthorizeOwner(identity Identity, ownerID string) error {
	if identity == nil || identity.ID() == "" {
		return ErrAuthenticationRequired
	}

	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return ErrNotOwner
	}

	if normalizeID(identity.ID()) != normalizeID(owner) {
		return ErrNotOwner
	}

	return nil
}

func normalizeID(s string) string {
	s = strings.TrimSpace(s)
	if id, err := uuid.Parse(s); err == nil {
		return id.String()
	}
	return s
}
