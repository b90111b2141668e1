package service

// AuthorizeOwner decides whether the authenticated principal may mutate a
// specific post or comment instance. It is a pure function over its two
// identifiers: allow iff the principal is the recorded owner.
//
// Returns nil when principalID equals ownerID, ErrNotOwner otherwise.
func AuthorizeOwner(principalID, ownerID int64) error {
	if principalID == ownerID {
		return nil
	}
	return ErrNotOwner
}
