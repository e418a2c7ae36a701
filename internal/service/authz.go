package service

import "github.com/google/uuid"

// authorizeOwner is the single ownership gate. Every read, update or delete
// of an existing owned record must pass through it before anything else
// happens. Allowed iff the record's owner is the acting user; there are no
// roles, delegation or shared ownership.
func authorizeOwner(actorID, ownerID uuid.UUID) error {
	if actorID != ownerID {
		return ErrDenied
	}
	return nil
}
