// Package access decides whether an authenticated actor may act on an identity.
package access

import (
	"github.com/google/uuid"

	"github.com/dtroode/account-service/internal/model"
)

// CanAccess reports whether actor may read or modify the identity targetID.
// Actors may always act on themselves; admins may act on anyone.
func CanAccess(actor model.AuthContext, targetID uuid.UUID) bool {
	if actor.ID() == uuid.Nil {
		return false
	}
	return actor.ID() == targetID || actor.IsAdmin()
}
