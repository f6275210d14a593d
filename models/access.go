package models

// The authorization model is four independent predicates. Item edits are
// not implied by ownership of the wishlist.

// IsCollaborator reports whether the user holds a collaborator row
func (w *Wishlist) IsCollaborator(userID uint) bool {
	for _, c := range w.Collaborators {
		if c.UserID == userID {
			return true
		}
	}
	return false
}

// CanAccess gates reads of the wishlist and adding items to it
func (w *Wishlist) CanAccess(userID uint) bool {
	return w.CreatorID == userID || w.IsCollaborator(userID)
}

// CanInvite reports whether the user may add collaborators
func (w *Wishlist) CanInvite(userID uint) bool {
	return w.CreatorID == userID
}

// CanDelete reports whether the user may delete the wishlist
func (w *Wishlist) CanDelete(userID uint) bool {
	return w.CreatorID == userID
}

// CanModify reports whether the user may edit or remove the item.
// Only the user who added it qualifies, the wishlist creator included.
func (it *WishlistItem) CanModify(userID uint) bool {
	return it.AddedByID == userID
}
