package repository

import "errors"

var (
	ErrDuplicateIdentity   = errors.New("username or email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrWishlistNotFound    = errors.New("wishlist not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrAlreadyCollaborator = errors.New("user is already a collaborator")
)
