package models

import (
	"time"
)

// Wishlist is a shared list owned by its creator. Collaborators and items
// are child rows that are only ever written together with the parent.
type Wishlist struct {
	ID            uint                   `gorm:"primaryKey" json:"id"`
	Title         string                 `gorm:"not null" json:"title"`
	Description   string                 `gorm:"not null;default:''" json:"description"`
	CreatorID     uint                   `gorm:"not null;index" json:"creator_id"`
	Creator       User                   `gorm:"foreignKey:CreatorID" json:"-"`
	Collaborators []WishlistCollaborator `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"-"`
	Items         []WishlistItem         `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `gorm:"index" json:"updated_at"`
}

// WishlistCollaborator grants a user access to a wishlist. The creator
// always has a row.
type WishlistCollaborator struct {
	ID         uint      `gorm:"primaryKey"`
	WishlistID uint      `gorm:"not null;uniqueIndex:idx_wishlist_collaborator"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_wishlist_collaborator;index"`
	User       User      `gorm:"foreignKey:UserID"`
	JoinedAt   time.Time `gorm:"not null"`
}

// WishlistItem is an entry inside a wishlist. Its id is only meaningful
// together with the parent wishlist id.
type WishlistItem struct {
	ID         string    `gorm:"primaryKey;size:36"`
	WishlistID uint      `gorm:"not null;index"`
	Position   int       `gorm:"not null"`
	Name       string    `gorm:"not null"`
	ImageURL   string    `gorm:"not null;default:''"`
	Price      float64   `gorm:"not null;default:0"`
	Notes      string    `gorm:"not null;default:''"`
	AddedByID  uint      `gorm:"not null"`
	AddedBy    User      `gorm:"foreignKey:AddedByID"`
	AddedAt    time.Time `gorm:"not null"`
}

// CollaboratorIDs returns the collaborator user ids in join order
func (w *Wishlist) CollaboratorIDs() []uint {
	ids := make([]uint, 0, len(w.Collaborators))
	for _, c := range w.Collaborators {
		ids = append(ids, c.UserID)
	}
	return ids
}

// FindItem returns the item with the given id, or nil
func (w *Wishlist) FindItem(itemID string) *WishlistItem {
	for i := range w.Items {
		if w.Items[i].ID == itemID {
			return &w.Items[i]
		}
	}
	return nil
}

// NextItemPosition is the position a newly appended item takes
func (w *Wishlist) NextItemPosition() int {
	next := 0
	for _, it := range w.Items {
		if it.Position >= next {
			next = it.Position + 1
		}
	}
	return next
}
