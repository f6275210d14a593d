package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kunaalsai007/Wishlist-App/models"
	"github.com/kunaalsai007/Wishlist-App/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Guard is evaluated against the locked wishlist before a write. A non-nil
// error aborts the transaction and is returned unchanged.
type Guard func(w *models.Wishlist) error

// ItemGuard is a Guard for writes addressed at a single item
type ItemGuard func(w *models.Wishlist, item *models.WishlistItem) error

// ItemInput holds the fields of a new item
type ItemInput struct {
	Name     string
	ImageURL string
	Price    float64
	Notes    string
}

// ItemPatch is a partial item update. Nil fields keep their current value,
// non-nil fields overwrite it even with "" or 0.
type ItemPatch struct {
	Name     *string
	ImageURL *string
	Price    *float64
	Notes    *string
}

func (p ItemPatch) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.ImageURL != nil {
		cols["image_url"] = *p.ImageURL
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	return cols
}

// WishlistRepository stores wishlists together with their collaborators and
// items. Every write runs in one transaction holding the wishlist row lock.
type WishlistRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewWishlistRepository creates a repository on db
func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db, now: time.Now}
}

// WithClock replaces the time source used for timestamps
func (r *WishlistRepository) WithClock(now func() time.Time) *WishlistRepository {
	r.now = now
	return r
}

func withAggregate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Creator").
		Preload("Collaborators", func(db *gorm.DB) *gorm.DB {
			return db.Order("wishlist_collaborators.id ASC")
		}).
		Preload("Collaborators.User").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("wishlist_items.position ASC")
		}).
		Preload("Items.AddedBy")
}

// Create stores a new wishlist whose only collaborator is its creator
func (r *WishlistRepository) Create(ctx context.Context, creatorID uint, title, description string) (*models.Wishlist, error) {
	now := r.now().UTC()
	wishlist := models.Wishlist{
		Title:       title,
		Description: description,
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&wishlist).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&models.WishlistCollaborator{
			WishlistID: wishlist.ID,
			UserID:     creatorID,
			JoinedAt:   now,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	utils.RecordMutation("create_wishlist")
	return r.GetByID(ctx, wishlist.ID)
}

// ListFor returns the wishlists the user created or collaborates on, most
// recently updated first
func (r *WishlistRepository) ListFor(ctx context.Context, userID uint) ([]models.Wishlist, error) {
	db := r.db.WithContext(ctx)
	memberOf := db.Model(&models.WishlistCollaborator{}).Select("wishlist_id").Where("user_id = ?", userID)

	wishlists := []models.Wishlist{}
	err := withAggregate(db).
		Where("creator_id = ? OR id IN (?)", userID, memberOf).
		Order("updated_at DESC").
		Order("id DESC").
		Find(&wishlists).Error
	if err != nil {
		return nil, err
	}
	return wishlists, nil
}

// GetByID loads a wishlist with creator, collaborators and items resolved
func (r *WishlistRepository) GetByID(ctx context.Context, id uint) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := withAggregate(r.db.WithContext(ctx)).First(&wishlist, id).Error; err != nil {
		return nil, notFound(err, ErrWishlistNotFound)
	}
	return &wishlist, nil
}

// AddItem appends an item added by actorID
func (r *WishlistRepository) AddItem(ctx context.Context, wishlistID, actorID uint, in ItemInput, guard Guard) (*models.Wishlist, error) {
	return r.mutate(ctx, wishlistID, "add_item", func(tx *gorm.DB, w *models.Wishlist, now time.Time) error {
		if err := guard(w); err != nil {
			return err
		}
		item := models.WishlistItem{
			ID:         uuid.NewString(),
			WishlistID: w.ID,
			Position:   w.NextItemPosition(),
			Name:       in.Name,
			ImageURL:   in.ImageURL,
			Price:      in.Price,
			Notes:      in.Notes,
			AddedByID:  actorID,
			AddedAt:    now,
		}
		return tx.Omit(clause.Associations).Create(&item).Error
	})
}

// UpdateItem applies patch to an item
func (r *WishlistRepository) UpdateItem(ctx context.Context, wishlistID uint, itemID string, patch ItemPatch, guard ItemGuard) (*models.Wishlist, error) {
	return r.mutate(ctx, wishlistID, "update_item", func(tx *gorm.DB, w *models.Wishlist, _ time.Time) error {
		item := w.FindItem(itemID)
		if item == nil {
			return ErrItemNotFound
		}
		if err := guard(w, item); err != nil {
			return err
		}
		cols := patch.columns()
		if len(cols) == 0 {
			return nil
		}
		return tx.Model(&models.WishlistItem{}).
			Where("id = ? AND wishlist_id = ?", item.ID, w.ID).
			UpdateColumns(cols).Error
	})
}

// RemoveItem deletes an item
func (r *WishlistRepository) RemoveItem(ctx context.Context, wishlistID uint, itemID string, guard ItemGuard) (*models.Wishlist, error) {
	return r.mutate(ctx, wishlistID, "remove_item", func(tx *gorm.DB, w *models.Wishlist, _ time.Time) error {
		item := w.FindItem(itemID)
		if item == nil {
			return ErrItemNotFound
		}
		if err := guard(w, item); err != nil {
			return err
		}
		return tx.Where("id = ? AND wishlist_id = ?", item.ID, w.ID).Delete(&models.WishlistItem{}).Error
	})
}

// AddCollaborator resolves email to a registered user and adds them.
// The invitee is returned so the caller can notify them.
func (r *WishlistRepository) AddCollaborator(ctx context.Context, wishlistID uint, email string, guard Guard) (*models.Wishlist, *models.User, error) {
	var invitee *models.User
	wishlist, err := r.mutate(ctx, wishlistID, "add_collaborator", func(tx *gorm.DB, w *models.Wishlist, now time.Time) error {
		if err := guard(w); err != nil {
			return err
		}
		user, err := NewUserRepository(tx).FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if w.IsCollaborator(user.ID) {
			return ErrAlreadyCollaborator
		}
		err = tx.Omit(clause.Associations).Create(&models.WishlistCollaborator{
			WishlistID: w.ID,
			UserID:     user.ID,
			JoinedAt:   now,
		}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyCollaborator
		}
		invitee = user
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return wishlist, invitee, nil
}

// Delete removes a wishlist with all of its items and collaborator rows
func (r *WishlistRepository) Delete(ctx context.Context, id uint, guard Guard) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		w, err := lockAggregate(tx, id)
		if err != nil {
			return err
		}
		if err := guard(w); err != nil {
			return err
		}
		if err := tx.Where("wishlist_id = ?", id).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("wishlist_id = ?", id).Delete(&models.WishlistCollaborator{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Wishlist{}, id).Error
	})
	if err != nil {
		return err
	}
	utils.RecordMutation("delete_wishlist")
	return nil
}

func (r *WishlistRepository) mutate(ctx context.Context, id uint, operation string, fn func(tx *gorm.DB, w *models.Wishlist, now time.Time) error) (*models.Wishlist, error) {
	now := r.now().UTC()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		w, err := lockAggregate(tx, id)
		if err != nil {
			return err
		}
		if err := fn(tx, w, now); err != nil {
			return err
		}
		return tx.Model(&models.Wishlist{}).Where("id = ?", id).UpdateColumn("updated_at", now).Error
	})
	if err != nil {
		return nil, err
	}

	utils.RecordMutation(operation)
	return r.GetByID(ctx, id)
}

// lockAggregate takes the wishlist row lock and then loads the aggregate
// inside the same transaction
func lockAggregate(tx *gorm.DB, id uint) (*models.Wishlist, error) {
	var locked models.Wishlist
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&locked, id).Error; err != nil {
		return nil, notFound(err, ErrWishlistNotFound)
	}
	var w models.Wishlist
	if err := withAggregate(tx).First(&w, id).Error; err != nil {
		return nil, notFound(err, ErrWishlistNotFound)
	}
	return &w, nil
}
