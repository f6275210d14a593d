package controllers

import (
	"github.com/kunaalsai007/Wishlist-App/models"
	"github.com/kunaalsai007/Wishlist-App/repository"
	"github.com/kunaalsai007/Wishlist-App/utils"
)

func denied(action, message string) error {
	utils.RecordAccessDenied(action)
	return utils.ForbiddenError(message)
}

func requireAccess(userID uint) repository.Guard {
	return func(w *models.Wishlist) error {
		if !w.CanAccess(userID) {
			return denied("access", "Access denied")
		}
		return nil
	}
}

func requireInvite(userID uint) repository.Guard {
	return func(w *models.Wishlist) error {
		if !w.CanInvite(userID) {
			return denied("invite", "Only the creator can invite users")
		}
		return nil
	}
}

func requireDelete(userID uint) repository.Guard {
	return func(w *models.Wishlist) error {
		if !w.CanDelete(userID) {
			return denied("delete_wishlist", "Only the creator can delete the wishlist")
		}
		return nil
	}
}

func requireItemAdder(userID uint, verb string) repository.ItemGuard {
	return func(_ *models.Wishlist, item *models.WishlistItem) error {
		if !item.CanModify(userID) {
			return denied(verb+"_item", "You can only "+verb+" items you added")
		}
		return nil
	}
}
