package controllers

import (
	"time"

	"github.com/kunaalsai007/Wishlist-App/models"
)

// AuthResponse is returned by signup and login
type AuthResponse struct {
	Token string         `json:"token"`
	User  models.Profile `json:"user"`
}

// ItemResponse is an item with its adder resolved to a profile
type ItemResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	ImageURL string         `json:"imageUrl"`
	Price    float64        `json:"price"`
	Notes    string         `json:"notes"`
	AddedBy  models.Profile `json:"addedBy"`
	AddedAt  time.Time      `json:"addedAt"`
}

// WishlistResponse is a wishlist with every user reference resolved
type WishlistResponse struct {
	ID            uint             `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Creator       models.Profile   `json:"creator"`
	Collaborators []models.Profile `json:"collaborators"`
	Items         []ItemResponse   `json:"items"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

func toWishlistResponse(w *models.Wishlist) WishlistResponse {
	resp := WishlistResponse{
		ID:            w.ID,
		Title:         w.Title,
		Description:   w.Description,
		Creator:       w.Creator.Profile(),
		Collaborators: make([]models.Profile, 0, len(w.Collaborators)),
		Items:         make([]ItemResponse, 0, len(w.Items)),
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
	for _, c := range w.Collaborators {
		resp.Collaborators = append(resp.Collaborators, c.User.Profile())
	}
	for _, it := range w.Items {
		resp.Items = append(resp.Items, ItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			ImageURL: it.ImageURL,
			Price:    it.Price,
			Notes:    it.Notes,
			AddedBy:  it.AddedBy.Profile(),
			AddedAt:  it.AddedAt,
		})
	}
	return resp
}

func toWishlistResponses(lists []models.Wishlist) []WishlistResponse {
	out := make([]WishlistResponse, 0, len(lists))
	for i := range lists {
		out = append(out, toWishlistResponse(&lists[i]))
	}
	return out
}

func toProfiles(users []models.User) []models.Profile {
	out := make([]models.Profile, 0, len(users))
	for _, u := range users {
		out = append(out, u.Profile())
	}
	return out
}
