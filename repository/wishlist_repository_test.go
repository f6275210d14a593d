package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kunaalsai007/Wishlist-App/models"
	"github.com/kunaalsai007/Wishlist-App/repository"
	"github.com/kunaalsai007/Wishlist-App/utils/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var errDenied = errors.New("denied")

func allow(*models.Wishlist) error { return nil }

func allowItem(*models.Wishlist, *models.WishlistItem) error { return nil }

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

type fixture struct {
	db    *gorm.DB
	repo  *repository.WishlistRepository
	alice *models.User
	bob   *models.User
	carol *models.User
	ctx   context.Context
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return fixture{
		db:    db,
		repo:  repository.NewWishlistRepository(db).WithClock(testutil.SteppingClock(start)),
		alice: testutil.CreateTestUser(t, db, "alice"),
		bob:   testutil.CreateTestUser(t, db, "bob"),
		carol: testutil.CreateTestUser(t, db, "carol"),
		ctx:   context.Background(),
	}
}

func TestCreateWishlist(t *testing.T) {
	f := setup(t)

	w, err := f.repo.Create(f.ctx, f.alice.ID, "Birthday", "")
	require.NoError(t, err)

	assert.Equal(t, "Birthday", w.Title)
	assert.Equal(t, "", w.Description)
	assert.Equal(t, f.alice.ID, w.Creator.ID)
	assert.Equal(t, "alice", w.Creator.Username)
	assert.Equal(t, []uint{f.alice.ID}, w.CollaboratorIDs())
	assert.Equal(t, "alice", w.Collaborators[0].User.Username)
	assert.Empty(t, w.Items)
	assert.True(t, w.CreatedAt.Equal(w.UpdatedAt))
}

func TestAddItemBumpsUpdatedAtAndKeepsOrder(t *testing.T) {
	f := setup(t)
	w, err := f.repo.Create(f.ctx, f.alice.ID, "Birthday", "")
	require.NoError(t, err)
	created := w.UpdatedAt

	w, err = f.repo.AddItem(f.ctx, w.ID, f.alice.ID, repository.ItemInput{Name: "Headphones", Price: 49.99}, allow)
	require.NoError(t, err)
	require.Len(t, w.Items, 1)
	assert.True(t, w.UpdatedAt.After(created))

	first := w.UpdatedAt
	w, err = f.repo.AddItem(f.ctx, w.ID, f.alice.ID, repository.ItemInput{Name: "Mug"}, allow)
	require.NoError(t, err)
	require.Len(t, w.Items, 2)
	assert.True(t, w.UpdatedAt.After(first))

	assert.Equal(t, "Headphones", w.Items[0].Name)
	assert.Equal(t, 49.99, w.Items[0].Price)
	assert.Equal(t, "alice", w.Items[0].AddedBy.Username)
	assert.Equal(t, "Mug", w.Items[1].Name)
	assert.NotEqual(t, w.Items[0].ID, w.Items[1].ID)
	assert.Len(t, w.Items[0].ID, 36)
}

func TestGuardRejectionLeavesWishlistUntouched(t *testing.T) {
	f := setup(t)
	w, err := f.repo.Create(f.ctx, f.alice.ID, "Birthday", "")
	require.NoError(t, err)

	_, err = f.repo.AddItem(f.ctx, w.ID, f.bob.ID, repository.ItemInput{Name: "Mug"}, func(*models.Wishlist) error { return errDenied })
	assert.ErrorIs(t, err, errDenied)

	after, err := f.repo.GetByID(f.ctx, w.ID)
	require.NoError(t, err)
	assert.Empty(t, after.Items)
	assert.True(t, after.UpdatedAt.Equal(w.UpdatedAt))
}

func TestUpdateItemPatchSemantics(t *testing.T) {
	f := setup(t)
	w, err := f.repo.Create(f.ctx, f.alice.ID, "Birthday", "")
	require.NoError(t, err)
	w, err = f.repo.AddItem(f.ctx, w.ID, f.alice.ID, repository.ItemInput{
		Name: "Headphones", ImageURL: "http://img/h.png", Price: 49.99, Notes: "black",
	}, allow)
	require.NoError(t, err)
	itemID := w.Items[0].ID
	addedAt := w.Items[0].AddedAt

	w, err = f.repo.UpdateItem(f.ctx, w.ID, itemID, repository.ItemPatch{Price: floatPtr(0), Notes: strPtr("")}, allowItem)
	require.NoError(t, err)

	item := w.FindItem(itemID)
	require.NotNil(t, item)
	assert.Equal(t, "Headphones", item.Name)
	assert.Equal(t, "http://img/h.png", item.ImageURL)
	assert.Equal(t, float64(0), item.Price)
	assert.Equal(t, "", item.Notes)
	assert.Equal(t, f.alice.ID, item.AddedByID)
	assert.True(t, item.AddedAt.Equal(addedAt))
}

func TestItemNotFound(t *testing.T) {
	f := setup(t)
	w, err := f.repo.Create(f.ctx, f.alice.ID, "Birthday", "")
	require.NoError(t, err)

	_, err = f.repo.UpdateItem(f.ctx, w.ID, "missing", repository.ItemPatch{Name: strPtr("x")}, allowItem)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)

	_, err = f.repo.RemoveItem(f.ctx, w.ID, "missing", allowItem)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestItemFromAnotherWishlistIsNotFound(t *testing.T) {
	f := setup(t)
	first, err := f.repo.Create(f.ctx, f.alice.ID, "First", "")
	require.NoError(t, err)
	second, err := f.repo.Create(f.ctx, f.alice.ID, "Second", "")
	require.NoError(t, err)

	first, err = f.repo.AddItem(f.ctx, first.ID, f.alice.ID, repository.ItemInput{Name: "Lamp"}, allow)
	require.NoError(t, err)

	_, err = f.repo.RemoveItem(f.ctx, second.ID, first.Items[0].ID, allowItem)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	f := setup(t)
	w, err := f.repo.Create(f.ctx, f.alice.ID, "Birthday", "")
	require.NoError(t, err)
	for _, name := range []string{"A", "B", "C"} {
		w, err = f.repo.AddItem(f.ctx, w.ID, f.alice.ID, repository.ItemInput{Name: name}, allow)
		require.NoError(t, err)
	}
	before := w.UpdatedAt

	w, err = f.repo.RemoveItem(f.ctx, w.ID, w.Items[1].ID, allowItem)
	require.NoError(t, err)
	require.Len(t, w.Items, 2)
	assert.Equal(t, "A", w.Items[0].Name)
	assert.Equal(t, "C", w.Items[1].Name)
	assert.True(t, w.UpdatedAt.After(before))

	w, err = f.repo.AddItem(f.ctx, w.ID, f.alice.ID, repository.ItemInput{Name: "D"}, allow)
	require.NoError(t, err)
	assert.Equal(t, "D", w.Items[2].Name)
}

func TestAddCollaborator(t *testing.T) {
	f := setup(t)
	w, err := f.repo.Create(f.ctx, f.alice.ID, "Birthday", "")
	require.NoError(t, err)

	w, invitee, err := f.repo.AddCollaborator(f.ctx, w.ID, " BOB@example.com", allow)
	require.NoError(t, err)
	assert.Equal(t, f.bob.ID, invitee.ID)
	assert.Equal(t, []uint{f.alice.ID, f.bob.ID}, w.CollaboratorIDs())

	_, _, err = f.repo.AddCollaborator(f.ctx, w.ID, "bob@example.com", allow)
	assert.ErrorIs(t, err, repository.ErrAlreadyCollaborator)

	_, _, err = f.repo.AddCollaborator(f.ctx, w.ID, "alice@example.com", allow)
	assert.ErrorIs(t, err, repository.ErrAlreadyCollaborator)

	_, _, err = f.repo.AddCollaborator(f.ctx, w.ID, "nobody@example.com", allow)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	w, _, err = f.repo.AddCollaborator(f.ctx, w.ID, "carol@example.com", allow)
	require.NoError(t, err)
	assert.Equal(t, []uint{f.alice.ID, f.bob.ID, f.carol.ID}, w.CollaboratorIDs())
}

func TestListForOrdersByRecentUpdate(t *testing.T) {
	f := setup(t)
	older, err := f.repo.Create(f.ctx, f.alice.ID, "Older", "")
	require.NoError(t, err)
	newer, err := f.repo.Create(f.ctx, f.alice.ID, "Newer", "")
	require.NoError(t, err)
	shared, err := f.repo.Create(f.ctx, f.bob.ID, "Shared", "")
	require.NoError(t, err)
	_, err = f.repo.Create(f.ctx, f.bob.ID, "Private", "")
	require.NoError(t, err)

	_, _, err = f.repo.AddCollaborator(f.ctx, shared.ID, "alice@example.com", allow)
	require.NoError(t, err)
	_, err = f.repo.AddItem(f.ctx, older.ID, f.alice.ID, repository.ItemInput{Name: "Bump"}, allow)
	require.NoError(t, err)

	lists, err := f.repo.ListFor(f.ctx, f.alice.ID)
	require.NoError(t, err)
	require.Len(t, lists, 3)
	assert.Equal(t, older.ID, lists[0].ID)
	assert.Equal(t, shared.ID, lists[1].ID)
	assert.Equal(t, newer.ID, lists[2].ID)
	assert.Equal(t, "Bump", lists[0].Items[0].Name)

	lists, err = f.repo.ListFor(f.ctx, f.carol.ID)
	require.NoError(t, err)
	assert.NotNil(t, lists)
	assert.Empty(t, lists)
}

func TestDeleteRemovesEverything(t *testing.T) {
	f := setup(t)
	w, err := f.repo.Create(f.ctx, f.alice.ID, "Birthday", "")
	require.NoError(t, err)
	_, _, err = f.repo.AddCollaborator(f.ctx, w.ID, "bob@example.com", allow)
	require.NoError(t, err)
	_, err = f.repo.AddItem(f.ctx, w.ID, f.bob.ID, repository.ItemInput{Name: "Mug"}, allow)
	require.NoError(t, err)

	err = f.repo.Delete(f.ctx, w.ID, func(*models.Wishlist) error { return errDenied })
	assert.ErrorIs(t, err, errDenied)

	require.NoError(t, f.repo.Delete(f.ctx, w.ID, allow))

	_, err = f.repo.GetByID(f.ctx, w.ID)
	assert.ErrorIs(t, err, repository.ErrWishlistNotFound)

	var items, collaborators int64
	require.NoError(t, f.db.Model(&models.WishlistItem{}).Where("wishlist_id = ?", w.ID).Count(&items).Error)
	require.NoError(t, f.db.Model(&models.WishlistCollaborator{}).Where("wishlist_id = ?", w.ID).Count(&collaborators).Error)
	assert.Zero(t, items)
	assert.Zero(t, collaborators)

	lists, err := f.repo.ListFor(f.ctx, f.bob.ID)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestMissingWishlist(t *testing.T) {
	f := setup(t)

	_, err := f.repo.GetByID(f.ctx, 404)
	assert.ErrorIs(t, err, repository.ErrWishlistNotFound)
	_, err = f.repo.AddItem(f.ctx, 404, f.alice.ID, repository.ItemInput{Name: "x"}, allow)
	assert.ErrorIs(t, err, repository.ErrWishlistNotFound)
	_, _, err = f.repo.AddCollaborator(f.ctx, 404, "bob@example.com", allow)
	assert.ErrorIs(t, err, repository.ErrWishlistNotFound)
	assert.ErrorIs(t, f.repo.Delete(f.ctx, 404, allow), repository.ErrWishlistNotFound)
}
