package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/kunaalsai007/Wishlist-App/models"
	"github.com/kunaalsai007/Wishlist-App/utils"
	"gorm.io/gorm"
)

// UserRepository stores accounts and their password hashes
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a repository on db, which may be a transaction
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Register creates a user with a bcrypt-hashed password
func (r *UserRepository) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	email = utils.NormalizeEmail(email)

	taken, err := r.identityTaken(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateIdentity
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := r.create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindByEmail looks a user up by normalized email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", utils.NormalizeEmail(email)).First(&user).Error
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}

// FindByID looks a user up by id
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}

// VerifyPassword compares plaintext against the stored hash
func (r *UserRepository) VerifyPassword(user *models.User, plaintext string) bool {
	return utils.CheckPassword(plaintext, user.Password)
}

// Search returns users whose username or email contains fragment, ignoring
// case. The requesting user is never included and an empty fragment
// matches nobody.
func (r *UserRepository) Search(ctx context.Context, fragment string, excludeID uint, limit int) ([]models.User, error) {
	users := []models.User{}
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return users, nil
	}
	if limit <= 0 || limit > utils.SearchLimit {
		limit = utils.SearchLimit
	}

	pattern := "%" + escapeLike(strings.ToLower(fragment)) + "%"
	err := r.db.WithContext(ctx).
		Where("(LOWER(username) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\') AND id <> ?", pattern, pattern, excludeID).
		Order("username ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// FindOrCreateGoogleUser resolves a Google account to a local user. An
// existing account with the same email is linked rather than duplicated.
func (r *UserRepository) FindOrCreateGoogleUser(ctx context.Context, googleID, email, name string) (*models.User, error) {
	email = utils.NormalizeEmail(email)
	db := r.db.WithContext(ctx)

	var user models.User
	err := db.Where("google_id = ?", googleID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	existing, err := r.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if err := db.Model(existing).Update("google_id", googleID).Error; err != nil {
			return nil, err
		}
		existing.GoogleID = &googleID
		return existing, nil
	case !errors.Is(err, ErrUserNotFound):
		return nil, err
	}

	username, err := r.availableUsername(ctx, usernameSeed(name, email))
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user = models.User{
		Username: username,
		Email:    email,
		Password: hash,
		GoogleID: &googleID,
	}
	if err := r.create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateIdentity
	}
	return err
}

func (r *UserRepository) identityTaken(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) availableUsername(ctx context.Context, seed string) (string, error) {
	candidate := seed
	for i := 0; i < 5; i++ {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = seed + "-" + uuid.NewString()[:6]
	}
	return "", ErrDuplicateIdentity
}

var usernameStrip = regexp.MustCompile(`[^a-z0-9_.-]+`)

func usernameSeed(name, email string) string {
	seed := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "."))
	if seed == "" {
		seed = strings.SplitN(email, "@", 2)[0]
	}
	seed = usernameStrip.ReplaceAllString(seed, "")
	for len(seed) < 3 {
		seed += "_"
	}
	if len(seed) > 20 {
		seed = seed[:20]
	}
	return seed
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
