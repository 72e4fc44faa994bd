package postgresql

import (
	"context"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/user"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByEmail implements user.UserRepository.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, oauth_provider, oauth_provider_id, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, email).
		Scan(&found.ID, &found.Email, &found.PasswordHash, &found.OAuthProvider, &found.OAuthProviderID, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}

	return found, nil
}

// GetByID implements user.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, oauth_provider, oauth_provider_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Email, &found.PasswordHash, &found.OAuthProvider, &found.OAuthProviderID, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}

	return found, nil
}

// Create implements user.UserRepository.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (email, password_hash, oauth_provider, oauth_provider_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, password_hash, oauth_provider, oauth_provider_id, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query, newUser.Email, newUser.PasswordHash, newUser.OAuthProvider, newUser.OAuthProviderID).
		Scan(&created.ID, &created.Email, &created.PasswordHash, &created.OAuthProvider, &created.OAuthProviderID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}
	return created, nil
}

// ExistsByEmail implements user.UserRepository.
func (u *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, u.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// LinkGoogleAccount implements user.UserRepository.
func (u *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		UPDATE users
		SET oauth_provider = 'google', oauth_provider_id = $1, updated_at = NOW()
		WHERE email = $2
		RETURNING id, email, password_hash, oauth_provider, oauth_provider_id, created_at, updated_at
	`

	var updated user.User
	err := q.QueryRow(ctx, query, googleID, email).
		Scan(&updated.ID, &updated.Email, &updated.PasswordHash, &updated.OAuthProvider, &updated.OAuthProviderID, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}
	return updated, nil
}

// UpdatePassword implements user.UserRepository.
func (u *userRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	q := GetQuerier(ctx, u.db)

	query := `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := q.Exec(ctx, query, passwordHash, userID)
	return err
}
