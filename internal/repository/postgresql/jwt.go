package postgresql

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/auth"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// JWTRepository persists refresh tokens. Tokens are stored as SHA-256
// fingerprints, never in the clear, together with the user agent and IP
// of the session that issued them.
type JWTRepository interface {
	CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error
	IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error)
	RevokeRefreshToken(ctx context.Context, token string) error
}

type refreshTokenStore struct {
	db *database.DB
}

func NewJWTRepository(db *database.DB) JWTRepository {
	return &refreshTokenStore{db: db}
}

// fingerprint is the at-rest form of a refresh token.
func fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (r *refreshTokenStore) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at, user_agent, ip_address)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := q.Exec(ctx, query,
		userID, fingerprint(token), time.Unix(expiresAt, 0).UTC(),
		sessionReq.UserAgent, sessionReq.IPAddress,
	)
	return err
}

// IsRefreshTokenRevoked reports whether the token may still mint access
// tokens. A token that was never issued by this server counts as revoked.
func (r *refreshTokenStore) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT revoked_at IS NOT NULL OR expires_at <= NOW()
		FROM refresh_tokens
		WHERE token_hash = $1
		ORDER BY expires_at DESC
		LIMIT 1
	`

	var revoked bool
	err := q.QueryRow(ctx, query, fingerprint(token)).Scan(&revoked)
	if err == pgx.ErrNoRows {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return revoked, nil
}

func (r *refreshTokenStore) RevokeRefreshToken(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token_hash = $1 AND revoked_at IS NULL
	`
	_, err := q.Exec(ctx, query, fingerprint(token))
	return err
}
