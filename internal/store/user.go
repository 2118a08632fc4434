package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlSelectUserByID = `
SELECT id, email, user_type, name, avatar_url, created_at, updated_at
FROM users
WHERE id = $1`

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlSelectUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

const sqlSelectAdvertiserByID = `
SELECT id, company_name, is_verified, created_at, updated_at
FROM advertisers
WHERE id = $1`

// GetAdvertiserByID retrieves an advertiser profile by ID
func (s *Store) GetAdvertiserByID(ctx context.Context, advertiserID uuid.UUID) (Advertiser, error) {
	var advertiser Advertiser
	err := s.db.GetContext(ctx, &advertiser, sqlSelectAdvertiserByID, advertiserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Advertiser{}, ErrNotFound
		}
		return Advertiser{}, fmt.Errorf("failed to get advertiser by id: %w", err)
	}
	return advertiser, nil
}
