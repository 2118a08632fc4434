package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=auth.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"itda-server/internal/observability"
	"itda-server/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
	GetInfluencerByID(ctx context.Context, influencerID uuid.UUID) (store.Influencer, error)
	GetAdvertiserByID(ctx context.Context, advertiserID uuid.UUID) (store.Advertiser, error)
}

var (
	ErrMissingToken    = errors.New("authorization token is missing")
	ErrParseJWTToken   = errors.New("failed to parse token")
	ErrInvalidJWTToken = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token expired")
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrFailedGetUser   = errors.New("failed to get user")
)

// AuthConfig holds the session provider settings
type AuthConfig struct {
	JWTSecret string
	Audience  string
}

type AuthProcessor struct {
	store      AuthStore
	authConfig AuthConfig
	logger     *observability.Logger
}

func New(store AuthStore, authConfig AuthConfig, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:      store,
		authConfig: authConfig,
		logger:     logger,
	}
}

// BaseClaims are the claims the auth provider puts in access tokens
type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
	Email          string           `json:"email"`
	Role           string           `json:"role"`
}

// SessionUser is the authenticated user with the profile matching their type
type SessionUser struct {
	User       store.User        `json:"user"`
	Influencer *store.Influencer `json:"influencer,omitempty"`
	Advertiser *store.Advertiser `json:"advertiser,omitempty"`
}

// GetSessionUser loads the user row and its influencer or advertiser profile
func (p *AuthProcessor) GetSessionUser(ctx context.Context, userID uuid.UUID) (SessionUser, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SessionUser{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user", err)
		return SessionUser{}, ErrFailedGetUser
	}

	session := SessionUser{User: user}
	switch user.UserType {
	case store.UserTypeInfluencer:
		influencer, err := p.store.GetInfluencerByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return SessionUser{}, ErrProfileNotFound
			}
			p.logger.Error(ctx, "failed to get influencer profile", err)
			return SessionUser{}, ErrFailedGetUser
		}
		session.Influencer = &influencer
	case store.UserTypeAdvertiser:
		advertiser, err := p.store.GetAdvertiserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return SessionUser{}, ErrProfileNotFound
			}
			p.logger.Error(ctx, "failed to get advertiser profile", err)
			return SessionUser{}, ErrFailedGetUser
		}
		session.Advertiser = &advertiser
	}
	return session, nil
}

// GetUserType returns the user's type for role gating
func (p *AuthProcessor) GetUserType(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user type", err)
		return "", ErrFailedGetUser
	}
	return user.UserType, nil
}
