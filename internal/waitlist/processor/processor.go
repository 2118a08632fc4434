package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"itda-server/internal/observability"
	"itda-server/internal/store"
	"strings"
)

// WaitlistStore defines the database operations required by WaitlistProcessor
type WaitlistStore interface {
	CreateWaitlistEntry(ctx context.Context, params store.CreateWaitlistEntryParams) (store.WaitlistEntry, error)
	ListWaitlistEntries(ctx context.Context, params store.ListWaitlistEntriesParams) ([]store.WaitlistEntry, error)
	CountWaitlistEntries(ctx context.Context, userType *string) (int, error)
}

var (
	ErrEmailAlreadyExists = errors.New("email already on the waitlist")
	ErrInvalidUserType    = errors.New("invalid user type")
	ErrFailedSignup       = errors.New("failed to join waitlist")
	ErrFailedList         = errors.New("failed to list waitlist entries")
)

const exportPageSize = 500

type WaitlistProcessor struct {
	store  WaitlistStore
	logger *observability.Logger
}

func New(store WaitlistStore, logger *observability.Logger) WaitlistProcessor {
	return WaitlistProcessor{
		store:  store,
		logger: logger,
	}
}

// SignupRequest represents a pre-launch signup
type SignupRequest struct {
	Email           string
	UserType        string
	Name            *string
	InstagramHandle *string
	CompanyName     *string
}

// Signup adds the email to the waitlist
func (p *WaitlistProcessor) Signup(ctx context.Context, req SignupRequest) (store.WaitlistEntry, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email", Value: email},
		observability.Field{Key: "user_type", Value: req.UserType},
	)

	if !isSignupUserType(req.UserType) {
		return store.WaitlistEntry{}, ErrInvalidUserType
	}

	params := store.CreateWaitlistEntryParams{
		Email:       email,
		UserType:    req.UserType,
		Name:        trimmed(req.Name),
		CompanyName: trimmed(req.CompanyName),
	}
	if handle := trimmed(req.InstagramHandle); handle != nil {
		h := strings.TrimPrefix(*handle, "@")
		params.InstagramHandle = &h
	}

	entry, err := p.store.CreateWaitlistEntry(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.WaitlistEntry{}, ErrEmailAlreadyExists
		}
		p.logger.Error(ctx, "failed to create waitlist entry", err)
		return store.WaitlistEntry{}, ErrFailedSignup
	}

	p.logger.Info(ctx, "waitlist signup")
	return entry, nil
}

// ListEntriesRequest represents the admin viewer filters
type ListEntriesRequest struct {
	UserType *string
	Page     int
	Limit    int
}

// ListEntriesResponse represents the paginated response
type ListEntriesResponse struct {
	Entries    []store.WaitlistEntry `json:"entries"`
	TotalCount int                   `json:"total_count"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

// ListEntries returns signups newest first with the total matching the filter
func (p *WaitlistProcessor) ListEntries(ctx context.Context, req ListEntriesRequest) (ListEntriesResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}
	if req.UserType != nil && !isSignupUserType(*req.UserType) {
		return ListEntriesResponse{}, ErrInvalidUserType
	}

	entries, err := p.store.ListWaitlistEntries(ctx, store.ListWaitlistEntriesParams{
		UserType: req.UserType,
		Limit:    req.Limit,
		Offset:   (req.Page - 1) * req.Limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list waitlist entries", err)
		return ListEntriesResponse{}, ErrFailedList
	}
	if entries == nil {
		entries = []store.WaitlistEntry{}
	}

	totalCount, err := p.store.CountWaitlistEntries(ctx, req.UserType)
	if err != nil {
		p.logger.Error(ctx, "failed to count waitlist entries", err)
		return ListEntriesResponse{}, ErrFailedList
	}

	return ListEntriesResponse{
		Entries:    entries,
		TotalCount: totalCount,
		Page:       req.Page,
		PageSize:   req.Limit,
		TotalPages: (totalCount + req.Limit - 1) / req.Limit,
	}, nil
}

// ExportEntries returns every signup matching the filter, newest first
func (p *WaitlistProcessor) ExportEntries(ctx context.Context, userType *string) ([]store.WaitlistEntry, error) {
	if userType != nil && !isSignupUserType(*userType) {
		return nil, ErrInvalidUserType
	}

	all := []store.WaitlistEntry{}
	for offset := 0; ; offset += exportPageSize {
		page, err := p.store.ListWaitlistEntries(ctx, store.ListWaitlistEntriesParams{
			UserType: userType,
			Limit:    exportPageSize,
			Offset:   offset,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to export waitlist entries", err)
			return nil, ErrFailedList
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			return all, nil
		}
	}
}

func isSignupUserType(userType string) bool {
	return userType == store.UserTypeInfluencer || userType == store.UserTypeAdvertiser
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
