package store

import (
	"context"
	"fmt"
)

// CreateWaitlistEntryParams represents parameters for a waitlist signup
type CreateWaitlistEntryParams struct {
	Email           string
	UserType        string
	Name            *string
	InstagramHandle *string
	CompanyName     *string
}

const waitlistColumns = `id, email, user_type, name, instagram_handle, company_name, created_at`

const sqlCreateWaitlistEntry = `
INSERT INTO waitlist (email, user_type, name, instagram_handle, company_name)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + waitlistColumns

// CreateWaitlistEntry adds a signup. A duplicate email returns ErrAlreadyExists.
func (s *Store) CreateWaitlistEntry(ctx context.Context, params CreateWaitlistEntryParams) (WaitlistEntry, error) {
	var entry WaitlistEntry
	err := s.db.GetContext(ctx, &entry, sqlCreateWaitlistEntry,
		params.Email, params.UserType, params.Name, params.InstagramHandle, params.CompanyName)
	if err != nil {
		if isUniqueViolation(err) {
			return WaitlistEntry{}, ErrAlreadyExists
		}
		return WaitlistEntry{}, fmt.Errorf("failed to create waitlist entry: %w", err)
	}
	return entry, nil
}

// ListWaitlistEntriesParams represents filters for the admin viewer
type ListWaitlistEntriesParams struct {
	UserType *string
	Limit    int
	Offset   int
}

const sqlSelectWaitlistEntries = `
SELECT ` + waitlistColumns + `
FROM waitlist
WHERE ($1::text IS NULL OR user_type = $1)
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

// ListWaitlistEntries lists signups, newest first
func (s *Store) ListWaitlistEntries(ctx context.Context, params ListWaitlistEntriesParams) ([]WaitlistEntry, error) {
	entries := []WaitlistEntry{}
	err := s.db.SelectContext(ctx, &entries, sqlSelectWaitlistEntries, params.UserType, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlist entries: %w", err)
	}
	return entries, nil
}

const sqlCountWaitlistEntries = `
SELECT COUNT(*) FROM waitlist WHERE ($1::text IS NULL OR user_type = $1)`

// CountWaitlistEntries counts signups matching the filter
func (s *Store) CountWaitlistEntries(ctx context.Context, userType *string) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountWaitlistEntries, userType); err != nil {
		return 0, fmt.Errorf("failed to count waitlist entries: %w", err)
	}
	return count, nil
}
