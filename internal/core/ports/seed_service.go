package ports

import "context"

// SeedResult reports what the one-time seed created. The admin password is
// echoed back so the operator can log in; the endpoint is meant to be
// removed after first use.
type SeedResult struct {
	ProductName   string
	AdminEmail    string
	AdminPassword string
}

// AdminCheck reports whether the configured admin account exists.
type AdminCheck struct {
	Exists bool
	Email  string
}

// SeedService provisions the initial admin account and demo catalog entry.
type SeedService interface {
	Seed(ctx context.Context) (*SeedResult, error)
	CheckAdmin(ctx context.Context) (*AdminCheck, error)
}
