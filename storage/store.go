package storage

import (
	"context"
	"errors"

	"github.com/neujobscan/backend/models"
)

// Sentinel errors shared by every store implementation
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// ScanStore persists scan results. Implementations must make SaveScan atomic
// per scan: a scan is either fully visible in the history or absent.
type ScanStore interface {
	// SaveScan appends one scan to the owning user's history
	SaveScan(ctx context.Context, scan *models.ATSResponse) error
	// GetScan returns one scan by its ID, ErrNotFound when absent
	GetScan(ctx context.Context, scanID string) (*models.ATSResponse, error)
	// GetScanHistory returns a user's scans, most recent first. limit <= 0
	// means no limit.
	GetScanHistory(ctx context.Context, userID string, limit int) ([]*models.ATSResponse, error)
}

// UserStore persists user accounts
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error
	DeleteUser(ctx context.Context, email string) error
}
