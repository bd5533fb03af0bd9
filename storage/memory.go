package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/neujobscan/backend/models"
)

// MemoryStore is an in-memory ScanStore and UserStore for tests and local
// development. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	scans map[string]*models.ATSResponse
	users map[string]*models.User
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		scans: make(map[string]*models.ATSResponse),
		users: make(map[string]*models.User),
	}
}

// SaveScan stores a copy of the scan under its scanId
func (m *MemoryStore) SaveScan(_ context.Context, scan *models.ATSResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.scans[scan.ScanID]; ok {
		return ErrAlreadyExists
	}
	copied := *scan
	m.scans[scan.ScanID] = &copied
	return nil
}

// GetScan returns one scan by its ID
func (m *MemoryStore) GetScan(_ context.Context, scanID string) (*models.ATSResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	scan, ok := m.scans[scanID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *scan
	return &copied, nil
}

// GetScanHistory returns a user's scans, most recent first
func (m *MemoryStore) GetScanHistory(_ context.Context, userID string, limit int) ([]*models.ATSResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var scans []*models.ATSResponse
	for _, scan := range m.scans {
		if scan.UserID != userID {
			continue
		}
		copied := *scan
		scans = append(scans, &copied)
	}
	sort.Slice(scans, func(i, j int) bool {
		return scans[i].Timestamp.After(scans[j].Timestamp)
	})
	if limit > 0 && len(scans) > limit {
		scans = scans[:limit]
	}
	return scans, nil
}

// CreateUser stores a new user keyed by email
func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Email]; ok {
		return ErrAlreadyExists
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	user.ID = user.Email
	if user.Plan == "" {
		user.Plan = "free"
	}
	copied := *user
	m.users[user.Email] = &copied
	return nil
}

// GetUserByEmail retrieves a user by email
func (m *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// UpdateUser applies a partial update to a user record. Only the fields the
// handlers actually patch are supported.
func (m *MemoryStore) UpdateUser(_ context.Context, email string, updates map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[email]
	if !ok {
		return ErrNotFound
	}
	if v, ok := updates["name"].(string); ok {
		user.Name = v
	}
	if v, ok := updates["plan"].(string); ok {
		user.Plan = v
	}
	if v, ok := updates["resumeUrl"].(string); ok {
		user.ResumeURL = v
	}
	user.UpdatedAt = time.Now()
	return nil
}

// DeleteUser removes a user
func (m *MemoryStore) DeleteUser(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, email)
	return nil
}
