package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/neujobscan/backend/config"
	"github.com/neujobscan/backend/models"
)

const (
	usersCollection = "users"
	scansCollection = "scans"
)

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// SaveScan writes one scan as a single document keyed by scanId. A document
// write is atomic, so the scan is either fully in the history or absent.
func (f *FirestoreClient) SaveScan(ctx context.Context, scan *models.ATSResponse) error {
	docRef := f.client.Collection(scansCollection).Doc(scan.ScanID)
	if _, err := docRef.Create(ctx, scan); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to save scan: %w", err)
	}
	return nil
}

// GetScan retrieves one scan by its ID
func (f *FirestoreClient) GetScan(ctx context.Context, scanID string) (*models.ATSResponse, error) {
	doc, err := f.client.Collection(scansCollection).Doc(scanID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}

	var scan models.ATSResponse
	if err := doc.DataTo(&scan); err != nil {
		return nil, fmt.Errorf("failed to parse scan data: %w", err)
	}
	return &scan, nil
}

// GetScanHistory returns a user's scans ordered newest first
func (f *FirestoreClient) GetScanHistory(ctx context.Context, userID string, limit int) ([]*models.ATSResponse, error) {
	query := f.client.Collection(scansCollection).
		Where("userId", "==", userID).
		OrderBy("timestamp", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var scans []*models.ATSResponse
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query scan history: %w", err)
		}

		var scan models.ATSResponse
		if err := doc.DataTo(&scan); err != nil {
			return nil, fmt.Errorf("failed to parse scan data: %w", err)
		}
		scans = append(scans, &scan)
	}
	return scans, nil
}

// CreateUser creates a new user in Firestore
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if user.Plan == "" {
		user.Plan = "free"
	}

	// Use email as document ID for uniqueness
	docRef := f.client.Collection(usersCollection).Doc(user.Email)

	_, err := docRef.Get(ctx)
	if err == nil {
		return ErrAlreadyExists
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check user existence: %w", err)
	}

	if _, err := docRef.Set(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = user.Email
	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	doc, err := f.client.Collection(usersCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUser updates user data
func (f *FirestoreClient) UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	docRef := f.client.Collection(usersCollection).Doc(email)
	if _, err := docRef.Set(ctx, updates, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdateUserResumeURL records where a user's uploaded resume file lives
func (f *FirestoreClient) UpdateUserResumeURL(ctx context.Context, email, resumeURL string) error {
	return f.UpdateUser(ctx, email, map[string]interface{}{
		"resumeUrl": resumeURL,
	})
}

// DeleteUser deletes a user
func (f *FirestoreClient) DeleteUser(ctx context.Context, email string) error {
	if _, err := f.client.Collection(usersCollection).Doc(email).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
