package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/neujobscan/backend/config"
)

// CloudStorageClient wraps Google Cloud Storage operations for uploaded
// resume files
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.ResumeBucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// UploadResume uploads a resume file to Cloud Storage and returns its URL
func (c *CloudStorageClient) UploadResume(ctx context.Context, userID string, file multipart.File, header *multipart.FileHeader) (string, error) {
	objectName := resumeObjectName(userID, header.Filename)

	obj := c.client.Bucket(c.bucketName).Object(objectName)

	wc := obj.NewWriter(ctx)
	wc.ContentType = header.Header.Get("Content-Type")
	if wc.ContentType == "" {
		wc.ContentType = getContentType(filepath.Ext(header.Filename))
	}

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return c.objectURL(objectName), nil
}

// UploadResumeFromBytes uploads resume content that is already in memory
func (c *CloudStorageClient) UploadResumeFromBytes(ctx context.Context, userID string, content []byte, filename string) (string, error) {
	objectName := resumeObjectName(userID, filename)

	obj := c.client.Bucket(c.bucketName).Object(objectName)

	wc := obj.NewWriter(ctx)
	wc.ContentType = getContentType(filepath.Ext(filename))

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return c.objectURL(objectName), nil
}

// DeleteResume removes a previously uploaded resume file
func (c *CloudStorageClient) DeleteResume(ctx context.Context, resumeURL string) error {
	objectName, err := c.objectName(resumeURL)
	if err != nil {
		return err
	}

	if err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}

// DownloadResume fetches a resume file's content
func (c *CloudStorageClient) DownloadResume(ctx context.Context, resumeURL string) ([]byte, error) {
	objectName, err := c.objectName(resumeURL)
	if err != nil {
		return nil, err
	}

	rc, err := c.client.Bucket(c.bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}
	return data, nil
}

// GetSignedURL generates a signed URL for temporary access
func (c *CloudStorageClient) GetSignedURL(ctx context.Context, objectName string, expiration time.Duration) (string, error) {
	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(expiration),
	}

	url, err := c.client.Bucket(c.bucketName).SignedURL(objectName, opts)
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return url, nil
}

func (c *CloudStorageClient) objectURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName)
}

func (c *CloudStorageClient) objectName(resumeURL string) (string, error) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", c.bucketName)
	if !strings.HasPrefix(resumeURL, prefix) {
		return "", fmt.Errorf("invalid resume URL format")
	}
	return strings.TrimPrefix(resumeURL, prefix), nil
}

func resumeObjectName(userID, filename string) string {
	ext := filepath.Ext(filename)

	// Sanitize the user ID for use in the object path
	sanitized := strings.ReplaceAll(userID, "@", "_at_")
	sanitized = strings.ReplaceAll(sanitized, ".", "_")
	sanitized = strings.ReplaceAll(sanitized, "/", "_")

	return fmt.Sprintf("resumes/%s/%d%s", sanitized, time.Now().Unix(), ext)
}

func getContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
