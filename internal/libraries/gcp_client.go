package libraries

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Clients holds the object-storage client used for badge assets (logos,
// background images).
type Clients struct {
	GCS       *storage.Client
	Bucket    string
	ProjectID string
}

var clients *Clients

func GetClients() *Clients {
	return clients
}

// NewClients builds the GCS client from a base64-encoded service account
// JSON in the environment. Asset upload is optional: callers treat a nil
// client set as "storage not configured".
func NewClients(ctx context.Context) (*Clients, error) {
	// read base64 encoded JSON
	encoded := os.Getenv("GCP_SERVICE_ACCOUNT_CREDENTIALS")
	if encoded == "" {
		return nil, fmt.Errorf("GCP_SERVICE_ACCOUNT_CREDENTIALS not set")
	}
	bucket := os.Getenv("ASSET_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("ASSET_BUCKET not set")
	}

	// decode JSON
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode service account json: %w", err)
	}

	credOpt := option.WithCredentialsJSON(decoded)

	gcsClient, err := storage.NewClient(ctx, credOpt)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}

	clients = &Clients{
		GCS:       gcsClient,
		Bucket:    bucket,
		ProjectID: os.Getenv("GOOGLE_CLOUD_PROJECT_ID"),
	}

	return clients, nil
}

// UploadObject streams one object into the asset bucket and returns its
// public URL.
func (c *Clients) UploadObject(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w := c.GCS.Bucket(c.Bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("upload object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.Bucket, key), nil
}

func (c *Clients) Close() {
	c.GCS.Close()
}
