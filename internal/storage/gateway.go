package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"

	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/common"
)

// Gateway stores and retrieves receipt and odometer images in a bucketed
// blob store. Uploads are idempotent by path; downloading a missing or empty
// object is a hard failure, never silently empty bytes.
type Gateway interface {
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)
	Download(ctx context.Context, objectPath string) ([]byte, error)
	Delete(ctx context.Context, objectPath string) error
	SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error)
}

// ObjectPath namespaces an object per owner and per record so concurrent
// uploads never collide: <kind>/<ownerID>/<uniqueID>-<originalName>.
func ObjectPath(kind string, ownerID uuid.UUID, originalName string) string {
	return path.Join(kind, ownerID.String(), uuid.New().String()+"-"+sanitizeName(originalName))
}

func sanitizeName(name string) string {
	name = path.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == "/" {
		return "upload"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

type supabaseGateway struct {
	client *storage_go.Client
	bucket string
	log    *slog.Logger
}

// NewSupabaseGateway wraps a supabase storage bucket behind the Gateway
// contract.
func NewSupabaseGateway(cfg common.StorageConfig, log *slog.Logger) Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &supabaseGateway{
		client: storage_go.NewClient(strings.TrimRight(cfg.URL, "/"), cfg.APIKey, nil),
		bucket: cfg.Bucket,
		log:    log,
	}
}

func (g *supabaseGateway) Upload(_ context.Context, objectPath string, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", common.NewAppError("STORAGE_EMPTY_UPLOAD", objectPath, common.ErrInvalidInput)
	}
	upsert := true
	_, err := g.client.UploadFile(g.bucket, objectPath, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		g.log.Error("storage.upload.failed", "path", objectPath, "error", err)
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	g.log.Info("storage.upload.ok", "path", objectPath, "bytes", len(data))
	return objectPath, nil
}

func (g *supabaseGateway) Download(_ context.Context, objectPath string) ([]byte, error) {
	data, err := g.client.DownloadFile(g.bucket, objectPath)
	if err != nil {
		g.log.Error("storage.download.failed", "path", objectPath, "error", err)
		return nil, fmt.Errorf("download %s: %w", objectPath, err)
	}
	if len(data) == 0 {
		return nil, common.NewAppError("STORAGE_EMPTY_OBJECT", objectPath, common.ErrNotFound)
	}
	return data, nil
}

func (g *supabaseGateway) Delete(_ context.Context, objectPath string) error {
	if _, err := g.client.RemoveFile(g.bucket, []string{objectPath}); err != nil {
		g.log.Error("storage.delete.failed", "path", objectPath, "error", err)
		return fmt.Errorf("delete %s: %w", objectPath, err)
	}
	return nil
}

func (g *supabaseGateway) SignedURL(_ context.Context, objectPath string, ttl time.Duration) (string, error) {
	resp, err := g.client.CreateSignedUrl(g.bucket, objectPath, int(ttl.Seconds()))
	if err != nil {
		g.log.Error("storage.sign.failed", "path", objectPath, "error", err)
		return "", fmt.Errorf("sign %s: %w", objectPath, err)
	}
	return resp.SignedURL, nil
}
