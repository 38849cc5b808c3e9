// Package gcs stores pipeline artifacts in Google Cloud Storage. Bucket
// arguments may carry a gs:// scheme and trailing path segments; both are
// folded into the object path so callers can pass bucket specs verbatim from
// configuration.
package gcs

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Client wraps a Cloud Storage client.
type Client struct {
	storage *storage.Client
}

// New creates a storage client. credentialsFile is optional; when empty the
// client uses application default credentials.
func New(ctx context.Context, credentialsFile string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	sc, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &Client{storage: sc}, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.storage.Close()
}

// Put writes data to the bucket under path and returns the gs:// URI of the
// written object.
func (c *Client) Put(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error) {
	base, object := ResolveObject(bucket, path)
	if base == "" {
		return "", fmt.Errorf("empty bucket name")
	}
	if object == "" {
		return "", fmt.Errorf("empty object path")
	}

	w := c.storage.Bucket(base).Object(object).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("write object %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize object %s: %w", object, err)
	}
	return fmt.Sprintf("gs://%s/%s", base, object), nil
}

// Get reads an object from the bucket.
func (c *Client) Get(ctx context.Context, bucket, path string) ([]byte, error) {
	base, object := ResolveObject(bucket, path)
	r, err := c.storage.Bucket(base).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open object %s: %w", object, err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", object, err)
	}
	return data, nil
}

// ResolveObject normalizes a bucket spec plus object path into the base
// bucket name and the full object path: the gs:// scheme is stripped, path
// segments embedded in the bucket spec become an object prefix, and double
// slashes collapse to one.
func ResolveObject(bucket, path string) (base, object string) {
	spec := strings.TrimPrefix(bucket, "gs://")
	parts := strings.SplitN(spec, "/", 2)
	base = parts[0]
	object = path
	if len(parts) > 1 && parts[1] != "" {
		object = parts[1] + "/" + path
	}
	for strings.Contains(object, "//") {
		object = strings.ReplaceAll(object, "//", "/")
	}
	object = strings.Trim(object, "/")
	return base, object
}
