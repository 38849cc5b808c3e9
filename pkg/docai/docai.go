// Package docai wraps the Google Document AI processor call used to extract
// crash report entities from single-page PDFs.
package docai

import (
	"context"
	"fmt"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"
)

// Config identifies the Document AI processor. CredentialsFile is optional;
// when empty the client falls back to application default credentials.
type Config struct {
	ProjectID       string
	Location        string
	ProcessorID     string
	CredentialsFile string
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	switch {
	case c.ProjectID == "":
		return fmt.Errorf("project_id is required")
	case c.Location == "":
		return fmt.Errorf("location is required")
	case c.ProcessorID == "":
		return fmt.Errorf("processor_id is required")
	}
	return nil
}

// Process sends PDF bytes to the configured Document AI processor and returns
// the raw Document proto. Each call is independent; no client state is kept
// between pages.
func Process(ctx context.Context, pdfBytes []byte, cfg *Config) (*documentaipb.Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document ai config: %w", err)
	}

	endpoint := fmt.Sprintf("%s-documentai.googleapis.com:443", cfg.Location)
	opts := []option.ClientOption{option.WithEndpoint(endpoint)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := documentai.NewDocumentProcessorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Document AI client: %w", err)
	}
	defer client.Close()

	name := fmt.Sprintf(
		"projects/%s/locations/%s/processors/%s",
		cfg.ProjectID, cfg.Location, cfg.ProcessorID,
	)

	req := &documentaipb.ProcessRequest{
		Name: name,
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  pdfBytes,
				MimeType: "application/pdf",
			},
		},
		SkipHumanReview: true,
	}

	resp, err := client.ProcessDocument(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to process document: %w", err)
	}

	return resp.Document, nil
}
