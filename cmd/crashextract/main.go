// crashextract processes Texas Peace Officer's Crash Report PDFs with Google
// Document AI and renders the extracted records as JSON and a multi-sheet
// workbook.
//
// Each page of the input PDF is split off, sent to a Document AI custom
// extractor, normalized into the report's sections, and decoded (code tables,
// checkboxes, composite street addresses, optional geocoding). The merged
// result can be written locally and uploaded to Cloud Storage.
//
// Configuration:
//
// The tool requires a YAML configuration file with Google Document AI
// settings:
//
//	project_id: "your-gcp-project-id"
//	location: "us"
//	processor_id: "your-processor-id"
//	output_bucket: "gs://your-output-bucket"
//	storage_prefix: "output"
//	maps_api_key: "optional-geocoding-key"
//
// Usage:
//
//	crashextract -config config.yml -pdf report.pdf [options]
//
// The -pdf argument accepts a local path or a gs:// URI.
//
// Output options (at least one required):
//
//	-json string       Path to save the extracted document JSON
//	-xlsx string       Path to save the workbook
//	-upload            Upload both artifacts to the configured output bucket
//	-debug-api string  Path to save the first raw API response as JSON
//
// Authentication uses the GOOGLE_APPLICATION_CREDENTIALS environment variable
// unless credentials_file is set in the configuration. The
// GOOGLE_MAPS_API_KEY environment variable overrides maps_api_key.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/protobuf/encoding/protojson"
	"gopkg.in/yaml.v3"

	"github.com/crashops/crashextract/pkg/crashdoc"
	"github.com/crashops/crashextract/pkg/crashreport"
	"github.com/crashops/crashextract/pkg/docai"
	"github.com/crashops/crashextract/pkg/export"
	"github.com/crashops/crashextract/pkg/gcs"
	"github.com/crashops/crashextract/pkg/geocode"
	"github.com/crashops/crashextract/pkg/orchestrate"
	"github.com/crashops/crashextract/pkg/pdfsplit"
)

type yamlConfig struct {
	ProjectID       string `yaml:"project_id"`
	Location        string `yaml:"location"`
	ProcessorID     string `yaml:"processor_id"`
	CredentialsFile string `yaml:"credentials_file"`
	OutputBucket    string `yaml:"output_bucket"`
	StoragePrefix   string `yaml:"storage_prefix"`
	MapsAPIKey      string `yaml:"maps_api_key"`
	RetryAttempts   int    `yaml:"retry_attempts"`

	CheckboxFields  []string `yaml:"checkbox_fields"`
	CheckedGlyphs   []string `yaml:"checked_glyphs"`
	UncheckedGlyphs []string `yaml:"unchecked_glyphs"`
}

func loadConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg yamlConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.StoragePrefix == "" {
		cfg.StoragePrefix = "output"
	}
	if key := os.Getenv("GOOGLE_MAPS_API_KEY"); key != "" {
		cfg.MapsAPIKey = key
	}
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}
	return &cfg, nil
}

// docaiOCR adapts the Document AI client to the orchestrator's OCR interface
// and keeps the first raw response for -debug-api.
type docaiOCR struct {
	cfg *docai.Config

	mu  sync.Mutex
	raw *documentaipb.Document
}

func (o *docaiOCR) Process(ctx context.Context, pageBytes []byte) ([]crashdoc.ExtractedField, string, error) {
	doc, err := docai.Process(ctx, pageBytes, o.cfg)
	if err != nil {
		return nil, "", err
	}
	o.mu.Lock()
	if o.raw == nil {
		o.raw = doc
	}
	o.mu.Unlock()
	fields, text := crashdoc.FieldsFromProto(doc)
	return fields, text, nil
}

// mapsGeocoder adapts the geocoding client to the reconstructor's interface.
type mapsGeocoder struct {
	client *geocode.Client
}

func (g *mapsGeocoder) Geocode(ctx context.Context, address string) ([]crashreport.Place, error) {
	locations, err := g.client.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}
	places := make([]crashreport.Place, 0, len(locations))
	for _, loc := range locations {
		places = append(places, crashreport.Place{CountyFull: loc.CountyFull, State: loc.State})
	}
	return places, nil
}

func main() {
	configPath := flag.String("config", "", "Path to the config YAML file (required)")
	pdfPath := flag.String("pdf", "", "Path to the input PDF file, local or gs:// (required)")

	jsonPath := flag.String("json", "", "Path to save the extracted document JSON")
	xlsxPath := flag.String("xlsx", "", "Path to save the workbook")
	upload := flag.Bool("upload", false, "Upload both artifacts to the configured output bucket")
	debugAPIPath := flag.String("debug-api", "", "Path to save the first raw API response as JSON")

	flag.Parse()

	if *configPath == "" || *pdfPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config and -pdf flags are required")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *jsonPath == "" && *xlsxPath == "" && !*upload && *debugAPIPath == "" {
		fmt.Fprintln(os.Stderr, "Error: at least one output flag must be provided (-json, -xlsx, -upload, or -debug-api)")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if *upload && cfg.OutputBucket == "" {
		log.Error("output_bucket must be configured when -upload is set")
		os.Exit(1)
	}

	ctx := context.Background()
	pdfBytes, err := readInput(ctx, cfg, *pdfPath)
	if err != nil {
		log.Error("failed to read PDF", "path", *pdfPath, "error", err)
		os.Exit(1)
	}

	pages, err := pdfsplit.Split(pdfBytes)
	if err != nil {
		log.Error("failed to split PDF", "path", *pdfPath, "error", err)
		os.Exit(1)
	}
	log.Info("split input PDF", "pages", len(pages))

	ocr := &docaiOCR{cfg: &docai.Config{
		ProjectID:       cfg.ProjectID,
		Location:        cfg.Location,
		ProcessorID:     cfg.ProcessorID,
		CredentialsFile: cfg.CredentialsFile,
	}}

	orchestrator := orchestrate.New(ocr, log)
	if cfg.RetryAttempts > 0 {
		orchestrator.Retry.MaxAttempts = cfg.RetryAttempts
	}
	applyCheckboxOverrides(orchestrator.Reconstructor, cfg)

	if cfg.MapsAPIKey != "" {
		geocoder, err := geocode.New(cfg.MapsAPIKey)
		if err != nil {
			log.Error("failed to create geocoding client", "error", err)
			os.Exit(1)
		}
		orchestrator.Reconstructor.Geocoder = &mapsGeocoder{client: geocoder}
	}
	orchestrator.OnProgress = func(page, total, done int) {
		log.Info("page complete", "page", page, "done", done, "total", total)
	}

	doc, err := orchestrator.Process(ctx, pages)
	if err != nil {
		log.Error("document processing failed", "error", err)
		os.Exit(1)
	}

	if *debugAPIPath != "" {
		writeDebugAPI(log, *debugAPIPath, ocr)
	}

	var jsonData, xlsxData []byte
	if *jsonPath != "" || *upload {
		jsonData, err = export.JSON(doc)
		if err != nil {
			log.Error("failed to render JSON", "error", err)
			os.Exit(1)
		}
	}
	if *xlsxPath != "" || *upload {
		xlsxData, err = export.Workbook(doc)
		if err != nil {
			log.Error("failed to render workbook", "error", err)
			os.Exit(1)
		}
	}

	if *jsonPath != "" {
		if err := os.WriteFile(*jsonPath, jsonData, 0644); err != nil {
			log.Error("failed to write JSON output", "path", *jsonPath, "error", err)
			os.Exit(1)
		}
		log.Info("wrote JSON output", "path", *jsonPath)
	}
	if *xlsxPath != "" {
		if err := os.WriteFile(*xlsxPath, xlsxData, 0644); err != nil {
			log.Error("failed to write workbook output", "path", *xlsxPath, "error", err)
			os.Exit(1)
		}
		log.Info("wrote workbook output", "path", *xlsxPath)
	}

	var uris []string
	if *upload {
		uris = uploadArtifacts(ctx, log, cfg, jsonData, xlsxData)
	}

	log.Info("done",
		"total_pages", doc.TotalPages,
		"succeeded", len(doc.Pages),
		"failed", doc.Failed,
		"artifacts", uris,
	)
}

// readInput loads the PDF from the local filesystem or, for gs:// paths,
// from Cloud Storage.
func readInput(ctx context.Context, cfg *yamlConfig, path string) ([]byte, error) {
	if !strings.HasPrefix(path, "gs://") {
		return os.ReadFile(path)
	}
	store, err := gcs.New(ctx, cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	defer store.Close()
	return store.Get(ctx, path, "")
}

func applyCheckboxOverrides(r *crashreport.Reconstructor, cfg *yamlConfig) {
	if len(cfg.CheckboxFields) > 0 {
		r.Checkboxes.Fields = cfg.CheckboxFields
	}
	if len(cfg.CheckedGlyphs) > 0 {
		r.Checkboxes.Checked = cfg.CheckedGlyphs
	}
	if len(cfg.UncheckedGlyphs) > 0 {
		r.Checkboxes.Unchecked = cfg.UncheckedGlyphs
	}
}

func writeDebugAPI(log *slog.Logger, path string, ocr *docaiOCR) {
	ocr.mu.Lock()
	raw := ocr.raw
	ocr.mu.Unlock()
	if raw == nil {
		log.Warn("no raw API response captured, skipping debug output")
		return
	}
	data, err := protojson.MarshalOptions{Indent: "  "}.Marshal(raw)
	if err != nil {
		log.Error("failed to marshal raw API response", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Error("failed to write raw API response", "path", path, "error", err)
		os.Exit(1)
	}
	log.Info("wrote raw API response", "path", path)
}

// uploadArtifacts persists both artifacts under a timestamped base name.
// A failed upload is fatal for that artifact; the other is not rolled back.
func uploadArtifacts(ctx context.Context, log *slog.Logger, cfg *yamlConfig, jsonData, xlsxData []byte) []string {
	store, err := gcs.New(ctx, cfg.CredentialsFile)
	if err != nil {
		log.Error("failed to create storage client", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	base := fmt.Sprintf("crash_report_%s", time.Now().Format("20060102_150405"))
	var uris []string

	jsonURI, err := store.Put(ctx, cfg.OutputBucket,
		fmt.Sprintf("%s/%s.json", cfg.StoragePrefix, base),
		jsonData, "application/json")
	if err != nil {
		log.Error("failed to upload JSON artifact", "error", err)
		os.Exit(1)
	}
	uris = append(uris, jsonURI)
	log.Info("uploaded JSON artifact", "uri", jsonURI)

	xlsxURI, err := store.Put(ctx, cfg.OutputBucket,
		fmt.Sprintf("%s/%s.xlsx", cfg.StoragePrefix, base),
		xlsxData, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err != nil {
		log.Error("failed to upload workbook artifact", "error", err)
		os.Exit(1)
	}
	uris = append(uris, xlsxURI)
	log.Info("uploaded workbook artifact", "uri", xlsxURI)

	return uris
}
