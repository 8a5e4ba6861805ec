package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docsift/docsift/internal/report"
)

// RequestFilename is the request file expected inside the input directory.
const RequestFilename = "request.json"

// ErrInputMissing marks a missing input directory structure. Fatal: the run
// aborts before any processing.
var ErrInputMissing = errors.New("input directory structure missing")

// DocsDir returns the document directory inside an input directory.
func DocsDir(inputDir string) string {
	return filepath.Join(inputDir, "docs")
}

// LoadRequest reads and validates the analysis request from the input
// directory, which must contain request.json and a docs/ subdirectory.
func LoadRequest(inputDir string) (report.Request, error) {
	var req report.Request

	if info, err := os.Stat(DocsDir(inputDir)); err != nil || !info.IsDir() {
		return req, fmt.Errorf("%w: %s", ErrInputMissing, DocsDir(inputDir))
	}

	reqPath := filepath.Join(inputDir, RequestFilename)
	data, err := os.ReadFile(reqPath)
	if err != nil {
		return req, fmt.Errorf("%w: %s", ErrInputMissing, reqPath)
	}

	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parse %s: %w", RequestFilename, err)
	}
	if len(req.Documents) == 0 {
		return req, fmt.Errorf("request lists no documents")
	}
	return req, nil
}

// WriteReport serializes the report to outputDir/report.json, creating the
// directory if needed.
func WriteReport(outputDir string, rep *report.Report) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(rep, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	path := filepath.Join(outputDir, "report.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
