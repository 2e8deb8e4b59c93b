package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// minimalPDF assembles the smallest well-formed single-page PDF: one empty
// content stream and no fonts. Offsets in the xref table are computed from
// the buffer so the file parses strictly.
func minimalPDF() []byte {
	var buf bytes.Buffer
	offsets := make([]int, 5)

	buf.WriteString("%PDF-1.4\n")
	offsets[1] = buf.Len()
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	offsets[2] = buf.Len()
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	offsets[3] = buf.Len()
	buf.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R >>\nendobj\n")
	offsets[4] = buf.Len()
	buf.WriteString("4 0 obj\n<< /Length 0 >>\nstream\n\nendstream\nendobj\n")

	xref := buf.Len()
	buf.WriteString("xref\n0 5\n")
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= 4; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	buf.WriteString("trailer\n<< /Size 5 /Root 1 0 R >>\nstartxref\n")
	fmt.Fprintf(&buf, "%d\n", xref)
	buf.WriteString("%%EOF\n")
	return buf.Bytes()
}

func TestValidator_ValidateFile(t *testing.T) {
	tempDir := t.TempDir()

	garbagePath := filepath.Join(tempDir, "garbage.pdf")
	emptyPath := filepath.Join(tempDir, "empty.pdf")
	largePath := filepath.Join(tempDir, "large.pdf")
	txtPath := filepath.Join(tempDir, "document.txt")
	minimalPath := filepath.Join(tempDir, "minimal.pdf")

	if err := os.WriteFile(garbagePath, make([]byte, 1024), 0o644); err != nil {
		t.Fatalf("failed to create garbage PDF: %v", err)
	}
	if err := os.WriteFile(emptyPath, []byte{}, 0o644); err != nil {
		t.Fatalf("failed to create empty PDF: %v", err)
	}
	if err := os.WriteFile(largePath, make([]byte, 2*1024*1024), 0o644); err != nil {
		t.Fatalf("failed to create large PDF: %v", err)
	}
	if err := os.WriteFile(txtPath, []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("failed to create non-PDF: %v", err)
	}
	if err := os.WriteFile(minimalPath, minimalPDF(), 0o644); err != nil {
		t.Fatalf("failed to create minimal PDF: %v", err)
	}

	validator := NewValidator(1024 * 1024) // 1MB limit

	tests := []struct {
		name        string
		path        string
		expectValid bool
		messagePart string
	}{
		{
			name:        "valid minimal PDF",
			path:        minimalPath,
			expectValid: true,
		},
		{
			name:        "empty path",
			path:        "",
			expectValid: false,
			messagePart: "path cannot be empty",
		},
		{
			name:        "non-existent file",
			path:        filepath.Join(tempDir, "absent.pdf"),
			expectValid: false,
			messagePart: "does not exist",
		},
		{
			name:        "directory path",
			path:        tempDir,
			expectValid: false,
			messagePart: "directory",
		},
		{
			name:        "wrong extension",
			path:        txtPath,
			expectValid: false,
			messagePart: "not a PDF",
		},
		{
			name:        "empty file",
			path:        emptyPath,
			expectValid: false,
			messagePart: "empty",
		},
		{
			name:        "oversized file",
			path:        largePath,
			expectValid: false,
			messagePart: "too large",
		},
		{
			name:        "garbage bytes",
			path:        garbagePath,
			expectValid: false,
			messagePart: "invalid PDF file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := validator.ValidateFile(tt.path)
			if err != nil {
				t.Fatalf("ValidateFile() unexpected error: %v", err)
			}
			if result.Valid != tt.expectValid {
				t.Errorf("expected Valid=%v but got %v (message: %s)", tt.expectValid, result.Valid, result.Message)
			}
			if tt.expectValid && result.Pages != 1 {
				t.Errorf("expected 1 page, got %d", result.Pages)
			}
			if !tt.expectValid && !strings.Contains(result.Message, tt.messagePart) {
				t.Errorf("expected message containing %q, got %q", tt.messagePart, result.Message)
			}
		})
	}
}

func TestValidator_IsValidPDF(t *testing.T) {
	tempDir := t.TempDir()
	minimalPath := filepath.Join(tempDir, "minimal.pdf")
	if err := os.WriteFile(minimalPath, minimalPDF(), 0o644); err != nil {
		t.Fatalf("failed to create minimal PDF: %v", err)
	}

	validator := NewValidator(1024 * 1024)
	if !validator.IsValidPDF(minimalPath) {
		t.Error("expected minimal PDF to validate")
	}
	if validator.IsValidPDF(filepath.Join(tempDir, "absent.pdf")) {
		t.Error("expected missing file to fail validation")
	}
}

func TestExtractor_NoTextLayer(t *testing.T) {
	tempDir := t.TempDir()
	minimalPath := filepath.Join(tempDir, "minimal.pdf")
	if err := os.WriteFile(minimalPath, minimalPDF(), 0o644); err != nil {
		t.Fatalf("failed to create minimal PDF: %v", err)
	}

	_, err := NewExtractor().ExtractText(minimalPath)
	if !errors.Is(err, ErrNoTextLayer) {
		t.Errorf("expected ErrNoTextLayer, got %v", err)
	}
}

func TestExtractor_UnopenableFile(t *testing.T) {
	tempDir := t.TempDir()
	garbagePath := filepath.Join(tempDir, "garbage.pdf")
	if err := os.WriteFile(garbagePath, []byte("not a pdf at all"), 0o644); err != nil {
		t.Fatalf("failed to create garbage PDF: %v", err)
	}

	if _, err := NewExtractor().ExtractText(garbagePath); err == nil {
		t.Error("expected error opening garbage bytes")
	}
}

func TestConverter_ConvertFile(t *testing.T) {
	tempDir := t.TempDir()
	outDir := t.TempDir()

	minimalPath := filepath.Join(tempDir, "140337_doc.pdf")
	if err := os.WriteFile(minimalPath, minimalPDF(), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	garbagePath := filepath.Join(tempDir, "garbage.pdf")
	if err := os.WriteFile(garbagePath, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	converter := NewConverter(0, slog.New(slog.NewTextHandler(io.Discard, nil)))

	res, err := converter.ConvertFile(minimalPath, outDir)
	if err != nil {
		t.Fatalf("ConvertFile() unexpected error: %v", err)
	}
	if res.Disposition != DispositionScanned {
		t.Errorf("expected scanned disposition, got %q", res.Disposition)
	}
	if res.Pages != 1 {
		t.Errorf("expected page count 1, got %d", res.Pages)
	}
	if res.OutputPath != "" {
		t.Errorf("expected no output path for a scanned PDF, got %q", res.OutputPath)
	}

	res, err = converter.ConvertFile(garbagePath, outDir)
	if err != nil {
		t.Fatalf("ConvertFile() unexpected error: %v", err)
	}
	if res.Disposition != DispositionFailed {
		t.Errorf("expected failed disposition, got %q", res.Disposition)
	}
}

func TestConverter_Run(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "text")

	// One structurally valid PDF without text, one garbage file, one
	// oversized file, plus a non-PDF that the glob must ignore.
	if err := os.WriteFile(filepath.Join(inDir, "140337_doc.pdf"), minimalPDF(), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(inDir, "150012_doc.pdf"), []byte("garbage"), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(inDir, "160055_doc.pdf"), make([]byte, 2048), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(inDir, "readme.txt"), []byte("notes"), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	converter := NewConverter(1024, slog.New(slog.NewTextHandler(io.Discard, nil))) // 1KB limit trips the oversized file
	stats, err := converter.Run(context.Background(), inDir, outDir)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	want := Stats{Found: 3, Converted: 0, Scanned: 1, Failed: 2}
	if stats != want {
		t.Errorf("Run() stats = %+v, want %+v", stats, want)
	}

	// The output directory is created even when nothing converts.
	if info, statErr := os.Stat(outDir); statErr != nil || !info.IsDir() {
		t.Errorf("expected output directory, stat = %v, %v", info, statErr)
	}
	entries, _ := os.ReadDir(outDir)
	if len(entries) != 0 {
		t.Errorf("expected no converted files, found %d", len(entries))
	}
}

func TestConverter_Run_NoPDFs(t *testing.T) {
	converter := NewConverter(0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := converter.Run(context.Background(), t.TempDir(), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "no PDF files found") {
		t.Errorf("expected no-PDFs error, got %v", err)
	}
}

func TestConverter_Run_Cancelled(t *testing.T) {
	inDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(inDir, "a.pdf"), minimalPDF(), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	converter := NewConverter(0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if _, err := converter.Run(ctx, inDir, t.TempDir()); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestTxtName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/data/pdf/140337_Project Document.pdf", "140337_Project Document.txt"},
		{"plain.PDF", "plain.txt"},
		{"/deep/path/no_extension", "no_extension.txt"},
	}
	for _, tt := range tests {
		if got := txtName(tt.in); got != tt.want {
			t.Errorf("txtName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
