package file

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/asistencia/asistencia-backend-go/internal/pkg/storage"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// ImportPrefix is the storage folder archived clock exports live under.
const ImportPrefix = "imports/"

// allowedImportExts maps accepted clock export extensions to their content type.
var allowedImportExts = map[string]string{
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".csv":  "text/csv",
	".txt":  "text/plain",
}

type FileService interface {
	// ArchiveImport keeps a copy of an uploaded clock export under imports/YYYY/MM
	ArchiveImport(ctx context.Context, year, month int, file io.Reader, filename string) (string, error)

	// ImportURL is where an archived export can be downloaded from
	ImportURL(ctx context.Context, path string) (string, error)

	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// ArchiveImport implements FileService.
func (s *fileServiceImpl) ArchiveImport(ctx context.Context, year, month int, file io.Reader, filename string) (string, error) {
	base := filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(base))

	contentType, ok := allowedImportExts[ext]
	if !ok {
		return "", fmt.Errorf("invalid file type: only xlsx, csv, txt allowed")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate file id: %w", err)
	}
	key := path.Join(ImportPrefix, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), id.String()+"-"+base)

	counter := &countingReader{r: file}
	stored, err := s.storage.Upload(ctx, counter, key, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to archive import: %w", err)
	}

	slog.Info("import archived", "path", stored, "size", humanize.Bytes(uint64(counter.n)))
	return stored, nil
}

// ImportURL implements FileService.
func (s *fileServiceImpl) ImportURL(ctx context.Context, path string) (string, error) {
	return s.storage.GetURL(ctx, path, 0)
}

// DeleteFile implements FileService.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
