package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/emre/devfolio/internal/pkg/logger"
)

// allowedExtensions is the fixed set of upload extensions accepted by the site.
var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
	"pdf":  {},
}

// LocalStorage persists uploaded files under a base directory, one
// subdirectory per resource category (profile, projects, ...).
type LocalStorage struct {
	basePath string
	now      func() time.Time // swappable for tests
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		now:      time.Now,
	}, nil
}

// AllowedFilename reports whether the filename carries one of the accepted
// extensions. The check is case-insensitive on the substring after the last dot.
func AllowedFilename(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	_, ok := allowedExtensions[ext]
	return ok
}

// sanitizeFilename reduces an uploaded filename to its base name and strips
// characters that are unsafe in a path component.
func sanitizeFilename(filename string) string {
	name := filepath.Base(filepath.ToSlash(filename))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Save stores an uploaded file under the given category subdirectory.
//
// Files without an accepted extension are rejected silently: the returned
// path is empty and the error is nil, so callers leave the row's existing
// path untouched. Accepted files are renamed with a second-granularity
// timestamp prefix to avoid collisions. The returned path is relative
// ("uploads/<category>/<name>") and uses forward slashes.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, category string) (string, error) {
	if fileHeader == nil || fileHeader.Filename == "" {
		return "", nil // no file uploaded
	}

	if !AllowedFilename(fileHeader.Filename) {
		logger.Warn().Str("filename", fileHeader.Filename).Str("category", category).Msg("Rejected upload with disallowed extension")
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dirPath := filepath.Join(ls.basePath, category)
	if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dirPath).Msg("Failed to create category directory")
		return "", fmt.Errorf("failed to create category directory: %w", err)
	}

	name := ls.now().Format("20060102150405") + "_" + sanitizeFilename(fileHeader.Filename)
	dstPath := filepath.Join(dirPath, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := path.Join("uploads", category, name)
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relPath).Msg("File saved")
	return relPath, nil
}

// BasePath returns the storage root directory.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// EnsureCategories creates the per-resource subdirectories up front.
func (ls *LocalStorage) EnsureCategories(categories ...string) error {
	for _, c := range categories {
		if err := os.MkdirAll(filepath.Join(ls.basePath, c), os.ModePerm); err != nil {
			return fmt.Errorf("failed to create category directory %s: %w", c, err)
		}
	}
	return nil
}
