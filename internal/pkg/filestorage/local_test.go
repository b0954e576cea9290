package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"photo.png", true},
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"anim.gif", true},
		{"modern.webp", true},
		{"resume.pdf", true},
		{"PHOTO.PNG", true},
		{"Resume.Pdf", true},
		{"archive.tar.gz", false},
		{"script.sh", false},
		{"page.html", false},
		{"binary.exe", false},
		{"noextension", false},
		{"trailingdot.", false},
		{"", false},
		{".png", true}, // hidden file with accepted extension
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedFilename(tt.filename))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "photo.png", "photo.png"},
		{"spaces replaced", "my photo.png", "my_photo.png"},
		{"path stripped", "../../etc/passwd.png", "passwd.png"},
		{"windows separators neutralized", `C:\temp\shot.jpg`, "C__temp_shot.jpg"},
		{"special characters replaced", "a@b#c$.pdf", "a_b_c_.pdf"},
		{"kept characters", "report_v2-final.pdf", "report_v2-final.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFilename(tt.in))
		})
	}
}

// makeFileHeader builds a real multipart.FileHeader the way gin receives one.
func makeFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	fixed := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	storage.now = func() time.Time { return fixed }

	t.Run("accepted file is stored with timestamp prefix", func(t *testing.T) {
		fh := makeFileHeader(t, "image", "shot one.png", "fake-png-bytes")

		rel, err := storage.Save(fh, "projects")
		require.NoError(t, err)
		assert.Equal(t, "uploads/projects/20250314150926_shot_one.png", rel)

		data, err := os.ReadFile(filepath.Join(dir, "projects", "20250314150926_shot_one.png"))
		require.NoError(t, err)
		assert.Equal(t, "fake-png-bytes", string(data))
	})

	t.Run("disallowed extension is rejected silently", func(t *testing.T) {
		fh := makeFileHeader(t, "image", "malware.exe", "nope")

		rel, err := storage.Save(fh, "projects")
		require.NoError(t, err)
		assert.Empty(t, rel)

		_, statErr := os.Stat(filepath.Join(dir, "projects", "20250314150926_malware.exe"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("nil header is a no-op", func(t *testing.T) {
		rel, err := storage.Save(nil, "projects")
		require.NoError(t, err)
		assert.Empty(t, rel)
	})
}

func TestEnsureCategories(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	require.NoError(t, storage.EnsureCategories("profile", "projects"))

	for _, c := range []string{"profile", "projects"} {
		info, err := os.Stat(filepath.Join(dir, c))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
