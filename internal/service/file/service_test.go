package file

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/asistencia/asistencia-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveImport(t *testing.T) {
	ctx := context.Background()
	local, err := storage.NewLocalStorage(t.TempDir(), "/files")
	require.NoError(t, err)
	svc := NewFileService(local)

	key, err := svc.ArchiveImport(ctx, 2024, 3, strings.NewReader("a,b\n"), "/tmp/marzo.csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "imports/2024/03/"))
	assert.True(t, strings.HasSuffix(key, "-marzo.csv"))

	url, err := svc.ImportURL(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "/files/"+key, url)

	rc, err := local.Download(ctx, key)
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "a,b\n", string(body))

	require.NoError(t, svc.DeleteFile(ctx, key))
}

func TestArchiveImport_RejectsOtherTypes(t *testing.T) {
	local, err := storage.NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	_, err = NewFileService(local).ArchiveImport(context.Background(), 2024, 3, strings.NewReader("x"), "photo.png")
	assert.Error(t, err)
}

func TestArchiveImport_AcceptsWorkbook(t *testing.T) {
	local, err := storage.NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	key, err := NewFileService(local).ArchiveImport(context.Background(), 2025, 12, strings.NewReader("PK\x03\x04"), "Asistencia.XLSX")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, "-Asistencia.XLSX"))
}
