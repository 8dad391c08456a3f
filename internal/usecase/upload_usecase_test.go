package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"testing"

	"edoc-portal/config"
	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/infrastructure/objectstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFile struct {
	name string
	data []byte
}

func fileHeaders(t *testing.T, files ...testFile) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile("files", f.name)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["files"]
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testUploadConfig() config.UploadConfig {
	return config.UploadConfig{
		MaxFileSize:   1 << 20,
		MaxFiles:      3,
		ImageTypes:    []string{"image/jpeg", "image/png"},
		DocumentTypes: []string{"application/pdf", "text/plain"},
		DICOMTypes:    []string{"application/dicom"},
		PreviewSize:   64,
	}
}

func newTestUploadUsecase(env *testEnv, storage *objectstore.MemoryStorage, cfg config.UploadConfig) UploadUsecase {
	return NewUploadUsecase(env.log, storage, env.activity, cfg)
}

func TestUploadUsecase_ImageWithPreview(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	storage := objectstore.NewMemoryStorage()
	u := newTestUploadUsecase(env, storage, testUploadConfig())

	resp, err := u.Upload(ctx, entity.UploadKindImage, fileHeaders(t, testFile{"scan.png", pngBytes(t, 200, 100)}))
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)

	file := resp.Files[0]
	assert.Equal(t, "image/png", file.ContentType)
	assert.Equal(t, "uploads/image/"+file.ID+"/scan.png", file.ObjectKey)
	assert.Equal(t, "uploads/image/"+file.ID+"/preview.png", file.PreviewKey)

	preview, ok := storage.Get(file.PreviewKey)
	require.True(t, ok)
	img, err := png.Decode(bytes.NewReader(preview.Data))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())

	activities, err := env.activity.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "1 image file(s) uploaded", activities[0].Message)
}

func TestUploadUsecase_LabDocuments(t *testing.T) {
	storage := objectstore.NewMemoryStorage()
	u := newTestUploadUsecase(newTestEnv(), storage, testUploadConfig())

	resp, err := u.Upload(context.Background(), entity.UploadKindLab, fileHeaders(t,
		testFile{"results.txt", []byte("WBC 7.2\nRBC 4.8\n")},
		testFile{"xray.png", pngBytes(t, 10, 10)},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "text/plain", resp.Files[0].ContentType)
	assert.Empty(t, resp.Files[1].PreviewKey, "lab uploads get no preview")
	assert.Len(t, storage.Keys(), 2)
}

func TestUploadUsecase_Rejections(t *testing.T) {
	ctx := context.Background()
	cfg := testUploadConfig()
	cfg.MaxFileSize = 64
	storage := objectstore.NewMemoryStorage()
	u := newTestUploadUsecase(newTestEnv(), storage, cfg)

	_, err := u.Upload(ctx, "video", fileHeaders(t, testFile{"a.txt", []byte("a")}))
	assert.ErrorIs(t, err, ErrUnknownUploadKind)

	_, err = u.Upload(ctx, entity.UploadKindImage, nil)
	assert.ErrorIs(t, err, ErrNoFiles)

	many := fileHeaders(t,
		testFile{"1.txt", []byte("1")}, testFile{"2.txt", []byte("2")},
		testFile{"3.txt", []byte("3")}, testFile{"4.txt", []byte("4")},
	)
	_, err = u.Upload(ctx, entity.UploadKindLab, many)
	assert.ErrorIs(t, err, ErrTooManyFiles)

	_, err = u.Upload(ctx, entity.UploadKindLab, fileHeaders(t, testFile{"big.txt", []byte(strings.Repeat("x", 100))}))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = u.Upload(ctx, entity.UploadKindImage, fileHeaders(t,
		testFile{"ok.txt", []byte("plain text is not an image")},
	))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	assert.Empty(t, storage.Keys(), "nothing is stored when validation fails")
}

var errDiskFull = errors.New("disk full")

// flakyStorage fails every object named bad.txt.
type flakyStorage struct {
	*objectstore.MemoryStorage
}

func (s flakyStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if path.Base(key) == "bad.txt" {
		return errDiskFull
	}
	return s.MemoryStorage.Put(ctx, key, r, size, contentType)
}

func TestUploadUsecase_FailureRemovesStoredObjects(t *testing.T) {
	memory := objectstore.NewMemoryStorage()
	env := newTestEnv()
	u := NewUploadUsecase(env.log, flakyStorage{memory}, env.activity, testUploadConfig())

	_, err := u.Upload(context.Background(), entity.UploadKindLab, fileHeaders(t,
		testFile{"good.txt", []byte("fine")},
		testFile{"bad.txt", []byte("broken")},
	))
	assert.ErrorIs(t, err, errDiskFull)
	assert.Empty(t, memory.Keys())
}
