package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime"
	"mime/multipart"
	"path"
	"sync"
	"time"

	"edoc-portal/config"
	"edoc-portal/internal/converter"
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/domain/repository"
	"edoc-portal/internal/service"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
)

const (
	uploadStatusReceived = "received"
	uploadWorkers        = 4
)

var (
	ErrNoFiles             = errors.New("no files uploaded")
	ErrTooManyFiles        = errors.New("too many files")
	ErrFileTooLarge        = errors.New("file exceeds the maximum size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrUnknownUploadKind   = errors.New("unknown upload kind")
)

type UploadUsecase interface {
	Upload(ctx context.Context, kind string, files []*multipart.FileHeader) (*dto.UploadResponse, error)
}

type uploadUsecase struct {
	log      *logrus.Logger
	storage  repository.ObjectStorage
	activity service.ActivityService
	cfg      config.UploadConfig
	allowed  map[string][]string
	now      func() time.Time
}

func NewUploadUsecase(log *logrus.Logger, storage repository.ObjectStorage, activity service.ActivityService, cfg config.UploadConfig) UploadUsecase {
	images := append(append([]string{}, cfg.ImageTypes...), cfg.DICOMTypes...)
	labs := append(append([]string{}, cfg.DocumentTypes...), cfg.ImageTypes...)
	return &uploadUsecase{
		log:      log,
		storage:  storage,
		activity: activity,
		cfg:      cfg,
		allowed: map[string][]string{
			entity.UploadKindImage: images,
			entity.UploadKindLab:   labs,
		},
		now: time.Now,
	}
}

type pendingUpload struct {
	header      *multipart.FileHeader
	contentType string
}

// Upload checks every file before storing any of them, then stores the
// files concurrently. A failed upload removes the objects already stored.
func (u *uploadUsecase) Upload(ctx context.Context, kind string, files []*multipart.FileHeader) (*dto.UploadResponse, error) {
	allowed, ok := u.allowed[kind]
	if !ok {
		return nil, ErrUnknownUploadKind
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if u.cfg.MaxFiles > 0 && len(files) > u.cfg.MaxFiles {
		return nil, fmt.Errorf("%w: at most %d files per upload", ErrTooManyFiles, u.cfg.MaxFiles)
	}

	pending := make([]pendingUpload, 0, len(files))
	for _, fh := range files {
		if u.cfg.MaxFileSize > 0 && fh.Size > u.cfg.MaxFileSize {
			return nil, fmt.Errorf("%w: %s is larger than %d MB", ErrFileTooLarge, fh.Filename, u.cfg.MaxFileSize/(1024*1024))
		}
		contentType, err := sniff(fh, allowed)
		if err != nil {
			return nil, err
		}
		pending = append(pending, pendingUpload{header: fh, contentType: contentType})
	}

	if u.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.Timeout)
		defer cancel()
	}

	var uploadedBy string
	if actor, ok := service.ActorFromContext(ctx); ok {
		uploadedBy = actor.Email
	}

	stored := make([]entity.StoredFile, len(pending))
	var (
		mu   sync.Mutex
		keys []string
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithMaxGoroutines(uploadWorkers)
	for i, pu := range pending {
		p.Go(func(ctx context.Context) error {
			file, written, err := u.store(ctx, kind, pu)
			mu.Lock()
			keys = append(keys, written...)
			mu.Unlock()
			if err != nil {
				return err
			}
			file.UploadedBy = uploadedBy
			stored[i] = *file
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		u.log.Warnf("Failed to store uploaded files: %+v", err)
		u.cleanup(keys)
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityUpload, "upload", "",
		fmt.Sprintf("%d %s file(s) uploaded", len(stored), kind))
	return converter.StoredFilesToResponse(kind, stored), nil
}

// sniff detects the content type from the file's leading bytes and checks
// it, or one of its parent types, against the allowed list.
func sniff(fh *multipart.FileHeader, allowed []string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	detected, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	for m := detected; m != nil; m = m.Parent() {
		base, _, _ := mime.ParseMediaType(m.String())
		for _, t := range allowed {
			if base == t {
				return base, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedFileType, fh.Filename, detected.String())
}

// store writes one file and, for JPEG and PNG images, its preview. It
// returns the object keys written so far even on error.
func (u *uploadUsecase) store(ctx context.Context, kind string, pu pendingUpload) (*entity.StoredFile, []string, error) {
	id := uuid.NewString()
	prefix := path.Join("uploads", kind, id)
	file := &entity.StoredFile{
		ID:          id,
		Kind:        kind,
		Name:        pu.header.Filename,
		ContentType: pu.contentType,
		Size:        pu.header.Size,
		ObjectKey:   path.Join(prefix, path.Base(pu.header.Filename)),
		Status:      uploadStatusReceived,
		UploadedAt:  u.now().UTC(),
	}

	src, err := pu.header.Open()
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()

	if err := u.storage.Put(ctx, file.ObjectKey, src, pu.header.Size, pu.contentType); err != nil {
		return nil, nil, err
	}
	written := []string{file.ObjectKey}

	if kind != entity.UploadKindImage || (pu.contentType != "image/jpeg" && pu.contentType != "image/png") {
		return file, written, nil
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, written, err
	}
	preview, err := u.preview(src, pu.contentType)
	if err != nil {
		// An undecodable image is still stored, just without a preview.
		u.log.Warnf("Failed to create preview for %s: %+v", file.Name, err)
		return file, written, nil
	}

	file.PreviewKey = path.Join(prefix, "preview"+previewExt(pu.contentType))
	if err := u.storage.Put(ctx, file.PreviewKey, bytes.NewReader(preview), int64(len(preview)), pu.contentType); err != nil {
		return nil, written, err
	}
	return file, append(written, file.PreviewKey), nil
}

func (u *uploadUsecase) preview(r io.Reader, contentType string) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	size := u.cfg.PreviewSize
	if size == 0 {
		size = 256
	}
	thumb := resize.Thumbnail(size, size, img, resize.Lanczos3)

	buf := new(bytes.Buffer)
	if contentType == "image/png" {
		err = png.Encode(buf, thumb)
	} else {
		err = jpeg.Encode(buf, thumb, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func previewExt(contentType string) string {
	if contentType == "image/png" {
		return ".png"
	}
	return ".jpg"
}

func (u *uploadUsecase) cleanup(keys []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, key := range keys {
		if err := u.storage.Remove(ctx, key); err != nil {
			u.log.Warnf("Failed to remove %s: %+v", key, err)
		}
	}
}
