// Package media stores uploaded section images in object storage and records
// them as media rows inside the caller's transaction.
package media

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"poster-board/pkg/dbctx"
	"poster-board/pkg/logger"
	"poster-board/services/poster/internal/entity"
	"poster-board/services/poster/internal/repo/persistent"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// Uploader is the object storage the store writes to. *s3.Client satisfies it.
type Uploader interface {
	UploadFile(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

type Store struct {
	uploader  Uploader
	mediaRepo persistent.MediaRepository
	maxBytes  int64
	policy    *bluemonday.Policy
	logger    *logger.Logger
}

func NewStore(uploader Uploader, mediaRepo persistent.MediaRepository, maxBytes int64, log *logger.Logger) *Store {
	return &Store{
		uploader:  uploader,
		mediaRepo: mediaRepo,
		maxBytes:  maxBytes,
		policy:    bluemonday.StrictPolicy(),
		logger:    log,
	}
}

// Save validates and uploads file, then inserts its media row through dbc.
// Rejected uploads are reported as *entity.MediaInputError.
func (s *Store) Save(dbc dbctx.Context, ownerID int64, file *multipart.FileHeader, alt string) (*entity.Media, error) {
	if file == nil || file.Size == 0 {
		return nil, entity.NewMediaInputError("Uploaded file is empty.")
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return nil, entity.NewMediaInputError(fmt.Sprintf("Uploaded file exceeds the maximum size of %d bytes.", s.maxBytes))
	}

	data, err := s.read(file)
	if err != nil {
		return nil, err
	}

	mtype := mimetype.Detect(data)
	contentType := strings.TrimSpace(strings.Split(mtype.String(), ";")[0])
	if !strings.HasPrefix(contentType, "image/") {
		return nil, entity.NewMediaInputError(fmt.Sprintf("Unsupported media type: %s.", contentType))
	}

	key := fmt.Sprintf("posters/%d/%s%s", ownerID, uuid.New().String(), mtype.Extension())
	url, err := s.uploader.UploadFile(dbc.Ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store media: %w", err)
	}

	media := &entity.Media{
		Type:       contentType,
		Path:       url,
		Alt:        strings.TrimSpace(s.policy.Sanitize(alt)),
		StorageKey: key,
	}

	if err := s.mediaRepo.Create(dbc, media); err != nil {
		s.Discard(dbc.Ctx, media)
		return nil, fmt.Errorf("failed to record media: %w", err)
	}

	return media, nil
}

// Discard removes the stored object of a media row whose transaction was
// rolled back. Failures are logged only.
func (s *Store) Discard(ctx context.Context, media *entity.Media) {
	if media == nil || media.StorageKey == "" {
		return
	}
	// The request context may already be done when a deadline caused the rollback.
	if err := s.uploader.DeleteFile(context.WithoutCancel(ctx), media.StorageKey); err != nil {
		s.logger.Warn("Failed to discard media object %s: %v", media.StorageKey, err)
	}
}

func (s *Store) read(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	reader := io.Reader(src)
	if s.maxBytes > 0 {
		reader = io.LimitReader(src, s.maxBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, entity.NewMediaInputError(fmt.Sprintf("Uploaded file exceeds the maximum size of %d bytes.", s.maxBytes))
	}
	return data, nil
}
