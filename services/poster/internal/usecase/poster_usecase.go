package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"poster-board/pkg/auth"
	"poster-board/pkg/dbctx"
	"poster-board/pkg/logger"
	"poster-board/pkg/queue"
	"poster-board/pkg/response"
	"poster-board/services/poster/internal/entity"
	"poster-board/services/poster/internal/repo/cache"
	"poster-board/services/poster/internal/repo/persistent"
)

type PosterUseCase interface {
	ListPosters(ctx context.Context) ([]*entity.Poster, error)
	GetPoster(ctx context.Context, id int64) (*entity.Poster, error)
	CreatePoster(ctx context.Context, form PosterForm) (response.Result, error)
	UpdatePoster(ctx context.Context, form PosterForm) (response.Result, error)
	DeletePoster(ctx context.Context, posterID string) (response.Result, error)
}

// AuthGate admits or rejects the caller of every operation.
type AuthGate interface {
	Check(ctx context.Context) (auth.Actor, error)
}

// MediaStore persists an uploaded section image. Save reports rejected input
// as *entity.MediaInputError.
type MediaStore interface {
	Save(dbc dbctx.Context, ownerID int64, file *multipart.FileHeader, alt string) (*entity.Media, error)
	Discard(ctx context.Context, media *entity.Media)
}

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

const defaultWriteTimeout = 15 * time.Second

var (
	errMediaFailed   = errors.New("section media could not be saved")
	errNoRowsUpdated = errors.New("poster update matched no rows")
)

type posterUseCase struct {
	posterRepo  persistent.PosterRepository
	posterCache cache.PosterCache
	mediaStore  MediaStore
	gate        AuthGate
	events      EventPublisher
	timeout     time.Duration
	logger      *logger.Logger
}

// NewPosterUseCase wires the aggregate service. posterCache and events may be nil.
func NewPosterUseCase(
	posterRepo persistent.PosterRepository,
	posterCache cache.PosterCache,
	mediaStore MediaStore,
	gate AuthGate,
	events EventPublisher,
	timeout time.Duration,
	logger *logger.Logger,
) PosterUseCase {
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	return &posterUseCase{
		posterRepo:  posterRepo,
		posterCache: posterCache,
		mediaStore:  mediaStore,
		gate:        gate,
		events:      events,
		timeout:     timeout,
		logger:      logger,
	}
}

func (uc *posterUseCase) ListPosters(ctx context.Context) ([]*entity.Poster, error) {
	if _, err := uc.gate.Check(ctx); err != nil {
		return nil, err
	}

	dbc := dbctx.Context{Ctx: ctx}
	posters, err := uc.posterRepo.List(dbc)
	if err != nil {
		uc.logger.Error("Failed to list posters: %v", err)
		return []*entity.Poster{}, nil
	}

	ids := make([]int64, len(posters))
	for i, p := range posters {
		ids[i] = p.ID
	}

	previews, err := uc.posterRepo.ListPreviewMedia(dbc, ids)
	if err != nil {
		uc.logger.Error("Failed to load poster previews: %v", err)
		return []*entity.Poster{}, nil
	}
	for _, p := range posters {
		p.Media = previews[p.ID]
	}

	return posters, nil
}

func (uc *posterUseCase) GetPoster(ctx context.Context, id int64) (*entity.Poster, error) {
	if _, err := uc.gate.Check(ctx); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, nil
	}

	if uc.posterCache != nil {
		cached, err := uc.posterCache.Get(ctx, id)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			uc.logger.Warn("Poster cache read failed for %d: %v", id, err)
		}
	}

	poster, err := uc.posterRepo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		if !errors.Is(err, persistent.ErrPosterNotFound) {
			uc.logger.Error("Failed to get poster %d: %v", id, err)
		}
		return nil, nil
	}

	if uc.posterCache != nil {
		if err := uc.posterCache.Set(ctx, poster); err != nil {
			uc.logger.Warn("Poster cache write failed for %d: %v", id, err)
		}
	}

	return poster, nil
}

func (uc *posterUseCase) CreatePoster(ctx context.Context, form PosterForm) (response.Result, error) {
	actor, err := uc.gate.Check(ctx)
	if err != nil {
		return response.Result{}, err
	}

	poster := &entity.Poster{
		UserID:       actor.UserID,
		Author:       sanitize(form.Author),
		CreationDate: sanitize(form.CreationDate),
		Headline:     sanitize(form.Headline),
		MetaData:     sanitize(form.MetaData),
	}

	missing := missingFields(
		requiredField{"User ID", poster.UserID},
		requiredField{"Author", poster.Author},
		requiredField{"Date", poster.CreationDate},
		requiredField{"Headline", poster.Headline},
	)
	if len(missing) > 0 {
		return missingFieldsResult(missing), nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var saved []*entity.Media
	err = uc.posterRepo.WithTransaction(ctx, func(dbc dbctx.Context) error {
		if err := uc.posterRepo.Create(dbc, poster); err != nil {
			return err
		}
		var err error
		saved, err = uc.saveSections(dbc, poster.ID, actor.UserID, form.Sections, false)
		return err
	})
	if err != nil {
		uc.discard(ctx, saved)
		return uc.writeFailure(err, "An error occurred while creating the poster."), nil
	}

	uc.logger.Info("Poster %d created by user %d", poster.ID, actor.UserID)
	uc.publish(ctx, queue.PosterCreated, poster.ID, actor.UserID)

	return response.New(response.Success, "Poster created successfully.").WithID(poster.ID), nil
}

func (uc *posterUseCase) UpdatePoster(ctx context.Context, form PosterForm) (response.Result, error) {
	actor, err := uc.gate.Check(ctx)
	if err != nil {
		return response.Result{}, err
	}

	poster := &entity.Poster{
		ID:           parsePosterID(sanitize(form.PosterID)),
		UserID:       actor.UserID,
		Author:       sanitize(form.Author),
		CreationDate: sanitize(form.CreationDate),
		Headline:     sanitize(form.Headline),
		MetaData:     sanitize(form.MetaData),
	}

	missing := missingFields(
		requiredField{"Poster ID", poster.ID},
		requiredField{"Author", poster.Author},
		requiredField{"Date", poster.CreationDate},
		requiredField{"Headline", poster.Headline},
	)
	if len(missing) > 0 {
		return missingFieldsResult(missing), nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var saved []*entity.Media
	err = uc.posterRepo.WithTransaction(ctx, func(dbc dbctx.Context) error {
		rows, err := uc.posterRepo.UpdateOwned(dbc, poster)
		if err != nil {
			return err
		}
		if rows == 0 {
			return errNoRowsUpdated
		}
		saved, err = uc.saveSections(dbc, poster.ID, actor.UserID, form.Sections, true)
		return err
	})
	if err != nil {
		uc.discard(ctx, saved)
		return uc.writeFailure(err, "An error occurred while updating the poster."), nil
	}

	uc.invalidate(ctx, poster.ID)
	uc.logger.Info("Poster %d updated by user %d", poster.ID, actor.UserID)
	uc.publish(ctx, queue.PosterUpdated, poster.ID, actor.UserID)

	return response.New(response.Success, "Poster updated successfully."), nil
}

func (uc *posterUseCase) DeletePoster(ctx context.Context, posterID string) (response.Result, error) {
	actor, err := uc.gate.Check(ctx)
	if err != nil {
		return response.Result{}, err
	}

	id, ok := parseDeleteID(sanitize(posterID))
	if !ok {
		return response.New(response.BadRequest, "Invalid poster ID."), nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var rows int64
	err = uc.posterRepo.WithTransaction(ctx, func(dbc dbctx.Context) error {
		var err error
		rows, err = uc.posterRepo.Delete(dbc, id)
		return err
	})
	if err != nil {
		uc.logger.Error("Failed to delete poster %d: %v", id, err)
		return response.New(response.ServerError, "Failed to delete poster."), nil
	}
	if rows == 0 {
		return response.New(response.BadRequest, "Poster not found or access denied."), nil
	}

	uc.invalidate(ctx, id)
	uc.logger.Info("Poster %d deleted by user %d", id, actor.UserID)
	uc.publish(ctx, queue.PosterDeleted, id, actor.UserID)

	return response.New(response.Success, "Poster deleted successfully."), nil
}

// saveSections writes every section slot with a non-empty headline. With
// upsert set, existing rows at the same index are updated in place and keep
// their media unless a new upload was accepted. The returned media are the
// ones stored during this call, including on error.
func (uc *posterUseCase) saveSections(dbc dbctx.Context, posterID, ownerID int64, inputs [entity.SectionCount]SectionInput, upsert bool) ([]*entity.Media, error) {
	var saved []*entity.Media

	for i, in := range inputs {
		section := &entity.Section{
			PosterID: posterID,
			Index:    i + 1,
			Headline: sanitize(in.Headline),
			Text:     sanitize(in.Text),
		}
		if section.Headline == "" {
			continue
		}

		if in.hasUpload() {
			alt := in.Alt
			if strings.TrimSpace(alt) == "" {
				alt = section.Headline
			}

			media, err := uc.mediaStore.Save(dbc, ownerID, in.File, alt)
			if err != nil {
				var inputErr *entity.MediaInputError
				if errors.As(err, &inputErr) {
					return saved, err
				}
				return saved, fmt.Errorf("%w: section %d: %v", errMediaFailed, section.Index, err)
			}
			saved = append(saved, media)
			section.MediaID = &media.ID
		}

		if !upsert {
			if err := uc.posterRepo.CreateSection(dbc, section); err != nil {
				return saved, err
			}
			continue
		}

		exists, err := uc.posterRepo.SectionExists(dbc, posterID, section.Index)
		if err != nil {
			return saved, err
		}
		if exists {
			err = uc.posterRepo.UpdateSection(dbc, section)
		} else {
			err = uc.posterRepo.CreateSection(dbc, section)
		}
		if err != nil {
			return saved, err
		}
	}

	return saved, nil
}

func (uc *posterUseCase) writeFailure(err error, message string) response.Result {
	var inputErr *entity.MediaInputError
	switch {
	case errors.As(err, &inputErr):
		return response.New(response.BadRequest, inputErr.Msg)
	case errors.Is(err, errMediaFailed):
		uc.logger.Error("Media store failure: %v", err)
		return response.New(response.ServerError, "Failed to save section media.")
	case errors.Is(err, errNoRowsUpdated):
		return response.New(response.ServerError, "Poster update failed or no changes made.")
	default:
		uc.logger.Error("Poster transaction failed: %v", err)
		return response.New(response.ServerError, message)
	}
}

func (uc *posterUseCase) discard(ctx context.Context, media []*entity.Media) {
	for _, m := range media {
		uc.mediaStore.Discard(ctx, m)
	}
}

func (uc *posterUseCase) invalidate(ctx context.Context, id int64) {
	if uc.posterCache == nil {
		return
	}
	if err := uc.posterCache.Invalidate(ctx, id); err != nil {
		uc.logger.Warn("Poster cache invalidation failed for %d: %v", id, err)
	}
}

func (uc *posterUseCase) publish(ctx context.Context, routingKey string, posterID, userID int64) {
	if uc.events == nil {
		return
	}
	event := queue.PosterEvent{
		Type:       routingKey,
		PosterID:   posterID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.events.Publish(ctx, routingKey, event); err != nil {
		uc.logger.Warn("Failed to publish %s for poster %d: %v", routingKey, posterID, err)
	}
}

func parsePosterID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// parseDeleteID accepts any finite numeric string whose integer part is positive.
func parseDeleteID(raw string) (int64, bool) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < 1 || f > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
