package persistent

import (
	"context"
	"errors"

	"poster-board/pkg/dbctx"
	"poster-board/services/poster/internal/entity"
	"poster-board/services/poster/internal/model"

	"gorm.io/gorm"
)

var ErrPosterNotFound = errors.New("poster not found")

type PosterRepository interface {
	// WithTransaction runs fn inside one transaction. It commits when fn
	// returns nil and rolls back on error or panic.
	WithTransaction(ctx context.Context, fn func(dbc dbctx.Context) error) error

	List(dbc dbctx.Context) ([]*entity.Poster, error)
	ListPreviewMedia(dbc dbctx.Context, posterIDs []int64) (map[int64]*entity.Media, error)
	GetByID(dbc dbctx.Context, id int64) (*entity.Poster, error)
	Create(dbc dbctx.Context, poster *entity.Poster) error
	// UpdateOwned updates the poster row only when it belongs to poster.UserID
	// and returns the number of affected rows.
	UpdateOwned(dbc dbctx.Context, poster *entity.Poster) (int64, error)
	Delete(dbc dbctx.Context, id int64) (int64, error)

	SectionExists(dbc dbctx.Context, posterID int64, index int) (bool, error)
	CreateSection(dbc dbctx.Context, section *entity.Section) error
	// UpdateSection rewrites headline and text; media is replaced only when
	// section.MediaID is set.
	UpdateSection(dbc dbctx.Context, section *entity.Section) error
}

type posterRepository struct {
	db *gorm.DB
}

func NewPosterRepository(db *gorm.DB) PosterRepository {
	return &posterRepository{db: db}
}

func (r *posterRepository) WithTransaction(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}

func (r *posterRepository) List(dbc dbctx.Context) ([]*entity.Poster, error) {
	var posterModels []model.PosterModel
	if err := dbc.Conn(r.db).Order("id ASC").Find(&posterModels).Error; err != nil {
		return nil, err
	}

	posters := make([]*entity.Poster, len(posterModels))
	for i := range posterModels {
		posters[i] = ToPosterEntity(&posterModels[i])
	}
	return posters, nil
}

func (r *posterRepository) ListPreviewMedia(dbc dbctx.Context, posterIDs []int64) (map[int64]*entity.Media, error) {
	previews := make(map[int64]*entity.Media, len(posterIDs))
	if len(posterIDs) == 0 {
		return previews, nil
	}

	var sectionModels []model.SectionModel
	err := dbc.Conn(r.db).
		Preload("Media").
		Where("poster_id IN ? AND media_id IS NOT NULL", posterIDs).
		Order("poster_id ASC, section_index ASC").
		Find(&sectionModels).Error
	if err != nil {
		return nil, err
	}

	for i := range sectionModels {
		s := &sectionModels[i]
		if _, seen := previews[s.PosterID]; seen || s.Media == nil {
			continue
		}
		previews[s.PosterID] = ToMediaEntity(s.Media)
	}
	return previews, nil
}

func (r *posterRepository) GetByID(dbc dbctx.Context, id int64) (*entity.Poster, error) {
	var posterModel model.PosterModel
	err := dbc.Conn(r.db).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.section_index ASC")
		}).
		Preload("Sections.Media").
		Where("id = ?", id).
		First(&posterModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPosterNotFound
		}
		return nil, err
	}
	return ToPosterEntity(&posterModel), nil
}

func (r *posterRepository) Create(dbc dbctx.Context, poster *entity.Poster) error {
	posterModel := ToPosterModel(poster)
	if err := dbc.Conn(r.db).Create(posterModel).Error; err != nil {
		return err
	}
	poster.ID = posterModel.ID
	return nil
}

func (r *posterRepository) UpdateOwned(dbc dbctx.Context, poster *entity.Poster) (int64, error) {
	res := dbc.Conn(r.db).
		Model(&model.PosterModel{}).
		Where("id = ? AND user_id = ?", poster.ID, poster.UserID).
		Updates(map[string]interface{}{
			"author":        poster.Author,
			"creation_date": poster.CreationDate,
			"headline":      poster.Headline,
			"meta_data":     poster.MetaData,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *posterRepository) Delete(dbc dbctx.Context, id int64) (int64, error) {
	res := dbc.Conn(r.db).Where("id = ?", id).Delete(&model.PosterModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *posterRepository) SectionExists(dbc dbctx.Context, posterID int64, index int) (bool, error) {
	var count int64
	err := dbc.Conn(r.db).
		Model(&model.SectionModel{}).
		Where("poster_id = ? AND section_index = ?", posterID, index).
		Count(&count).Error
	return count > 0, err
}

func (r *posterRepository) CreateSection(dbc dbctx.Context, section *entity.Section) error {
	sectionModel := ToSectionModel(section)
	if err := dbc.Conn(r.db).Create(sectionModel).Error; err != nil {
		return err
	}
	section.ID = sectionModel.ID
	return nil
}

func (r *posterRepository) UpdateSection(dbc dbctx.Context, section *entity.Section) error {
	updates := map[string]interface{}{
		"headline": section.Headline,
		"text":     section.Text,
	}
	if section.MediaID != nil {
		updates["media_id"] = *section.MediaID
	}

	return dbc.Conn(r.db).
		Model(&model.SectionModel{}).
		Where("poster_id = ? AND section_index = ?", section.PosterID, section.Index).
		Updates(updates).Error
}
