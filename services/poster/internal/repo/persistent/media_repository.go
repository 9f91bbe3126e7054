package persistent

import (
	"poster-board/pkg/dbctx"
	"poster-board/services/poster/internal/entity"

	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(dbc dbctx.Context, media *entity.Media) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(dbc dbctx.Context, media *entity.Media) error {
	mediaModel := ToMediaModel(media)
	if err := dbc.Conn(r.db).Create(mediaModel).Error; err != nil {
		return err
	}
	media.ID = mediaModel.ID
	return nil
}
