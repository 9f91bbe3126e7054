package persistent

import (
	"poster-board/services/poster/internal/entity"
	"poster-board/services/poster/internal/model"
)

func ToPosterEntity(m *model.PosterModel) *entity.Poster {
	if m == nil {
		return nil
	}

	poster := &entity.Poster{
		ID:           m.ID,
		UserID:       m.UserID,
		Author:       m.Author,
		CreationDate: m.CreationDate,
		Headline:     m.Headline,
		MetaData:     m.MetaData,
	}

	if len(m.Sections) > 0 {
		poster.Sections = make([]entity.Section, len(m.Sections))
		for i := range m.Sections {
			poster.Sections[i] = ToSectionEntity(&m.Sections[i])
		}
	}

	return poster
}

func ToPosterModel(e *entity.Poster) *model.PosterModel {
	if e == nil {
		return nil
	}

	return &model.PosterModel{
		ID:           e.ID,
		UserID:       e.UserID,
		Author:       e.Author,
		CreationDate: e.CreationDate,
		Headline:     e.Headline,
		MetaData:     e.MetaData,
	}
}

func ToSectionEntity(m *model.SectionModel) entity.Section {
	if m == nil {
		return entity.Section{}
	}

	return entity.Section{
		ID:       m.ID,
		PosterID: m.PosterID,
		Index:    m.SectionIndex,
		Headline: m.Headline,
		Text:     m.Text,
		MediaID:  m.MediaID,
		Media:    ToMediaEntity(m.Media),
	}
}

func ToSectionModel(e *entity.Section) *model.SectionModel {
	if e == nil {
		return nil
	}

	return &model.SectionModel{
		ID:           e.ID,
		PosterID:     e.PosterID,
		SectionIndex: e.Index,
		Headline:     e.Headline,
		Text:         e.Text,
		MediaID:      e.MediaID,
	}
}

func ToMediaEntity(m *model.MediaModel) *entity.Media {
	if m == nil {
		return nil
	}

	return &entity.Media{
		ID:   m.ID,
		Type: m.Type,
		Path: m.Path,
		Alt:  m.Alt,
	}
}

func ToMediaModel(e *entity.Media) *model.MediaModel {
	if e == nil {
		return nil
	}

	return &model.MediaModel{
		ID:   e.ID,
		Type: e.Type,
		Path: e.Path,
		Alt:  e.Alt,
	}
}
