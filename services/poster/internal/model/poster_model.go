package model

import "time"

type PosterModel struct {
	ID           int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64          `gorm:"not null;index" json:"user_id"`
	Author       string         `gorm:"type:varchar(255);not null" json:"author"`
	CreationDate string         `gorm:"type:varchar(32);not null" json:"creation_date"`
	Headline     string         `gorm:"type:varchar(255);not null" json:"headline"`
	MetaData     string         `gorm:"type:text" json:"meta_data"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Sections     []SectionModel `gorm:"foreignKey:PosterID;constraint:OnDelete:CASCADE" json:"sections,omitempty"`
}

func (PosterModel) TableName() string {
	return "posters"
}

type SectionModel struct {
	ID           int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	PosterID     int64       `gorm:"not null;uniqueIndex:idx_sections_poster_index" json:"poster_id"`
	SectionIndex int         `gorm:"not null;uniqueIndex:idx_sections_poster_index;check:chk_sections_index,section_index BETWEEN 1 AND 3" json:"section_index"`
	Headline     string      `gorm:"type:varchar(255);not null" json:"headline"`
	Text         string      `gorm:"type:text" json:"text"`
	MediaID      *int64      `gorm:"index" json:"media_id"`
	Media        *MediaModel `gorm:"foreignKey:MediaID;constraint:OnDelete:SET NULL" json:"media,omitempty"`
}

func (SectionModel) TableName() string {
	return "sections"
}

type MediaModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      string    `gorm:"type:varchar(100);not null" json:"type"`
	Path      string    `gorm:"type:varchar(500);not null" json:"path"`
	Alt       string    `gorm:"type:varchar(255)" json:"alt"`
	CreatedAt time.Time `json:"created_at"`
}

func (MediaModel) TableName() string {
	return "medias"
}
