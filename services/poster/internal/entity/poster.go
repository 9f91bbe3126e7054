package entity

// SectionCount is the fixed number of section slots on a poster.
const SectionCount = 3

type Poster struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Author       string    `json:"author"`
	CreationDate string    `json:"creation_date"`
	Headline     string    `json:"headline"`
	MetaData     string    `json:"meta_data"`
	Sections     []Section `json:"sections,omitempty"`

	// Media is the list preview: the media of the lowest-indexed section
	// that has one. Only populated by list queries.
	Media *Media `json:"media,omitempty"`
}

type Section struct {
	ID       int64  `json:"id"`
	PosterID int64  `json:"poster_id"`
	Index    int    `json:"section_index"`
	Headline string `json:"headline"`
	Text     string `json:"text"`
	MediaID  *int64 `json:"media_id,omitempty"`
	Media    *Media `json:"media"`
}

type Media struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Path string `json:"path"`
	Alt  string `json:"alt"`

	// StorageKey is the object key written during this request; it is not persisted.
	StorageKey string `json:"-"`
}
