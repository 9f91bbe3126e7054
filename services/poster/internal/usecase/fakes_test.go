package usecase

import (
	"context"
	"errors"
	"mime/multipart"
	"sort"

	"poster-board/pkg/auth"
	"poster-board/pkg/dbctx"
	"poster-board/services/poster/internal/entity"
	"poster-board/services/poster/internal/repo/cache"
	"poster-board/services/poster/internal/repo/persistent"
)

// memoryState is one snapshot of the poster tables.
type memoryState struct {
	posters  map[int64]entity.Poster
	sections map[int64]map[int]entity.Section
	medias   map[int64]entity.Media
	nextID   int64
}

func newMemoryState() *memoryState {
	return &memoryState{
		posters:  map[int64]entity.Poster{},
		sections: map[int64]map[int]entity.Section{},
		medias:   map[int64]entity.Media{},
	}
}

func (s *memoryState) clone() *memoryState {
	c := newMemoryState()
	c.nextID = s.nextID
	for id, p := range s.posters {
		c.posters[id] = p
	}
	for id, byIndex := range s.sections {
		c.sections[id] = map[int]entity.Section{}
		for i, sec := range byIndex {
			c.sections[id][i] = sec
		}
	}
	for id, m := range s.medias {
		c.medias[id] = m
	}
	return c
}

func (s *memoryState) id() int64 {
	s.nextID++
	return s.nextID
}

// fakePosterRepo keeps committed rows in memory and applies a transaction's
// writes only when its callback returns nil.
type fakePosterRepo struct {
	committed *memoryState
	staged    *memoryState

	fail        map[string]error
	calls       int
	txCount     int
	txDeadlined bool
}

func newFakePosterRepo() *fakePosterRepo {
	return &fakePosterRepo{committed: newMemoryState(), fail: map[string]error{}}
}

var _ persistent.PosterRepository = (*fakePosterRepo)(nil)

func (r *fakePosterRepo) state() *memoryState {
	if r.staged != nil {
		return r.staged
	}
	return r.committed
}

func (r *fakePosterRepo) call(name string) error {
	r.calls++
	return r.fail[name]
}

func (r *fakePosterRepo) WithTransaction(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.txCount++
	_, r.txDeadlined = ctx.Deadline()
	if err := r.fail["WithTransaction"]; err != nil {
		return err
	}

	r.staged = r.committed.clone()
	defer func() { r.staged = nil }()

	if err := fn(dbctx.Context{Ctx: ctx}); err != nil {
		return err
	}
	r.committed = r.staged
	return nil
}

func (r *fakePosterRepo) List(dbc dbctx.Context) ([]*entity.Poster, error) {
	if err := r.call("List"); err != nil {
		return nil, err
	}
	st := r.state()
	posters := make([]*entity.Poster, 0, len(st.posters))
	for _, p := range st.posters {
		p := p
		posters = append(posters, &p)
	}
	sort.Slice(posters, func(i, j int) bool { return posters[i].ID < posters[j].ID })
	return posters, nil
}

func (r *fakePosterRepo) ListPreviewMedia(dbc dbctx.Context, posterIDs []int64) (map[int64]*entity.Media, error) {
	if err := r.call("ListPreviewMedia"); err != nil {
		return nil, err
	}
	st := r.state()
	previews := map[int64]*entity.Media{}
	for _, id := range posterIDs {
		for index := 1; index <= entity.SectionCount; index++ {
			sec, ok := st.sections[id][index]
			if !ok || sec.MediaID == nil {
				continue
			}
			m := st.medias[*sec.MediaID]
			previews[id] = &m
			break
		}
	}
	return previews, nil
}

func (r *fakePosterRepo) GetByID(dbc dbctx.Context, id int64) (*entity.Poster, error) {
	if err := r.call("GetByID"); err != nil {
		return nil, err
	}
	st := r.state()
	p, ok := st.posters[id]
	if !ok {
		return nil, persistent.ErrPosterNotFound
	}
	p.Sections = r.sectionsOf(st, id)
	return &p, nil
}

func (r *fakePosterRepo) sectionsOf(st *memoryState, posterID int64) []entity.Section {
	var sections []entity.Section
	for index := 1; index <= entity.SectionCount; index++ {
		sec, ok := st.sections[posterID][index]
		if !ok {
			continue
		}
		if sec.MediaID != nil {
			m := st.medias[*sec.MediaID]
			sec.Media = &m
		}
		sections = append(sections, sec)
	}
	return sections
}

func (r *fakePosterRepo) Create(dbc dbctx.Context, poster *entity.Poster) error {
	if err := r.call("Create"); err != nil {
		return err
	}
	st := r.state()
	poster.ID = st.id()
	row := *poster
	row.Sections = nil
	st.posters[poster.ID] = row
	return nil
}

func (r *fakePosterRepo) UpdateOwned(dbc dbctx.Context, poster *entity.Poster) (int64, error) {
	if err := r.call("UpdateOwned"); err != nil {
		return 0, err
	}
	st := r.state()
	row, ok := st.posters[poster.ID]
	if !ok || row.UserID != poster.UserID {
		return 0, nil
	}
	row.Author = poster.Author
	row.CreationDate = poster.CreationDate
	row.Headline = poster.Headline
	row.MetaData = poster.MetaData
	st.posters[poster.ID] = row
	return 1, nil
}

func (r *fakePosterRepo) Delete(dbc dbctx.Context, id int64) (int64, error) {
	if err := r.call("Delete"); err != nil {
		return 0, err
	}
	st := r.state()
	if _, ok := st.posters[id]; !ok {
		return 0, nil
	}
	delete(st.posters, id)
	delete(st.sections, id)
	return 1, nil
}

func (r *fakePosterRepo) SectionExists(dbc dbctx.Context, posterID int64, index int) (bool, error) {
	if err := r.call("SectionExists"); err != nil {
		return false, err
	}
	_, ok := r.state().sections[posterID][index]
	return ok, nil
}

func (r *fakePosterRepo) CreateSection(dbc dbctx.Context, section *entity.Section) error {
	if err := r.call("CreateSection"); err != nil {
		return err
	}
	st := r.state()
	if _, ok := st.sections[section.PosterID][section.Index]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	if st.sections[section.PosterID] == nil {
		st.sections[section.PosterID] = map[int]entity.Section{}
	}
	section.ID = st.id()
	st.sections[section.PosterID][section.Index] = *section
	return nil
}

func (r *fakePosterRepo) UpdateSection(dbc dbctx.Context, section *entity.Section) error {
	if err := r.call("UpdateSection"); err != nil {
		return err
	}
	st := r.state()
	row := st.sections[section.PosterID][section.Index]
	row.Headline = section.Headline
	row.Text = section.Text
	if section.MediaID != nil {
		row.MediaID = section.MediaID
	}
	st.sections[section.PosterID][section.Index] = row
	return nil
}

// seedPoster writes a committed poster, bypassing the use case.
func (r *fakePosterRepo) seedPoster(p entity.Poster, sections ...entity.Section) {
	st := r.committed
	if p.ID > st.nextID {
		st.nextID = p.ID
	}
	st.posters[p.ID] = p
	for _, sec := range sections {
		sec.PosterID = p.ID
		if st.sections[p.ID] == nil {
			st.sections[p.ID] = map[int]entity.Section{}
		}
		st.sections[p.ID][sec.Index] = sec
	}
}

func (r *fakePosterRepo) seedMedia(m entity.Media) {
	if m.ID > r.committed.nextID {
		r.committed.nextID = m.ID
	}
	r.committed.medias[m.ID] = m
}

func (r *fakePosterRepo) sections(posterID int64) []entity.Section {
	return r.sectionsOf(r.committed, posterID)
}

type fakeMediaStore struct {
	repo      *fakePosterRepo
	errs      map[string]error
	saved     []*entity.Media
	discarded []*entity.Media
}

func newFakeMediaStore(repo *fakePosterRepo) *fakeMediaStore {
	return &fakeMediaStore{repo: repo, errs: map[string]error{}}
}

func (s *fakeMediaStore) Save(dbc dbctx.Context, ownerID int64, file *multipart.FileHeader, alt string) (*entity.Media, error) {
	if err := s.errs[file.Filename]; err != nil {
		return nil, err
	}
	st := s.repo.state()
	m := &entity.Media{
		ID:         st.id(),
		Type:       "image/png",
		Path:       "/media/" + file.Filename,
		Alt:        alt,
		StorageKey: file.Filename,
	}
	st.medias[m.ID] = *m
	s.saved = append(s.saved, m)
	return m, nil
}

func (s *fakeMediaStore) Discard(ctx context.Context, media *entity.Media) {
	s.discarded = append(s.discarded, media)
}

type stubGate struct {
	actor auth.Actor
	err   error
	calls int
}

func (g *stubGate) Check(ctx context.Context) (auth.Actor, error) {
	g.calls++
	return g.actor, g.err
}

type recordingPublisher struct {
	keys []string
	err  error
}

func (p *recordingPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	p.keys = append(p.keys, routingKey)
	return p.err
}

type memoryCache struct {
	entries     map[int64]*entity.Poster
	invalidated []int64
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[int64]*entity.Poster{}}
}

var _ cache.PosterCache = (*memoryCache)(nil)

func (c *memoryCache) Get(ctx context.Context, id int64) (*entity.Poster, error) {
	p, ok := c.entries[id]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return p, nil
}

func (c *memoryCache) Set(ctx context.Context, poster *entity.Poster) error {
	c.entries[poster.ID] = poster
	return nil
}

func (c *memoryCache) Invalidate(ctx context.Context, id int64) error {
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}

func upload(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: 8}
}
