package media

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"poster-board/pkg/dbctx"
	"poster-board/pkg/logger"
	"poster-board/services/poster/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 32)...)

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadFile(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockUploader) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(key)
	return args.Error(0)
}

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(dbc dbctx.Context, media *entity.Media) error {
	args := m.Called(media)
	if args.Error(0) == nil {
		media.ID = 42
	}
	return args.Error(0)
}

func fileHeader(t *testing.T, name string, data []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("s1img", name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["s1img"][0]
}

func newTestStore(maxBytes int64) (*Store, *MockUploader, *MockMediaRepository) {
	uploader := new(MockUploader)
	repo := new(MockMediaRepository)
	return NewStore(uploader, repo, maxBytes, logger.New()), uploader, repo
}

func testDBC() dbctx.Context {
	return dbctx.Context{Ctx: context.Background()}
}

func TestSave_Success(t *testing.T) {
	store, uploader, repo := newTestStore(1024)

	uploader.On("UploadFile", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "posters/7/") && strings.HasSuffix(key, ".png")
	}), pngBytes, "image/png").Return("http://localhost:9000/poster-board-media/posters/7/a.png", nil)
	repo.On("Create", mock.AnythingOfType("*entity.Media")).Return(nil)

	media, err := store.Save(testDBC(), 7, fileHeader(t, "cat.png", pngBytes), `  <b>Cat</b> photo `)

	require.NoError(t, err)
	assert.Equal(t, int64(42), media.ID)
	assert.Equal(t, "image/png", media.Type)
	assert.Equal(t, "http://localhost:9000/poster-board-media/posters/7/a.png", media.Path)
	assert.Equal(t, "Cat photo", media.Alt)
	assert.True(t, strings.HasPrefix(media.StorageKey, "posters/7/"))

	uploader.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestSave_RejectsEmptyFile(t *testing.T) {
	store, uploader, _ := newTestStore(1024)

	_, err := store.Save(testDBC(), 7, fileHeader(t, "empty.png", nil), "")

	var inputErr *entity.MediaInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "Uploaded file is empty.", inputErr.Msg)
	uploader.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestSave_RejectsOversizeFile(t *testing.T) {
	store, uploader, _ := newTestStore(16)

	_, err := store.Save(testDBC(), 7, fileHeader(t, "big.png", pngBytes), "")

	var inputErr *entity.MediaInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Msg, "maximum size of 16 bytes")
	uploader.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestSave_RejectsNonImage(t *testing.T) {
	store, uploader, _ := newTestStore(1024)

	_, err := store.Save(testDBC(), 7, fileHeader(t, "notes.png", []byte("just some plain text")), "")

	var inputErr *entity.MediaInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "Unsupported media type: text/plain.", inputErr.Msg)
	uploader.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestSave_UploadFailureIsNotInputError(t *testing.T) {
	store, uploader, repo := newTestStore(1024)

	uploader.On("UploadFile", mock.Anything, pngBytes, "image/png").Return("", errors.New("connection refused"))

	_, err := store.Save(testDBC(), 7, fileHeader(t, "cat.png", pngBytes), "")

	require.Error(t, err)
	var inputErr *entity.MediaInputError
	assert.False(t, errors.As(err, &inputErr))
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSave_RecordFailureDiscardsObject(t *testing.T) {
	store, uploader, repo := newTestStore(1024)

	uploader.On("UploadFile", mock.Anything, pngBytes, "image/png").Return("http://x/a.png", nil)
	uploader.On("DeleteFile", mock.Anything).Return(nil)
	repo.On("Create", mock.Anything).Return(errors.New("insert failed"))

	_, err := store.Save(testDBC(), 7, fileHeader(t, "cat.png", pngBytes), "")

	require.Error(t, err)
	uploader.AssertCalled(t, "DeleteFile", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "posters/7/")
	}))
}

func TestDiscard(t *testing.T) {
	store, uploader, _ := newTestStore(1024)

	uploader.On("DeleteFile", "posters/7/a.png").Return(errors.New("gone"))

	store.Discard(context.Background(), &entity.Media{StorageKey: "posters/7/a.png"})
	store.Discard(context.Background(), &entity.Media{})
	store.Discard(context.Background(), nil)

	uploader.AssertNumberOfCalls(t, "DeleteFile", 1)
}
