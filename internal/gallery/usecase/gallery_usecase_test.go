package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "diario-backend/internal/auth/domain"
	"diario-backend/internal/gallery/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeGalleryRepo struct {
	created *domain.GalleryItem
	byID    *domain.GalleryItem
	deleted [][2]string
}

func (f *fakeGalleryRepo) Create(item *domain.GalleryItem) error {
	item.ID = "generated-id"
	f.created = item
	return nil
}

func (f *fakeGalleryRepo) FindByID(id string) (*domain.GalleryItem, error) {
	return f.byID, nil
}

func (f *fakeGalleryRepo) ListDesc() ([]*domain.GalleryItem, error) {
	return nil, nil
}

func (f *fakeGalleryRepo) DeleteByIDAndAuthor(id, userID string) error {
	f.deleted = append(f.deleted, [2]string{id, userID})
	return nil
}

type fakeImageHost struct {
	configured bool
	url        string
	err        error

	gotBase64 string
	gotName   string

	entered chan struct{} // non-nil makes Upload block until released
	release chan struct{}
}

func (f *fakeImageHost) Configured() bool { return f.configured }

func (f *fakeImageHost) Upload(ctx context.Context, imageBase64, name string) (string, error) {
	f.gotBase64 = imageBase64
	f.gotName = name
	if f.entered != nil {
		close(f.entered)
		<-f.release
	}
	return f.url, f.err
}

var author = &authdomain.User{ID: "u1", Username: "gata"}

// ---- tests ----

func TestUploadValidations(t *testing.T) {
	u := NewGalleryUsecase(&fakeGalleryRepo{}, &fakeImageHost{configured: true})

	_, err := u.Upload(context.Background(), author, "foto.jpg", nil, "un paseo")
	assert.ErrorIs(t, err, ErrNoFile)

	_, err = u.Upload(context.Background(), author, "foto.jpg", []byte{1, 2}, "   ")
	assert.ErrorIs(t, err, ErrEmptyCaption)
}

func TestUploadRequiresConfiguredHost(t *testing.T) {
	host := &fakeImageHost{configured: false}
	u := NewGalleryUsecase(&fakeGalleryRepo{}, host)

	_, err := u.Upload(context.Background(), author, "foto.jpg", []byte{1, 2}, "un paseo")
	assert.ErrorIs(t, err, ErrHostNotConfigured)
	assert.Empty(t, host.gotBase64, "no attempt must be made without a credential")
}

func TestUploadPersistsHostedURL(t *testing.T) {
	repo := &fakeGalleryRepo{}
	host := &fakeImageHost{configured: true, url: "https://i.ibb.co/abc/foto.jpg"}
	u := NewGalleryUsecase(repo, host)

	data := []byte{0xFF, 0xD8, 0xFF}
	item, err := u.Upload(context.Background(), author, "foto de playa.jpg", data, " verano ")
	require.NoError(t, err)

	assert.Equal(t, base64.StdEncoding.EncodeToString(data), host.gotBase64)
	assert.Equal(t, "foto de playa", host.gotName, "extension is stripped")

	require.NotNil(t, repo.created)
	assert.Equal(t, "https://i.ibb.co/abc/foto.jpg", item.ImageURL)
	assert.Equal(t, "verano", item.Caption)
	assert.Equal(t, "u1", item.UserID)
	require.NotNil(t, item.Author)
	assert.Equal(t, "gata", item.Author.Username)
}

func TestUploadSurfacesHostMessage(t *testing.T) {
	repo := &fakeGalleryRepo{}
	host := &fakeImageHost{configured: true, err: errors.New("Invalid API key")}
	u := NewGalleryUsecase(repo, host)

	_, err := u.Upload(context.Background(), author, "foto.jpg", []byte{1}, "un paseo")
	require.Error(t, err)
	assert.Equal(t, "Invalid API key", err.Error())
	assert.Nil(t, repo.created, "nothing persists when the host rejects")
}

func TestUploadInFlightGuard(t *testing.T) {
	host := &fakeImageHost{
		configured: true,
		url:        "https://i.ibb.co/abc/foto.jpg",
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	u := NewGalleryUsecase(&fakeGalleryRepo{}, host)

	done := make(chan error, 1)
	go func() {
		_, err := u.Upload(context.Background(), author, "a.jpg", []byte{1}, "primera")
		done <- err
	}()

	<-host.entered

	// Second upload for the same identity while the first is in flight
	_, err := u.Upload(context.Background(), author, "b.jpg", []byte{2}, "segunda")
	assert.ErrorIs(t, err, ErrUploadInFlight)

	close(host.release)
	require.NoError(t, <-done)

	// The guard clears once the first upload finishes
	host.entered = nil
	_, err = u.Upload(context.Background(), author, "c.jpg", []byte{3}, "tercera")
	assert.NoError(t, err)
}

func TestDeleteItemAuthorization(t *testing.T) {
	repo := &fakeGalleryRepo{byID: &domain.GalleryItem{ID: "g1", UserID: "someone-else"}}
	u := NewGalleryUsecase(repo, &fakeImageHost{configured: true})

	err := u.DeleteItem("u1", "g1")
	assert.ErrorIs(t, err, ErrNotAuthor)
	assert.Empty(t, repo.deleted)

	repo.byID = &domain.GalleryItem{ID: "g1", UserID: "u1"}
	require.NoError(t, u.DeleteItem("u1", "g1"))
	require.Len(t, repo.deleted, 1)
	assert.Equal(t, [2]string{"g1", "u1"}, repo.deleted[0])

	repo.byID = nil
	assert.ErrorIs(t, u.DeleteItem("u1", "missing"), ErrNotFound)
}

func TestDownloadFetchesBytesAndNamesFile(t *testing.T) {
	payload := []byte("jpeg-bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	repo := &fakeGalleryRepo{byID: &domain.GalleryItem{
		ID:       "g1",
		UserID:   "u1",
		ImageURL: srv.URL + "/foto.jpg",
		Caption:  "  Nuestro Primer Viaje!  ",
	}}
	u := NewGalleryUsecase(repo, &fakeImageHost{configured: true})

	data, filename, err := u.Download(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "nuestro-primer-viaje.jpg", filename)
}

func TestDownloadFilenameFallsBackToID(t *testing.T) {
	name := DownloadFilename(&domain.GalleryItem{ID: "g1", Caption: "   "})
	assert.Equal(t, "recuerdo-g1.jpg", name)

	// Captions that sanitize to nothing still yield a usable name
	name = DownloadFilename(&domain.GalleryItem{ID: "g2", Caption: "¡¡¡"})
	assert.Equal(t, "recuerdo.jpg", name)
}
