package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"agency_admin/internal/config"
	"agency_admin/internal/imageprocessor"
	"agency_admin/internal/models"
	"agency_admin/internal/repositories"
	"agency_admin/internal/services/dto"
	"agency_admin/internal/storage"
	"agency_admin/internal/syncer"
	"agency_admin/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// captureNotifier records every snapshot it is handed.
type captureNotifier struct {
	calls chan []syncer.ItemSnapshot
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{calls: make(chan []syncer.ItemSnapshot, 16)}
}

func (c *captureNotifier) Notify(ctx context.Context, snapshot []syncer.ItemSnapshot) error {
	c.calls <- snapshot
	return nil
}

func (c *captureNotifier) wait(t *testing.T) []syncer.ItemSnapshot {
	t.Helper()
	select {
	case got := <-c.calls:
		return got
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot was dispatched")
		return nil
	}
}

type portfolioFixture struct {
	db       *gorm.DB
	svc      PortfolioService
	notifier *captureNotifier
	basePath string
}

func newPortfolioFixture(t *testing.T) *portfolioFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PortfolioItem{}))

	basePath := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: basePath})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Upload.MaxSize = 16 * 1024 * 1024
	cfg.Upload.AllowedExtensions = []string{"jpg", "jpeg", "png", "gif"}
	cfg.Upload.MaxDimension = 1600
	cfg.Upload.ImageQuality = 85
	cfg.Sync.TimeoutSec = 2

	notifier := newCaptureNotifier()
	svc := NewPortfolioService(
		repositories.NewPortfolioRepository(),
		store,
		imageprocessor.NewProcessor(cfg.Upload.MaxDimension, cfg.Upload.ImageQuality),
		notifier,
		cfg,
	)

	return &portfolioFixture{db: db, svc: svc, notifier: notifier, basePath: basePath}
}

func (f *portfolioFixture) fileExists(name string) bool {
	_, err := os.Stat(filepath.Join(f.basePath, name))
	return err == nil
}

func (f *portfolioFixture) insertRow(t *testing.T, title, category, filename string) *models.PortfolioItem {
	t.Helper()
	item := &models.PortfolioItem{
		Title:         title,
		Description:   "seeded",
		Category:      category,
		ImageFilename: filename,
	}
	require.NoError(t, f.db.Create(item).Error)
	return item
}

func pngUpload(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 32, 24))
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.NRGBA{R: 10, G: 160, B: 90, A: 255})
		}
	}
	var content bytes.Buffer
	require.NoError(t, png.Encode(&content, img))

	return fileHeader(t, filename, content.Bytes())
}

// fileHeader builds a real *multipart.FileHeader by writing and
// re-parsing a form.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func TestAddStoresImageAndDispatches(t *testing.T) {
	f := newPortfolioFixture(t)

	item, err := f.svc.Add(f.db, &dto.CreatePortfolioRequest{
		Title:       "Flyer Run",
		Description: "Offset print",
		Category:    "print shop",
	}, pngUpload(t, "flyer.png"))
	require.NoError(t, err)

	assert.Equal(t, "Printing Press", item.Category)
	assert.True(t, f.fileExists(item.ImageFilename))

	snapshot := f.notifier.wait(t)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "Flyer Run", snapshot[0].Title)
}

func TestAddRequiresFile(t *testing.T) {
	f := newPortfolioFixture(t)

	_, err := f.svc.Add(f.db, &dto.CreatePortfolioRequest{
		Title:       "No File",
		Description: "x",
		Category:    "seo",
	}, nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestAddRejectsBadExtension(t *testing.T) {
	f := newPortfolioFixture(t)

	_, err := f.svc.Add(f.db, &dto.CreatePortfolioRequest{
		Title:       "Bad",
		Description: "x",
		Category:    "seo",
	}, fileHeader(t, "script.exe", []byte("nope")))
	require.ErrorIs(t, err, apperrors.ErrInvalidMediaType)

	var count int64
	f.db.Model(&models.PortfolioItem{}).Count(&count)
	assert.Zero(t, count, "nothing is written when validation fails")
}

func TestAddRejectsOversizedFile(t *testing.T) {
	f := newPortfolioFixture(t)
	f.svc.(*portfolioService).cfg.Upload.MaxSize = 10

	_, err := f.svc.Add(f.db, &dto.CreatePortfolioRequest{
		Title:       "Huge",
		Description: "x",
		Category:    "seo",
	}, pngUpload(t, "huge.png"))
	require.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestAddReplacesSameCategory(t *testing.T) {
	f := newPortfolioFixture(t)

	first, err := f.svc.Add(f.db, &dto.CreatePortfolioRequest{
		Title:       "Old SEO",
		Description: "x",
		Category:    "seo",
	}, pngUpload(t, "old.png"))
	require.NoError(t, err)
	f.notifier.wait(t)

	second, err := f.svc.Add(f.db, &dto.CreatePortfolioRequest{
		Title:       "New SEO",
		Description: "x",
		Category:    "search tuning",
	}, pngUpload(t, "new.png"))
	require.NoError(t, err)
	f.notifier.wait(t)

	var items []models.PortfolioItem
	require.NoError(t, f.db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)

	assert.False(t, f.fileExists(first.ImageFilename), "replaced image is removed")
	assert.True(t, f.fileExists(second.ImageFilename))
}

func TestAddRepairsDuplicateCategories(t *testing.T) {
	f := newPortfolioFixture(t)

	// Two rows share a category, differing only in case. Both must go.
	f.insertRow(t, "Dup One", "Printing Press", "dup1.png")
	f.insertRow(t, "Dup Two", "printing press", "dup2.png")

	item, err := f.svc.Add(f.db, &dto.CreatePortfolioRequest{
		Title:       "Fresh",
		Description: "x",
		Category:    "printing",
	}, pngUpload(t, "fresh.png"))
	require.NoError(t, err)

	var items []models.PortfolioItem
	require.NoError(t, f.db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestAddSurvivesMissingSiblingImage(t *testing.T) {
	f := newPortfolioFixture(t)

	// The sibling row points at a file that does not exist on disk.
	f.insertRow(t, "Ghost", "SEO", "ghost.png")

	_, err := f.svc.Add(f.db, &dto.CreatePortfolioRequest{
		Title:       "Replacement",
		Description: "x",
		Category:    "seo",
	}, pngUpload(t, "real.png"))
	require.NoError(t, err)

	var count int64
	f.db.Model(&models.PortfolioItem{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateWithoutImageKeepsFilename(t *testing.T) {
	f := newPortfolioFixture(t)

	item, err := f.svc.Add(f.db, &dto.CreatePortfolioRequest{
		Title:       "SEO Work",
		Description: "x",
		Category:    "seo",
	}, pngUpload(t, "seo.png"))
	require.NoError(t, err)
	f.notifier.wait(t)

	other := f.insertRow(t, "Bundle", "Packages Solutions", "bundle.png")

	updated, err := f.svc.Update(f.db, item.ID, &dto.UpdatePortfolioRequest{
		Title:       "SEO Work v2",
		Description: "y",
		Category:    "seo",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "SEO Work v2", updated.Title)
	assert.Equal(t, item.ImageFilename, updated.ImageFilename)

	// No category change and no new image: other categories untouched.
	var count int64
	f.db.Model(&models.PortfolioItem{}).Where("id = ?", other.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateCategoryChangeEvictsTarget(t *testing.T) {
	f := newPortfolioFixture(t)

	item, err := f.svc.Add(f.db, &dto.CreatePortfolioRequest{
		Title:       "SEO Work",
		Description: "x",
		Category:    "seo",
	}, pngUpload(t, "seo.png"))
	require.NoError(t, err)
	f.notifier.wait(t)

	evicted := f.insertRow(t, "Old Bundle", "Packages Solutions", "old_bundle.png")

	updated, err := f.svc.Update(f.db, item.ID, &dto.UpdatePortfolioRequest{
		Title:       "Now A Bundle",
		Description: "y",
		Category:    "package deal",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Packages Solutions", updated.Category)

	var count int64
	f.db.Model(&models.PortfolioItem{}).Where("id = ?", evicted.ID).Count(&count)
	assert.Zero(t, count, "target category sibling is evicted")
}

func TestUpdateWithImageReplacesFile(t *testing.T) {
	f := newPortfolioFixture(t)

	item, err := f.svc.Add(f.db, &dto.CreatePortfolioRequest{
		Title:       "SEO Work",
		Description: "x",
		Category:    "seo",
	}, pngUpload(t, "first.png"))
	require.NoError(t, err)
	f.notifier.wait(t)

	updated, err := f.svc.Update(f.db, item.ID, &dto.UpdatePortfolioRequest{
		Title:       "SEO Work",
		Description: "x",
		Category:    "seo",
	}, pngUpload(t, "second.png"))
	require.NoError(t, err)

	assert.NotEqual(t, item.ImageFilename, updated.ImageFilename)
	assert.False(t, f.fileExists(item.ImageFilename), "old image is removed")
	assert.True(t, f.fileExists(updated.ImageFilename))
}

func TestUpdateMissingID(t *testing.T) {
	f := newPortfolioFixture(t)

	_, err := f.svc.Update(f.db, 12345, &dto.UpdatePortfolioRequest{
		Title:       "Nope",
		Description: "x",
		Category:    "seo",
	}, nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestDeleteRemovesRowAndImage(t *testing.T) {
	f := newPortfolioFixture(t)

	item, err := f.svc.Add(f.db, &dto.CreatePortfolioRequest{
		Title:       "Short Lived",
		Description: "x",
		Category:    "seo",
	}, pngUpload(t, "short.png"))
	require.NoError(t, err)
	f.notifier.wait(t)

	require.NoError(t, f.svc.Delete(f.db, item.ID))
	assert.False(t, f.fileExists(item.ImageFilename))

	snapshot := f.notifier.wait(t)
	assert.Empty(t, snapshot, "post-delete snapshot reflects the empty catalog")

	err = f.svc.Delete(f.db, item.ID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestListOrderedByID(t *testing.T) {
	f := newPortfolioFixture(t)

	f.insertRow(t, "One", "SEO", "a.png")
	f.insertRow(t, "Two", "Printing Press", "b.png")
	f.insertRow(t, "Three", "Packages Solutions", "c.png")

	items, err := f.svc.List(f.db)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.True(t, items[0].ID < items[1].ID && items[1].ID < items[2].ID)
}
