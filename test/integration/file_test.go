package integration_test

import (
	"bytes"
	"image/png"
	"io"
	"net/http"
	"os"
	"testing"

	"agency_admin/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeStoredImage(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginStaff(t, ts, "admin", "secret123")

	item := createItem(t, ts, token, "With Image", "seo")

	res, err := ts.Server.Client().Get(ts.Server.URL + "/files/portfolio/" + item.ImageFilename)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "image/png", res.Header.Get("Content-Type"))

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err, "served file should be a decodable PNG")
}

func TestServeMissingImageFallsBackToPlaceholder(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, err := ts.Server.Client().Get(ts.Server.URL + "/files/portfolio/seo_missing.png")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "image/png", res.Header.Get("Content-Type"))

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 250, img.Bounds().Dy())

	// The placeholder is persisted so the next request hits disk.
	_, err = os.Stat(ts.StoragePath("seo_missing.png"))
	assert.NoError(t, err)
}
