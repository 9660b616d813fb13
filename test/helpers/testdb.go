package helpers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"agency_admin/internal/auth"
	"agency_admin/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateStaffUser inserts a staff account with a properly hashed
// password.
func CreateStaffUser(t *testing.T, db *gorm.DB, username, password string, isAdmin bool) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Password: hashed,
		Name:     "Test Staff",
		IsAdmin:  isAdmin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateAndLoginStaff creates a staff user and logs in through the API,
// returning the bearer token.
func CreateAndLoginStaff(t *testing.T, ts *TestServer, username, password string) (string, *models.User) {
	t.Helper()

	user := CreateStaffUser(t, ts.DB, username, password, true)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateOrder inserts an order directly.
func CreateOrder(t *testing.T, db *gorm.DB, status models.OrderStatus) *models.Order {
	t.Helper()

	order := &models.Order{
		Name:         "Jordan Client",
		Email:        "client@example.com",
		Phone:        "+77001234567",
		ServiceName:  "SEO",
		Requirements: "Rank us for local searches",
		Status:       status,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

// PNGBytes renders a small solid-color PNG for upload tests.
func PNGBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: 120, G: 40, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
