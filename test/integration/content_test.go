package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomepageDefaultsAndPartialUpdate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	createAdmin(t, app.DB, "Alice", "alice@example.com", "s3cret!")
	token := login(t, app, "alice@example.com", "s3cret!")

	// The first read installs the defaults; a repeat read returns the same
	// record instead of a new one.
	resp, envelope := doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/homepage", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, _ := envelope["data"].(map[string]any)
	require.NotNil(t, data)
	assert.Equal(t, "DARK STATE", data["brandName"])

	resp, envelope = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/homepage", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	again, _ := envelope["data"].(map[string]any)
	assert.Equal(t, data["brandName"], again["brandName"])

	// Patch only the tagline.
	resp, envelope = doJSON(t, app.Client, http.MethodPut, app.Server.URL+"/api/homepage/content", token, map[string]string{
		"tagline": "new tagline",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated, _ := envelope["data"].(map[string]any)
	assert.Equal(t, "new tagline", updated["tagline"])
	assert.Equal(t, "DARK STATE", updated["brandName"], "absent fields keep their value")

	// Out-of-range settings are rejected.
	resp, envelope = doJSON(t, app.Client, http.MethodPut, app.Server.URL+"/api/homepage/settings", token, map[string]int{
		"imageRotationInterval": 99,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Image rotation interval must be between 2 and 30 seconds", envelope["message"])
}

func TestContentWritesRequireSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	// No token at all.
	resp, envelope := doJSON(t, app.Client, http.MethodPut, app.Server.URL+"/api/homepage/content", "", map[string]string{
		"tagline": "nope",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "No token provided", envelope["message"])

	// A token nobody issued.
	resp, envelope = doJSON(t, app.Client, http.MethodPut, app.Server.URL+"/api/homepage/content", "deadbeef", map[string]string{
		"tagline": "nope",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", envelope["message"])

	// Reads stay public.
	resp, _ = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/homepage", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCareerPathCRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	createAdmin(t, app.DB, "Alice", "alice@example.com", "s3cret!")
	token := login(t, app, "alice@example.com", "s3cret!")

	resp, envelope := doJSON(t, app.Client, http.MethodPost, app.Server.URL+"/api/career/career-paths", token, map[string]any{
		"title":       "GIS Analyst",
		"level":       "Entry to Mid-Level",
		"description": "Works with spatial data.",
		"skills":      []string{"QGIS", "PostGIS"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created, _ := envelope["data"].(map[string]any)
	require.NotNil(t, created)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "hexagon", created["shape"], "shape falls back to its default")

	// Unknown enum values are rejected.
	resp, _ = doJSON(t, app.Client, http.MethodPost, app.Server.URL+"/api/career/career-paths", token, map[string]any{
		"title":       "Bad",
		"level":       "Demigod",
		"description": "x",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Update, read back, delete.
	resp, envelope = doJSON(t, app.Client, http.MethodPut, app.Server.URL+"/api/career/career-paths/"+id, token, map[string]string{
		"growth": "Fast track to senior",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated, _ := envelope["data"].(map[string]any)
	assert.Equal(t, "Fast track to senior", updated["growth"])
	assert.Equal(t, "GIS Analyst", updated["title"])

	resp, envelope = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/career", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	aggregate, _ := envelope["data"].(map[string]any)
	paths, _ := aggregate["careerPaths"].([]any)
	require.Len(t, paths, 1)

	resp, _ = doJSON(t, app.Client, http.MethodDelete, app.Server.URL+"/api/career/career-paths/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/career/career-paths/"+id, "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Deleting again is a miss, not a silent success.
	resp, _ = doJSON(t, app.Client, http.MethodDelete, app.Server.URL+"/api/career/career-paths/"+id, token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestContactPublicFilter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	createAdmin(t, app.DB, "Alice", "alice@example.com", "s3cret!")
	token := login(t, app, "alice@example.com", "s3cret!")

	resp, envelope := doJSON(t, app.Client, http.MethodPost, app.Server.URL+"/api/contact/info", token, map[string]any{
		"type":  "email",
		"title": "General",
		"info":  "hello@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	visible, _ := envelope["data"].(map[string]any)
	visibleID, _ := visible["id"].(string)

	resp, envelope = doJSON(t, app.Client, http.MethodPost, app.Server.URL+"/api/contact/info", token, map[string]any{
		"type":  "phone",
		"title": "Support",
		"info":  "+1 555 0100",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	hidden, _ := envelope["data"].(map[string]any)
	hiddenID, _ := hidden["id"].(string)

	resp, _ = doJSON(t, app.Client, http.MethodPatch, app.Server.URL+"/api/contact/info/"+hiddenID+"/toggle", token, map[string]bool{
		"active": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Admin view returns both rows.
	resp, envelope = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/contact", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	admin, _ := envelope["data"].(map[string]any)
	adminInfo, _ := admin["contactInfo"].([]any)
	assert.Len(t, adminInfo, 2)

	// Public view drops the deactivated one.
	resp, envelope = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/contact/public", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	public, _ := envelope["data"].(map[string]any)
	publicInfo, _ := public["contactInfo"].([]any)
	require.Len(t, publicInfo, 1)
	only, _ := publicInfo[0].(map[string]any)
	assert.Equal(t, visibleID, only["id"])

	// Office details exist from the start and accept partial updates.
	resp, envelope = doJSON(t, app.Client, http.MethodPut, app.Server.URL+"/api/contact/office", token, map[string]string{
		"address": "1 Main St",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	office, _ := envelope["data"].(map[string]any)
	assert.Equal(t, "1 Main St", office["address"])
}

func TestServicesToggleAndOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	createAdmin(t, app.DB, "Alice", "alice@example.com", "s3cret!")
	token := login(t, app, "alice@example.com", "s3cret!")

	resp, envelope := doJSON(t, app.Client, http.MethodPost, app.Server.URL+"/api/services", token, map[string]any{
		"title":       "Satellite Imagery",
		"description": "High resolution imagery.",
		"features":    []string{"daily refresh"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created, _ := envelope["data"].(map[string]any)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	resp, envelope = doJSON(t, app.Client, http.MethodPatch, app.Server.URL+"/api/services/"+id+"/toggle-active", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	toggled, _ := envelope["data"].(map[string]any)
	assert.Equal(t, false, toggled["active"])

	resp, envelope = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/services", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page, _ := envelope["data"].(map[string]any)
	require.NotNil(t, page["headerContent"])
	require.NotNil(t, page["ctaSection"])
}

func TestContactToggleWithoutBodyFlips(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	createAdmin(t, app.DB, "Alice", "alice@example.com", "s3cret!")
	token := login(t, app, "alice@example.com", "s3cret!")

	resp, envelope := doJSON(t, app.Client, http.MethodPost, app.Server.URL+"/api/contact/info", token, map[string]any{
		"type":  "email",
		"title": "General",
		"info":  "hello@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	info, _ := envelope["data"].(map[string]any)
	infoID, _ := info["id"].(string)
	require.Equal(t, true, info["active"])

	// A body-less toggle flips the stored value.
	resp, envelope = doJSON(t, app.Client, http.MethodPatch, app.Server.URL+"/api/contact/info/"+infoID+"/toggle", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	info, _ = envelope["data"].(map[string]any)
	assert.Equal(t, false, info["active"])

	// And flips it back on the next call.
	resp, envelope = doJSON(t, app.Client, http.MethodPatch, app.Server.URL+"/api/contact/info/"+infoID+"/toggle", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	info, _ = envelope["data"].(map[string]any)
	assert.Equal(t, true, info["active"])

	// An explicit value still wins over the flip.
	resp, envelope = doJSON(t, app.Client, http.MethodPatch, app.Server.URL+"/api/contact/info/"+infoID+"/toggle", token, map[string]bool{
		"active": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	info, _ = envelope["data"].(map[string]any)
	assert.Equal(t, true, info["active"])

	resp, envelope = doJSON(t, app.Client, http.MethodPost, app.Server.URL+"/api/contact/social", token, map[string]any{
		"platform": "LinkedIn",
		"url":      "https://linkedin.com/company/example",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	link, _ := envelope["data"].(map[string]any)
	linkID, _ := link["id"].(string)

	resp, envelope = doJSON(t, app.Client, http.MethodPatch, app.Server.URL+"/api/contact/social/"+linkID+"/toggle", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	link, _ = envelope["data"].(map[string]any)
	assert.Equal(t, false, link["active"])
}

func TestRemoveFeatureOutOfRange(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	createAdmin(t, app.DB, "Alice", "alice@example.com", "s3cret!")
	token := login(t, app, "alice@example.com", "s3cret!")

	// The page ships with four default features.
	resp, envelope := doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/aboutus", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	about, _ := envelope["data"].(map[string]any)
	features, _ := about["features"].([]any)
	require.Len(t, features, 4)

	resp, envelope = doJSON(t, app.Client, http.MethodDelete, app.Server.URL+"/api/aboutus/features/99", token, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid feature index", envelope["message"])

	resp, envelope = doJSON(t, app.Client, http.MethodDelete, app.Server.URL+"/api/aboutus/features/-1", token, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid feature index", envelope["message"])

	resp, envelope = doJSON(t, app.Client, http.MethodDelete, app.Server.URL+"/api/aboutus/features/0", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	remaining, _ := envelope["data"].([]any)
	assert.Len(t, remaining, 3)
}
