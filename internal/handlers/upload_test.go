package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) upload(t *testing.T, cookie, filename string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("not really image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestUploadReturnsSecureURL(t *testing.T) {
	f := setup(t)
	insp := f.login(t, "inspector@test.local")

	w := f.upload(t, insp, "finding.jpg")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body["secure_url"], "/uploads/"))
	assert.True(t, strings.HasSuffix(body["secure_url"], ".jpg"))
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	f := setup(t)
	insp := f.login(t, "inspector@test.local")

	w := f.upload(t, insp, "notes.exe")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
