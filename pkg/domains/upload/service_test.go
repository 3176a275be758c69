package upload

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/folio/pkg/config"
	"github.com/folio/pkg/constant"
	"github.com/stretchr/testify/require"
)

func TestUpload_ForwardsMultipartAndReturnsMetadata(t *testing.T) {
	var gotPreset, gotFilename string

	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPreset = r.FormValue("upload_preset")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://res.example/img.webp","width":640,"height":480,"format":"webp","resource_type":"image"}`))
	}))
	defer host.Close()

	s := NewServiceWithEndpoint(config.Cloudinary{CloudName: "demo", UploadPreset: "unsigned"}, host.URL)

	result, err := s.Upload(context.Background(), strings.NewReader("fake image bytes"), "img.png")
	require.NoError(t, err)
	require.Equal(t, "unsigned", gotPreset)
	require.Equal(t, "img.png", gotFilename)
	require.Equal(t, "https://res.example/img.webp", result.URL)
	require.Equal(t, 640, result.Width)
	require.Equal(t, "image", result.ResourceType)
}

func TestUpload_ConfigMissing(t *testing.T) {
	s := NewService(config.Cloudinary{})

	_, err := s.Upload(context.Background(), strings.NewReader("x"), "img.png")
	require.Error(t, err)
	require.Equal(t, constant.UPLOAD_CONFIG_MISSING, err.Error())
}

func TestUpload_UpstreamFailure(t *testing.T) {
	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad preset"}}`, http.StatusBadRequest)
	}))
	defer host.Close()

	s := NewServiceWithEndpoint(config.Cloudinary{CloudName: "demo", UploadPreset: "unsigned"}, host.URL)

	_, err := s.Upload(context.Background(), strings.NewReader("x"), "img.png")
	require.Error(t, err)
	require.Equal(t, constant.UPLOAD_FAILED, err.Error())
}
