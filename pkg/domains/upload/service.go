package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/folio/pkg/config"
	"github.com/folio/pkg/constant"
	"github.com/folio/pkg/dtos"
)

// Service forwards uploaded files to the external media host and hands back
// the hosted URL plus metadata.
type Service interface {
	Upload(ctx context.Context, file io.Reader, filename string) (dtos.UploadResultDTO, error)
}

type service struct {
	cfg    config.Cloudinary
	client *http.Client
	// overridable for tests
	endpoint string
}

func NewService(cfg config.Cloudinary) Service {
	return &service{
		cfg:      cfg,
		client:   &http.Client{Timeout: 30 * time.Second},
		endpoint: fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/auto/upload", cfg.CloudName),
	}
}

// NewServiceWithEndpoint points the uploader at a custom host.
func NewServiceWithEndpoint(cfg config.Cloudinary, endpoint string) Service {
	s := NewService(cfg).(*service)
	s.endpoint = endpoint
	return s
}

type uploadResponse struct {
	SecureURL    string `json:"secure_url"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Format       string `json:"format"`
	ResourceType string `json:"resource_type"`
}

func (s *service) Upload(ctx context.Context, file io.Reader, filename string) (dtos.UploadResultDTO, error) {
	var result dtos.UploadResultDTO

	if s.cfg.CloudName == "" || s.cfg.UploadPreset == "" {
		return result, fmt.Errorf(constant.UPLOAD_CONFIG_MISSING)
	}

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := writer.WriteField("upload_preset", s.cfg.UploadPreset); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, pr)
	if err != nil {
		return result, fmt.Errorf(constant.UPLOAD_FAILED)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[error] media host request failed: %v", err)
		return result, fmt.Errorf(constant.UPLOAD_FAILED)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[error] media host returned %d: %s", resp.StatusCode, body)
		return result, fmt.Errorf(constant.UPLOAD_FAILED)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return result, fmt.Errorf(constant.UPLOAD_FAILED)
	}

	result = dtos.UploadResultDTO{
		URL:          parsed.SecureURL,
		Width:        parsed.Width,
		Height:       parsed.Height,
		Format:       parsed.Format,
		ResourceType: parsed.ResourceType,
	}
	return result, nil
}
