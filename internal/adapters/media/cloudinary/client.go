// Package cloudinary stores media on Cloudinary through its signed upload API.
package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/middleware"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"github.com/shopspring/decimal"
)

const defaultAPIBase = "https://api.cloudinary.com/v1_1"

// Client implements portssvc.MediaStorage against the Cloudinary REST API.
type Client struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	apiBase   string
	http      *http.Client
	now       func() time.Time
}

var _ portssvc.MediaStorage = (*Client)(nil)

// Option customises a Client.
type Option func(*Client)

// WithAPIBase points the client at another API root.
func WithAPIBase(base string) Option {
	return func(c *Client) { c.apiBase = strings.TrimRight(base, "/") }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New parses a cloudinary://<key>:<secret>@<cloud> URL.
func New(cfg config.Cloudinary, opts ...Option) (*Client, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil || u.Scheme != "cloudinary" || u.User == nil || u.Host == "" {
		return nil, fmt.Errorf("invalid CLOUDINARY_URL, expected cloudinary://<key>:<secret>@<cloud>")
	}
	secret, ok := u.User.Password()
	if !ok || secret == "" || u.User.Username() == "" {
		return nil, fmt.Errorf("invalid CLOUDINARY_URL, missing api key or secret")
	}

	c := &Client{
		cloudName: u.Host,
		apiKey:    u.User.Username(),
		apiSecret: secret,
		folder:    cfg.Folder,
		apiBase:   defaultAPIBase,
		http:      &http.Client{Timeout: 10 * time.Minute},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type uploadResponse struct {
	SecureURL    string          `json:"secure_url"`
	PublicID     string          `json:"public_id"`
	ResourceType string          `json:"resource_type"`
	Duration     decimal.Decimal `json:"duration"`
	Error        *apiError       `json:"error,omitempty"`
}

type destroyResponse struct {
	Result string    `json:"result"`
	Error  *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
}

// sign computes the SHA-1 request signature over the sorted params and the api secret.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}

func resourceType(kind domain.MediaKind) string {
	if kind == domain.MediaKindVideo {
		return "video"
	}
	return "image"
}

func (c *Client) endpoint(kind domain.MediaKind, action string) string {
	return fmt.Sprintf("%s/%s/%s/%s", c.apiBase, c.cloudName, resourceType(kind), action)
}

// Upload streams the file as a signed multipart request.
func (c *Client) Upload(ctx context.Context, file domain.UploadFile) (*domain.MediaAsset, error) {
	if file.Content == nil {
		return nil, fmt.Errorf("%w: empty file", apperrors.ErrMediaUpload)
	}

	params := map[string]string{"timestamp": strconv.FormatInt(c.now().Unix(), 10)}
	if c.folder != "" {
		params["folder"] = c.folder
	}
	signature := c.sign(params)

	body, writer := io.Pipe()
	mw := multipart.NewWriter(writer)
	go func() {
		err := func() error {
			for k, v := range params {
				if err := mw.WriteField(k, v); err != nil {
					return err
				}
			}
			if err := mw.WriteField("api_key", c.apiKey); err != nil {
				return err
			}
			if err := mw.WriteField("signature", signature); err != nil {
				return err
			}
			part, err := mw.CreateFormFile("file", file.FileName)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, file.Content); err != nil {
				return err
			}
			return mw.Close()
		}()
		writer.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(file.Kind, "upload"), body)
	if err != nil {
		_ = body.Close()
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMediaUpload, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out uploadResponse
	if err := c.do(req, &out); err != nil {
		_ = body.Close()
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMediaUpload, err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrMediaUpload, out.Error.Message)
	}

	middleware.GetLoggerFromCtx(ctx).DebugContext(ctx, "Uploaded media to cloudinary",
		slog.String("public_id", out.PublicID),
		slog.String("resource_type", out.ResourceType))

	return &domain.MediaAsset{
		URL:          out.SecureURL,
		PublicID:     out.PublicID,
		ResourceType: domain.MediaKind(out.ResourceType),
		Duration:     out.Duration,
	}, nil
}

// Delete destroys an asset. "not found" is reported as a result, not an error.
func (c *Client) Delete(ctx context.Context, asset domain.MediaAsset) (*domain.MediaDeleteResult, error) {
	params := map[string]string{
		"public_id": asset.PublicID,
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("api_key", c.apiKey)
	form.Set("signature", c.sign(params))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(asset.ResourceType, "destroy"),
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build destroy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out destroyResponse
	if err := c.do(req, &out); err != nil {
		return nil, fmt.Errorf("failed to delete media %s: %w", asset.PublicID, err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("failed to delete media %s: %s", asset.PublicID, out.Error.Message)
	}
	return &domain.MediaDeleteResult{PublicID: asset.PublicID, Result: out.Result}, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("media host returned status %d", resp.StatusCode)
	}
	return nil
}
