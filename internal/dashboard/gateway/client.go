package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNotFound reports a 404 from the backend.
var ErrNotFound = errors.New("not found")

type Client struct {
	base string
	http *http.Client
}

// NewClient builds a gateway against the given server origin, e.g.
// "http://localhost:8000". API calls go under /api, image retrieval under
// /uploads.
func NewClient(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: 60 * time.Second},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// do issues one JSON request. Transport failures and non-2xx responses both
// collapse to a single error for the caller to surface.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	u := c.base + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.decode(resp, out)
}

func (c *Client) decode(resp *http.Response, out interface{}) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error != "" {
			if resp.StatusCode == http.StatusNotFound {
				return fmt.Errorf("%w: %s", ErrNotFound, errResp.Error)
			}
			return errors.New(errResp.Error)
		}
		if resp.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	return json.Unmarshal(data, out)
}

// ListSchemes fetches schemes, optionally filtered by a name substring.
func (c *Client) ListSchemes(ctx context.Context, name string) ([]Scheme, error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}

	var schemes []Scheme
	if err := c.do(ctx, http.MethodGet, "/scheme", query, nil, &schemes); err != nil {
		return nil, err
	}

	return schemes, nil
}

func (c *Client) GetScheme(ctx context.Context, gsNo int) (*Scheme, error) {
	var scheme Scheme
	if err := c.do(ctx, http.MethodGet, "/scheme/"+strconv.Itoa(gsNo), nil, nil, &scheme); err != nil {
		return nil, err
	}

	return &scheme, nil
}

func (c *Client) CreateScheme(ctx context.Context, scheme Scheme) error {
	return c.do(ctx, http.MethodPost, "/scheme", nil, scheme, nil)
}

// UpdateScheme resends the whole record. Callers always carry the complete
// field set so an update never clears fields by accident.
func (c *Client) UpdateScheme(ctx context.Context, scheme Scheme) error {
	return c.do(ctx, http.MethodPut, "/scheme/"+strconv.Itoa(scheme.GsNo), nil, scheme, nil)
}

func (c *Client) DeleteScheme(ctx context.Context, gsNo int) error {
	return c.do(ctx, http.MethodDelete, "/scheme/"+strconv.Itoa(gsNo), nil, nil, nil)
}

// ListComponents fetches the components of one scheme, ordered by comp_id.
func (c *Client) ListComponents(ctx context.Context, gsNo int) ([]Component, error) {
	query := url.Values{}
	query.Set("gs_no", strconv.Itoa(gsNo))

	var components []Component
	if err := c.do(ctx, http.MethodGet, "/component", query, nil, &components); err != nil {
		return nil, err
	}

	return components, nil
}

func (c *Client) GetComponent(ctx context.Context, compID int) (*Component, error) {
	var component Component
	if err := c.do(ctx, http.MethodGet, "/component/"+strconv.Itoa(compID), nil, nil, &component); err != nil {
		return nil, err
	}

	return &component, nil
}

// CreateComponent returns the server-assigned comp_id.
func (c *Client) CreateComponent(ctx context.Context, component Component) (int, error) {
	var created struct {
		CompID int `json:"comp_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/component", nil, component, &created); err != nil {
		return 0, err
	}

	return created.CompID, nil
}

func (c *Client) UpdateComponent(ctx context.Context, compID int, update ComponentUpdate) error {
	return c.do(ctx, http.MethodPut, "/component/"+strconv.Itoa(compID), nil, update, nil)
}

func (c *Client) DeleteComponent(ctx context.Context, compID int) error {
	return c.do(ctx, http.MethodDelete, "/component/"+strconv.Itoa(compID), nil, nil, nil)
}

func (c *Client) GetComponentImages(ctx context.Context, compID int) (*ComponentImages, error) {
	var images ComponentImages
	if err := c.do(ctx, http.MethodGet, "/component/"+strconv.Itoa(compID)+"/images", nil, nil, &images); err != nil {
		return nil, err
	}

	return &images, nil
}

// Upload stages one file into the given bucket and returns the stored
// filename the server assigned to it.
func (c *Client) Upload(ctx context.Context, bucket Bucket, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/upload/"+string(bucket), &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var uploaded struct {
		Filename string `json:"filename"`
	}
	if err := c.decode(resp, &uploaded); err != nil {
		return "", err
	}

	return uploaded.Filename, nil
}

// ImageURL derives the retrieval URL of a stored filename. No server call
// is involved.
func (c *Client) ImageURL(bucket Bucket, filename string) string {
	return fmt.Sprintf("%s/uploads/%s/%s", c.base, bucket, filename)
}

// ReportPDFURL is the aggregate-report download link, opened externally
// rather than fetched through the gateway.
func (c *Client) ReportPDFURL() string {
	return c.base + "/api/reports/all/pdf"
}

func (c *Client) ListReports(ctx context.Context) ([]Report, error) {
	var reports []Report
	if err := c.do(ctx, http.MethodGet, "/reports", nil, nil, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

func (c *Client) GetReport(ctx context.Context, reportID string) (*Report, error) {
	var report Report
	if err := c.do(ctx, http.MethodGet, "/reports/"+url.PathEscape(reportID), nil, nil, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

// GetExternalProject looks a GS number up on the provincial financial
// dashboard. The upstream wraps its rows in a data envelope.
func (c *Client) GetExternalProject(ctx context.Context, gsNo string) ([]ExternalProject, error) {
	query := url.Values{}
	query.Set("gsNo", gsNo)

	var wrapper struct {
		Data []ExternalProject `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/get_project", query, nil, &wrapper); err != nil {
		return nil, err
	}

	return wrapper.Data, nil
}
