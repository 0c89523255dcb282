package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"schememonitor/internal/config"
)

// TourismClient reads project structure and field reports from the tourism
// project-tracking API. All responses are passed through untouched.
type TourismClient struct {
	cfg    config.TourismConfig
	http   *http.Client
	logger *zap.SugaredLogger
}

func NewTourismClient(cfg config.TourismConfig, logger *zap.SugaredLogger) *TourismClient {
	return &TourismClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

func (tc *TourismClient) get(ctx context.Context, url string) (json.RawMessage, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+tc.cfg.BEARER_TOKEN)

	resp, err := tc.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to reach tourism service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return json.RawMessage(data), resp.StatusCode, nil
}

func (tc *TourismClient) ProjectStructure(ctx context.Context, projectID string) (json.RawMessage, int, error) {
	tc.logger.Debugf("Tourism project structure with projectID: %s \n", projectID)
	return tc.get(ctx, fmt.Sprintf("%s/%s/structure", strings.TrimSuffix(tc.cfg.PROJECTS_URL, "/"), projectID))
}

func (tc *TourismClient) ProjectDetails(ctx context.Context, projectID string) (json.RawMessage, int, error) {
	tc.logger.Debugf("Tourism project details with projectID: %s \n", projectID)
	return tc.get(ctx, fmt.Sprintf("%s/%s", strings.TrimSuffix(tc.cfg.PROJECTS_URL, "/"), projectID))
}

func (tc *TourismClient) Reports(ctx context.Context) (json.RawMessage, int, error) {
	tc.logger.Debugf("Tourism list reports \n")
	return tc.get(ctx, tc.cfg.REPORTS_URL)
}

func (tc *TourismClient) ReportDetails(ctx context.Context, reportID string) (json.RawMessage, int, error) {
	tc.logger.Debugf("Tourism report details with reportID: %s \n", reportID)
	return tc.get(ctx, fmt.Sprintf("%s/%s", strings.TrimSuffix(tc.cfg.REPORTS_URL, "/"), reportID))
}
