package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"schememonitor/internal/config"
)

// SMDPClient queries the provincial CFY review dashboard for the financial
// figures of a scheme. The upstream exposes a single POST search endpoint;
// the dashboard only ever varies the search text and filter id.
type SMDPClient struct {
	cfg    config.SMDPConfig
	http   *http.Client
	logger *zap.SugaredLogger
}

func NewSMDPClient(cfg config.SMDPConfig, logger *zap.SugaredLogger) *SMDPClient {
	return &SMDPClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

type smdpSearchPayload struct {
	FinancialYearId          int     `json:"FinancialYearId"`
	UserID                   string  `json:"UserID"`
	UserTypeID               int     `json:"UserTypeID"`
	SubSectorID              *int    `json:"SubSectorID"`
	SectorID                 *int    `json:"sectorID"`
	DivisionID               *int    `json:"DivisionID"`
	DistrictID               *int    `json:"DistrictID"`
	ConstituencyID           *int    `json:"ConstituencyID"`
	TehsilID                 *int    `json:"TehsilID"`
	DepartmentID             *int    `json:"DepartmentID"`
	DeptGroupID              *int    `json:"DeptGroupID"`
	PPID                     *int    `json:"PPID"`
	SchemeTypeID             *int    `json:"SchemeTypeID"`
	SchemeSubTypeID          *int    `json:"SchemeSubTypeID"`
	ProjectStatusTypeID      *int    `json:"ProjectStatusTypeID"`
	FundingCostType          *string `json:"FundingCostType"`
	ValueTypeID              *int    `json:"ValueTypeID"`
	ApprovalStatus           string  `json:"ApprovalStatus"`
	ApprovalStatusCatFilter  *int    `json:"ApprovalStatusCatFilterID"`
	IsFullyFunded            *bool   `json:"IsFullyFunded"`
	ExecutingAgencyIdCSV     string  `json:"ExecutingAgencyIdCSV"`
	SponsorAgencyIdCSV       string  `json:"SponsorAgencyIdCSV"`
	RegionIdCSV              string  `json:"RegionIdCSV"`
	FilterID                 string  `json:"FilterID"`
	SearchText               string  `json:"SearchText"`
	SortColName              string  `json:"SortColName"`
	SortDirection            string  `json:"SortDirection"`
	PageNo                   int     `json:"PageNo"`
	PageSize                 int     `json:"PageSize"`
	Search                   bool    `json:"_search"`
	ListFilterID             *int    `json:"ListFilterID"`
	Nd                       int64   `json:"nd"`
}

// SearchProject posts the dashboard list query with the given GS number as
// search text. The upstream body is passed through untouched.
func (sc *SMDPClient) SearchProject(ctx context.Context, gsNo string, filterID string) (json.RawMessage, int, error) {
	sc.logger.Debugf("SMDP search project with gsNo: %q, filterID: %q \n", gsNo, filterID)

	if filterID == "" {
		filterID = "1"
	}

	payload := smdpSearchPayload{
		FinancialYearId: 12,
		UserID:          "2127",
		UserTypeID:      3,
		FilterID:        filterID,
		SearchText:      gsNo,
		SortColName:     "gsNo",
		SortDirection:   "asc",
		PageNo:          1,
		PageSize:        50,
		Nd:              time.Now().UnixMilli(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sc.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+sc.cfg.BEARER_TOKEN)

	resp, err := sc.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to reach dashboard service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return json.RawMessage(data), resp.StatusCode, nil
}
