// Package gateway is a typed REST client for the scheme-monitor backend.
// It translates local operations into HTTP calls and nothing else: no
// retries, no caching, no business logic.
package gateway

// Bucket selects the storage category of an uploaded site photograph. It
// determines both the upload endpoint and the retrieval URL prefix.
type Bucket string

const (
	BucketBefore Bucket = "before"
	BucketAfter  Bucket = "after"
)

type Scheme struct {
	GsNo                     int     `json:"gs_no"`
	SrNo                     *int    `json:"sr_no,omitempty"`
	NameOfScheme             string  `json:"name_of_scheme"`
	PhysicalProgress         float64 `json:"physical_progress"`
	TotalAllocation          float64 `json:"total_allocation"`
	FundsReleased            float64 `json:"funds_released"`
	CommittedFundUtilization float64 `json:"committed_fund_utilization"`
	LabourDeployed           int     `json:"labour_deployed"`
	Remarks                  string  `json:"remarks"`
}

type Component struct {
	CompID        int      `json:"comp_id"`
	ComponentName string   `json:"component_name"`
	StartingDate  string   `json:"starting_date"`
	GsNo          int      `json:"gs_no"`
	IsActive      bool     `json:"is_active"`
	BeforeImages  []string `json:"before_images"`
	AfterImages   []string `json:"after_images"`
}

// ComponentUpdate carries only the fields a partial update should write.
// Image lists use slice pointers so that an explicit empty list (clear all
// images) is distinguishable from an absent one (leave untouched).
type ComponentUpdate struct {
	ComponentName *string   `json:"component_name,omitempty"`
	StartingDate  *string   `json:"starting_date,omitempty"`
	GsNo          *int      `json:"gs_no,omitempty"`
	IsActive      *bool     `json:"is_active,omitempty"`
	BeforeImages  *[]string `json:"before_images,omitempty"`
	AfterImages   *[]string `json:"after_images,omitempty"`
}

// ComponentImages holds the bucket-prefixed retrieval URLs of a component's
// stored photographs.
type ComponentImages struct {
	CompID          int      `json:"comp_id"`
	BeforeImageURLs []string `json:"before_image_urls"`
	AfterImageURLs  []string `json:"after_image_urls"`
}

// Report is a field-collected daily log produced by an external system.
// Read path only; this client never writes reports.
type Report struct {
	ID               string           `json:"id"`
	ReportNumber     string           `json:"reportNumber"`
	Date             string           `json:"date"`
	ProjectName      string           `json:"projectName"`
	Site             ReportSite       `json:"site"`
	Latitude         float64          `json:"latitude"`
	Longitude        float64          `json:"longitude"`
	LocationAccuracy float64          `json:"locationAccuracy"`
	Weather          []string         `json:"weather"`
	Equipment        []string         `json:"equipment"`
	Manpower         int              `json:"manpower"`
	CreatedBy        string           `json:"createdBy"`
	Progress         []ProgressEntry  `json:"progress"`
	Photos           []ReportPhoto    `json:"photos"`
}

type ReportSite struct {
	Name string `json:"name"`
}

type ProgressEntry struct {
	ActivityDescription string  `json:"activityDescription"`
	QuantityToday       float64 `json:"quantityToday"`
	TotalToDate         float64 `json:"totalToDate"`
	Unit                string  `json:"unit"`
}

type ReportPhoto struct {
	Path       string `json:"path"`
	CapturedAt string `json:"capturedAt"`
}

// ExternalProject is one row of the provincial financial dashboard, keyed by
// GS number. Read path only.
type ExternalProject struct {
	GsNo                   string  `json:"gsNo"`
	Name                   string  `json:"name"`
	District               string  `json:"district"`
	EstimatedCost          float64 `json:"estimatedCost"`
	Allocation             float64 `json:"allocation"`
	RevisedAllocation      float64 `json:"revisedAllocation"`
	FinanceReleasePifra    float64 `json:"financeReleasePifra"`
	FinanceReleaseFD       float64 `json:"financeReleaseFD"`
	ReleaseByPD            float64 `json:"releaseByPD"`
	ExpUpToJune            float64 `json:"expUpToJune"`
	ActExpUpTo             float64 `json:"actExpUpTo"`
	Utilication            float64 `json:"utilication"`
	UtilicationPercent     float64 `json:"utilicationPercent"`
	TotalThrowForward      float64 `json:"totalThrowForward"`
	ApprovalStatus         string  `json:"approvalStatus"`
}
