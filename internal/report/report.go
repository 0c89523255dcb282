package report

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"schememonitor/internal/constant"
	"schememonitor/internal/model"
	"schememonitor/internal/repository"
	"schememonitor/internal/util"
)

// Generator renders the aggregate scheme report: every scheme ordered by
// gs_no, its components ordered by comp_id, and the before/after photo
// pairs of active components, printed to PDF by headless Chrome.
type Generator struct {
	repo   *repository.Repository
	s3     *minio.Client
	logger *zap.SugaredLogger
}

func NewGenerator(repo *repository.Repository, s3 *minio.Client, logger *zap.SugaredLogger) *Generator {
	return &Generator{repo: repo, s3: s3, logger: logger}
}

// ImagePair is one template row. Either side may be empty when the before
// and after lists have different lengths.
type ImagePair struct {
	Before string
	After  string
}

type ComponentView struct {
	model.Component
	ImagePairs []ImagePair
}

type SchemeView struct {
	model.Scheme
	Components []ComponentView
}

type reportData struct {
	Schemes        []SchemeView
	Today          string
	CoverImagePath string
}

// Filename returns the attachment name for a report generated today.
func Filename() string {
	return fmt.Sprintf("Priority_Projects_Report_%s.pdf", time.Now().Format("02_01_2006"))
}

// PairImages lines before/after filenames up row-wise, padding the shorter
// list with empty slots.
func PairImages(before, after []string) []ImagePair {
	n := len(before)
	if len(after) > n {
		n = len(after)
	}

	pairs := make([]ImagePair, 0, n)
	for i := 0; i < n; i++ {
		var pair ImagePair
		if i < len(before) {
			pair.Before = before[i]
		}
		if i < len(after) {
			pair.After = after[i]
		}
		pairs = append(pairs, pair)
	}

	return pairs
}

// BuildSchemeViews loads every scheme with its components and, for active
// components, the paired image file paths produced by fetchImage. Inactive
// components keep their rows but contribute no images.
func (g *Generator) BuildSchemeViews(ctx context.Context, fetchImage func(bucket, filename string) (string, error)) ([]SchemeView, error) {
	schemes, err := g.repo.Scheme.List(ctx, nil, "", nil)
	if err != nil {
		return nil, err
	}

	views := make([]SchemeView, 0, len(schemes))
	for _, scheme := range schemes {
		gsNo := scheme.GsNo
		components, err := g.repo.Component.ListByScheme(ctx, nil, &gsNo)
		if err != nil {
			return nil, err
		}

		compViews := make([]ComponentView, 0, len(components))
		for _, comp := range components {
			view := ComponentView{Component: comp}

			active := comp.IsActive == nil || *comp.IsActive
			if active {
				before, err := g.localizeImages(constant.BUCKET_BEFORE, comp.BeforeImages, fetchImage)
				if err != nil {
					return nil, err
				}
				after, err := g.localizeImages(constant.BUCKET_AFTER, comp.AfterImages, fetchImage)
				if err != nil {
					return nil, err
				}
				view.ImagePairs = PairImages(before, after)
			}

			compViews = append(compViews, view)
		}

		views = append(views, SchemeView{Scheme: scheme, Components: compViews})
	}

	return views, nil
}

// localizeImages resolves stored filenames to local paths. A filename whose
// blob cannot be fetched is skipped rather than failing the whole report.
func (g *Generator) localizeImages(bucket string, filenames []string, fetchImage func(bucket, filename string) (string, error)) ([]string, error) {
	paths := make([]string, 0, len(filenames))
	for _, filename := range filenames {
		path, err := fetchImage(bucket, filename)
		if err != nil {
			g.logger.Warnf("Skipping report image %s/%s: %v", bucket, filename, err)
			continue
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// Generate renders the report template and prints it to PDF. The returned
// bytes are the finished document.
func (g *Generator) Generate(ctx context.Context) ([]byte, error) {
	tempDir, err := os.MkdirTemp(util.GetTempDir(), "report_*")
	if err != nil {
		if mkErr := os.MkdirAll(util.GetTempDir(), 0755); mkErr != nil {
			return nil, mkErr
		}
		tempDir, err = os.MkdirTemp(util.GetTempDir(), "report_*")
		if err != nil {
			return nil, err
		}
	}
	defer os.RemoveAll(tempDir)

	fetchImage := func(bucket, filename string) (string, error) {
		localPath := filepath.Join(tempDir, bucket+"_"+filepath.Base(filename))
		if err := util.DownloadImageToLocal(ctx, g.s3, bucket, filename, localPath); err != nil {
			return "", err
		}
		return localPath, nil
	}

	views, err := g.BuildSchemeViews(ctx, fetchImage)
	if err != nil {
		return nil, err
	}

	htmlPath, err := renderHTML(reportData{
		Schemes:        views,
		Today:          time.Now().Format("02-01-2006"),
		CoverImagePath: coverImagePath(),
	})
	if err != nil {
		return nil, err
	}

	return printToPDF(ctx, htmlPath)
}

func coverImagePath() string {
	path, err := filepath.Abs("assets/report_cover.png")
	if err != nil {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// renderHTML writes the filled template to a temp file and returns its path.
func renderHTML(data reportData) (string, error) {
	tmpl, err := template.ParseFiles("templates/report.html")
	if err != nil {
		return "", err
	}

	file, err := util.CreateTemp("report_*.html")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := tmpl.Execute(file, data); err != nil {
		os.Remove(file.Name())
		return "", err
	}

	return file.Name(), nil
}

func printToPDF(ctx context.Context, htmlPath string) ([]byte, error) {
	defer os.Remove(htmlPath)

	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + htmlPath

	err := chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
