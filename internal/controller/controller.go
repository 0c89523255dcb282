package controller

import (
	appcontext "schememonitor/internal/app_context"
	"schememonitor/internal/report"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index     *IndexController
	Scheme    *SchemeController
	Component *ComponentController
	Upload    *UploadController
	Report    *ReportController
	External  *ExternalController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	reportGenerator := report.NewGenerator(app.Repository, app.S3, app.Logger)

	return &Controller{
		Index:     &IndexController{baseController: bc},
		Scheme:    &SchemeController{baseController: bc},
		Component: &ComponentController{baseController: bc},
		Upload:    &UploadController{baseController: bc},
		Report:    &ReportController{baseController: bc, generator: reportGenerator},
		External:  &ExternalController{baseController: bc},
	}
}
