package appcontext

import (
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"schememonitor/internal/config"
	"schememonitor/internal/external"
	"schememonitor/internal/repository"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	S3 *minio.Client

	// Read-only clients for the upstream government services.
	SMDP    *external.SMDPClient
	Tourism *external.TourismClient
}
