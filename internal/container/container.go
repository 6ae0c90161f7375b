package container

import (
	"image/color"

	"go.uber.org/zap"

	app "safeai-bot/internal/application"
	"safeai-bot/internal/domain/port"
	"safeai-bot/internal/infrastructure/storage"
	"safeai-bot/internal/infrastructure/vision"
)

// Options настройки сборки сервисов.
type Options struct {
	Highlight color.Color
	UploadDir string
	Logger    *zap.Logger
}

type Container struct {
	UserService       *app.UserService
	AnalysisService   *app.AnalysisService
	InspectionService *app.InspectionService
}

func New(userRepo port.UserRepository, records port.AnalysisRepository, detector port.EdgeDetector, synthesizer port.ReportSynthesizer, opts Options) *Container {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	userService := app.NewUserService(userRepo)
	analysisService := app.NewAnalysisService(vision.NewCodec(), detector, synthesizer, opts.Highlight, logger.Named("analysis"))
	inspectionService := app.NewInspectionService(userService, analysisService, records,
		storage.NewFileArtifactStore(), opts.UploadDir, logger.Named("inspection"))

	return &Container{
		UserService:       userService,
		AnalysisService:   analysisService,
		InspectionService: inspectionService,
	}
}
