package container

import (
	"github.com/rs/zerolog"

	app "github.com/DavidOG03/crack-analyst/internal/application"
	"github.com/DavidOG03/crack-analyst/internal/domain/port"
)

type Container struct {
	UserService     *app.UserService
	AnalysisService *app.AnalysisService
}

func New(userRepo port.UserRepository, analyzer port.CrackAnalyzer, publisher port.ResultPublisher, log zerolog.Logger) *Container {
	userService := app.NewUserService(userRepo)
	analysisService := app.NewAnalysisService(analyzer, publisher, log)

	return &Container{
		UserService:     userService,
		AnalysisService: analysisService,
	}
}
