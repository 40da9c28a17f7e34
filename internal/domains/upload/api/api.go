package api

import (
	"log/slog"

	uploadapp "github.com/chatdrop/chatdrop/internal/domains/upload/app"
	uploadports "github.com/chatdrop/chatdrop/internal/domains/upload/ports"
	"github.com/chatdrop/chatdrop/internal/platform/clock"
)

type API interface {
	Run(req uploadapp.RunRequest) (uploadapp.RunResult, error)
}

type Dependencies struct {
	Clock    clock.Clock
	Desktop  uploadports.Desktop
	Progress uploadports.Progress
	Logger   *slog.Logger

	Collector uploadports.Collector
}

func New(deps Dependencies) API {
	return &uploadAPI{
		svc: &uploadapp.Service{
			Clock:    deps.Clock,
			Desktop:  deps.Desktop,
			Progress: deps.Progress,
			Logger:   deps.Logger,

			Collector: deps.Collector,
		},
	}
}

type uploadAPI struct {
	svc *uploadapp.Service
}

func (u *uploadAPI) Run(req uploadapp.RunRequest) (uploadapp.RunResult, error) {
	return u.svc.Run(req)
}
