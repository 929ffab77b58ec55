package httpserver

import (
	"context"

	trackerHTTP "calendar-time-tracker/internal/tracker/delivery/http"
	trackerRepo "calendar-time-tracker/internal/tracker/repository/gcal"
	trackerUC "calendar-time-tracker/internal/tracker/usecase"

	"github.com/gin-gonic/gin"
)

// setupTrackerDomain initializes the tracker domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(client, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, defaults)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) setupTrackerDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := trackerRepo.New(srv.gcalClient, srv.l)

	// 2. UseCase
	uc := trackerUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := trackerHTTP.New(srv.l, uc, srv.trackerCfg)

	// 4. Routes: registers /api/v1/tracker/summary and /api/v1/tracker/colors
	trackerHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Tracker domain registered")
	return nil
}
