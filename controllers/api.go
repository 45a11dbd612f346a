package controllers

import (
	"errors"
	"net/http"

	"eslap-workspace/internal/middleware"
	"eslap-workspace/internal/models"
	"eslap-workspace/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const apiPrefix = "/eslap/api/v1"

type APIController struct {
	server *services.Server
}

func NewAPIController(server *services.Server) *APIController {
	return &APIController{
		server: server,
	}
}

/**
 * Build the gin engine serving the workspace API
 * @param {*services.Server} server - Server holding the workspace
 * @returns {*gin.Engine} Engine with metrics middleware and every route registered
 */
func NewRouter(server *services.Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	NewAPIController(server).RegisterRoutes(r)
	NewDeploymentController(server.Deployments()).RegisterRoutes(r)
	NewServiceController(server.Services()).RegisterRoutes(r)
	NewStampController(server.Stamps()).RegisterRoutes(r)
	return r
}

func (a *APIController) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", a.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Healthz reports version, uptime and request statistics
//
//	@Summary	Readiness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	models.HealthResponse
//	@Router		/healthz [get]
func (a *APIController) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, a.server.GetHealthz())
}

/**
 * Translate a workspace error into an HTTP answer
 * @description
 * - ManifestNotFound, StampNotRegistered: 404
 * - MalformedManifest, MissingServiceVersion, InvalidName: 400
 * - RemoteOperationFailed: 502, the remote message is returned as is
 * - GeneratorFailed and anything else: 500
 */
func respondError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, models.ErrManifestNotFound):
		status, code = http.StatusNotFound, "manifest.not_found"
	case errors.Is(err, models.ErrStampNotRegistered):
		status, code = http.StatusNotFound, "stamp.not_registered"
	case errors.Is(err, models.ErrMalformedManifest):
		status, code = http.StatusBadRequest, "manifest.malformed"
	case errors.Is(err, models.ErrMissingServiceVersion):
		status, code = http.StatusBadRequest, "service.version_missing"
	case errors.Is(err, models.ErrInvalidName):
		status, code = http.StatusBadRequest, "name.invalid"
	case errors.Is(err, models.ErrRemoteOperationFailed):
		status, code = http.StatusBadGateway, "admission.failed"
	case errors.Is(err, models.ErrGeneratorFailed):
		status, code = http.StatusInternalServerError, "generator.failed"
	}
	c.JSON(status, models.ErrorResponse{Code: code, Error: http.StatusText(status), Message: err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Code:    "request.invalid",
		Error:   http.StatusText(http.StatusBadRequest),
		Message: err.Error(),
	})
}
