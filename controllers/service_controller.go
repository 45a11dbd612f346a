package controllers

import (
	"net/http"

	"eslap-workspace/internal/models"
	"eslap-workspace/services"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	services *services.ServiceManager
}

func NewServiceController(svc *services.ServiceManager) *ServiceController {
	return &ServiceController{
		services: svc,
	}
}

func (s *ServiceController) RegisterRoutes(r *gin.Engine) {
	api := r.Group(apiPrefix)
	api.GET("/services/:domain/:name/configuration", s.GetConfiguration)
}

// GetConfiguration resolves the deployment configuration of a service
//
//	@Summary	Resolved service configuration
//	@Tags		Services
//	@Produce	json
//	@Param		domain	path		string	true	"Service domain"
//	@Param		name	path		string	true	"Service name"
//	@Param		version	query		string	false	"Service version"
//	@Success	200		{object}	models.ServiceConfiguration
//	@Failure	404		{object}	models.ErrorResponse
//	@Router		/eslap/api/v1/services/{domain}/{name}/configuration [get]
func (s *ServiceController) GetConfiguration(c *gin.Context) {
	conf, err := s.services.Configuration(models.ServiceConfig{
		Domain:  c.Param("domain"),
		Name:    c.Param("name"),
		Version: c.Query("version"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conf)
}
