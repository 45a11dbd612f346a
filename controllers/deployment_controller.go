package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"eslap-workspace/internal/models"
	"eslap-workspace/services"

	"github.com/gin-gonic/gin"
)

type DeploymentController struct {
	deployments *services.DeploymentManager
}

func NewDeploymentController(deployments *services.DeploymentManager) *DeploymentController {
	return &DeploymentController{
		deployments: deployments,
	}
}

/**
 * Register deployment routes
 * @param {*gin.Engine} r - Gin router instance
 * @description
 * - POST   /eslap/api/v1/deployments               generate a deployment
 * - GET    /eslap/api/v1/deployments/:name/manifest read the manifest
 * - PUT    /eslap/api/v1/deployments/:name/manifest replace the manifest
 * - POST   /eslap/api/v1/deployments/:name/scale    scale one role on a stamp
 * - DELETE /eslap/api/v1/deployments/:name?stamp=   undeploy from a stamp
 */
func (d *DeploymentController) RegisterRoutes(r *gin.Engine) {
	api := r.Group(apiPrefix)
	api.POST("/deployments", d.AddDeployment)
	api.GET("/deployments/:name/manifest", d.GetManifest)
	api.PUT("/deployments/:name/manifest", d.UpdateManifest)
	api.POST("/deployments/:name/scale", d.ScaleRole)
	api.DELETE("/deployments/:name", d.Undeploy)
}

// AddDeploymentRequest asks to generate deployments/<name> from a template.
type AddDeploymentRequest struct {
	Template string               `json:"template" binding:"required"`
	Name     string               `json:"name" binding:"required"`
	Service  models.ServiceConfig `json:"service" binding:"required"`
}

// ScaleRequest changes the instances of one role on one stamp.
type ScaleRequest struct {
	Role      string `json:"role" binding:"required"`
	Instances int    `json:"instances" binding:"min=0"`
	Stamp     string `json:"stamp" binding:"required"`
}

// AddDeployment generates a deployment
//
//	@Summary	Add deployment
//	@Tags		Deployments
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AddDeploymentRequest	true	"Template, name and service"
//	@Success	201		{object}	map[string]string
//	@Failure	400		{object}	models.ErrorResponse
//	@Router		/eslap/api/v1/deployments [post]
func (d *DeploymentController) AddDeployment(c *gin.Context) {
	var req AddDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	// Remote callers only reach templates inside the templates directory.
	if filepath.IsAbs(req.Template) || strings.Contains(req.Template, "..") {
		badRequest(c, fmt.Errorf("template '%s' must be relative to the templates directory", req.Template))
		return
	}
	msg, err := d.deployments.Add(c.Request.Context(), req.Template, models.DeploymentConfig{
		Name:    req.Name,
		Service: req.Service,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

func (d *DeploymentController) GetManifest(c *gin.Context) {
	doc, err := d.deployments.GetManifest(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (d *DeploymentController) UpdateManifest(c *gin.Context) {
	var doc map[string]interface{}
	if err := c.ShouldBindJSON(&doc); err != nil {
		badRequest(c, err)
		return
	}
	if err := d.deployments.UpdateManifest(c.Param("name"), doc); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ScaleRole changes the number of instances of a role
//
//	@Summary	Scale role
//	@Tags		Deployments
//	@Accept		json
//	@Produce	json
//	@Param		name	path		string			true	"Deployment name"
//	@Param		request	body		ScaleRequest	true	"Role, instances and stamp"
//	@Success	200		{object}	map[string]string
//	@Failure	404		{object}	models.ErrorResponse	"Stamp not registered"
//	@Failure	502		{object}	models.ErrorResponse	"Admission rejected the operation"
//	@Router		/eslap/api/v1/deployments/{name}/scale [post]
func (d *DeploymentController) ScaleRole(c *gin.Context) {
	var req ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	msg, err := d.deployments.ScaleRole(c.Request.Context(), c.Param("name"), req.Role, req.Instances, req.Stamp)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (d *DeploymentController) Undeploy(c *gin.Context) {
	stamp := c.Query("stamp")
	if stamp == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "request.invalid",
			Message: "query parameter 'stamp' is required",
		})
		return
	}
	instances, err := d.deployments.Undeploy(c.Request.Context(), c.Param("name"), stamp)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instances)
}
