package controllers

import (
	"net/http"

	"eslap-workspace/services"

	"github.com/gin-gonic/gin"
)

type StampController struct {
	stamps *services.StampManager
}

func NewStampController(stamps *services.StampManager) *StampController {
	return &StampController{
		stamps: stamps,
	}
}

func (s *StampController) RegisterRoutes(r *gin.Engine) {
	api := r.Group(apiPrefix)
	api.GET("/stamps", s.ListStamps)
}

// ListStamps lists the stamps registered in the workspace, without tokens.
func (s *StampController) ListStamps(c *gin.Context) {
	stamps, err := s.stamps.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stamps)
}
