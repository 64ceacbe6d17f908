package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohanKadam-7/boxgames/internal/common"
	"github.com/RohanKadam-7/boxgames/pkg/utils"
)

type AnalyticsController struct {
	repo AnalyticsRepository
}

func NewAnalyticsController(repo AnalyticsRepository) *AnalyticsController {
	return &AnalyticsController{repo: repo}
}

// GetAnalytics godoc
// @Summary Per-ground booking and revenue figures for the caller's venues
// @Tags owner
// @Produce json
// @Success 200 {array} GroundAnalytics
// @Router /owner/analytics [get]
// @Security Bearer
func (ac *AnalyticsController) GetAnalytics(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := ac.repo.GroundStats(principal.Email)
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetDashboard godoc
// @Summary Catalog-wide summary for the caller
// @Tags owner
// @Produce json
// @Success 200 {object} Dashboard
// @Router /owner/dashboard [get]
// @Security Bearer
func (ac *AnalyticsController) GetDashboard(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dashboard, err := ac.repo.OwnerDashboard(principal.Email)
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
