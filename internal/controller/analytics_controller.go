package controller

import (
	"coursepro_backend/internal/service"
	"coursepro_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// SystemOverview godoc
// @Summary System-wide counts and recent activity
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/analytics/system/overview [get]
func (ctl *AnalyticsController) SystemOverview(c *gin.Context) {
	data, err := ctl.analyticsService.SystemOverview()
	if err != nil {
		util.LogInternalError(c, "Failed to load system overview", err)
		return
	}
	util.Success(c, data)
}

// UserAnalytics godoc
// @Summary User strand and GWA distributions plus registration trend
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/analytics/users/analytics [get]
func (ctl *AnalyticsController) UserAnalytics(c *gin.Context) {
	data, err := ctl.analyticsService.UserAnalytics()
	if err != nil {
		util.LogInternalError(c, "Failed to load user analytics", err)
		return
	}
	util.Success(c, data)
}

// CourseAnalytics godoc
// @Summary Course popularity and recommendation trends
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/analytics/courses/analytics [get]
func (ctl *AnalyticsController) CourseAnalytics(c *gin.Context) {
	data, err := ctl.analyticsService.CourseAnalytics()
	if err != nil {
		util.LogInternalError(c, "Failed to load course analytics", err)
		return
	}
	util.Success(c, data)
}

// RecommendationAnalytics godoc
// @Summary Recommendation status breakdown and trends
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/analytics/recommendations/analytics [get]
func (ctl *AnalyticsController) RecommendationAnalytics(c *gin.Context) {
	data, err := ctl.analyticsService.RecommendationAnalytics()
	if err != nil {
		util.LogInternalError(c, "Failed to load recommendation analytics", err)
		return
	}
	util.Success(c, data)
}
