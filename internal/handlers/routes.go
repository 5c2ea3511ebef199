package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires every handler onto the echo instance
func RegisterRoutes(
	e *echo.Echo,
	dashboard *DashboardHandler,
	savings *SavingsHandler,
	insights *InsightHandler,
	health *HealthCheckHandler,
) {
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	institutions := v1.Group("/institutions")
	institutions.GET("", dashboard.ListInstitutions)
	institutions.GET("/:id/metrics", dashboard.GetMetrics)
	institutions.GET("/:id/report", dashboard.GetReport)
	institutions.GET("/:id/anomalies", dashboard.GetAnomalies)

	savingsGroup := institutions.Group("/:id/savings")
	savingsGroup.GET("/goals", savings.ListGoals)
	savingsGroup.POST("/goals", savings.CreateGoal)
	savingsGroup.DELETE("/goals/:goalId", savings.DeleteGoal)
	savingsGroup.GET("/rules", savings.ListRules)
	savingsGroup.POST("/rules", savings.CreateRule)
	savingsGroup.PATCH("/rules/:ruleId/toggle", savings.ToggleRule)
	savingsGroup.DELETE("/rules/:ruleId", savings.DeleteRule)
	savingsGroup.GET("/preference", savings.GetPreference)
	savingsGroup.PUT("/preference", savings.UpdatePreference)
	savingsGroup.GET("/calculate", savings.CalculateSavings)

	v1.POST("/insights", insights.GetInsights)
}
