package api

import (
	"github.com/gin-gonic/gin"

	"github.com/priyansh/carmitra/internal/api/controller"
	"github.com/priyansh/carmitra/internal/api/middleware"
	"github.com/priyansh/carmitra/internal/session"
)

// Controllers bundles everything RegisterRoutes needs wired in.
type Controllers struct {
	Policy       *controller.PolicyController
	Finance      *controller.FinanceController
	Depreciation *controller.DepreciationController
	Comparison   *controller.ComparisonController
	Browser      *controller.BrowserController
	FinePrint    *controller.FinePrintController
	Insights     *controller.InsightsController
	Assistant    *controller.AssistantController
}

// RegisterRoutes mounts one route group per dashboard feature.
func RegisterRoutes(r *gin.Engine, sessions *session.Manager, ctrls Controllers) {
	r.Use(middleware.Cors())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Session(sessions))
	{
		policy := v1.Group("/policy")
		{
			policy.POST("/scan", ctrls.Policy.Scan)
			policy.GET("/result", ctrls.Policy.Result)
			policy.GET("/result/download", ctrls.Policy.Download)
		}

		finance := v1.Group("/finance")
		{
			finance.POST("/analyze", ctrls.Finance.Analyze)
			finance.GET("/result", ctrls.Finance.Result)
			finance.GET("/result/download", ctrls.Finance.Download)
		}

		depreciation := v1.Group("/depreciation")
		{
			depreciation.POST("/predict", ctrls.Depreciation.Predict)
			depreciation.GET("/result", ctrls.Depreciation.Result)
			depreciation.GET("/result/download", ctrls.Depreciation.Download)
		}

		comparison := v1.Group("/comparison")
		{
			comparison.POST("/models", ctrls.Comparison.AddModel)
			comparison.GET("/models", ctrls.Comparison.ListModels)
			comparison.DELETE("/models/:index", ctrls.Comparison.RemoveModel)
			comparison.POST("/compare", ctrls.Comparison.Compare)
			comparison.GET("/result", ctrls.Comparison.Result)
			comparison.GET("/result/download", ctrls.Comparison.Download)
		}

		browser := v1.Group("/browser")
		{
			browser.POST("/search", ctrls.Browser.Search)
			browser.GET("/featured", ctrls.Browser.Featured)
			browser.GET("/result", ctrls.Browser.Result)
			browser.GET("/result/download", ctrls.Browser.Download)
		}

		fineprint := v1.Group("/fineprint")
		{
			fineprint.POST("/analyze", ctrls.FinePrint.Analyze)
			fineprint.GET("/result", ctrls.FinePrint.Result)
			fineprint.GET("/result/download", ctrls.FinePrint.Download)
		}

		insights := v1.Group("/insights")
		{
			insights.POST("/generate", ctrls.Insights.Generate)
			insights.GET("/result", ctrls.Insights.Result)
			insights.GET("/result/download", ctrls.Insights.Download)
		}

		assistant := v1.Group("/assistant")
		{
			assistant.POST("/chat", ctrls.Assistant.Chat)
			assistant.POST("/preferences", ctrls.Assistant.UpdatePreferences)
			assistant.GET("/history", ctrls.Assistant.History)
			assistant.POST("/clear", ctrls.Assistant.Clear)
		}
	}
}
