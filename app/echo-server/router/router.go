package router

import (
	"fsmpAdvisor/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)

	nutrition := api.Group("/nutrition")
	nutrition.GET("/:registration_number", handler.GetNutrition)
	nutrition.PUT("/:registration_number", handler.UpsertNutrition, authRequired, adminOnly)
}

func SetupRecommendRoutes(api *echo.Group, handler *rest.RecommendHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	reco := api.Group("/recommendations")

	reco.POST("", handler.Recommend)
	reco.POST("/debug", handler.DebugRecommend, authRequired, adminOnly)
	reco.GET("/events", handler.RecentEvents, authRequired, adminOnly)
}

func SetupStatsRoutes(api *echo.Group, handler *rest.StatsHandler) {
	stats := api.Group("/stats")

	stats.GET("/approvals", handler.ApprovalTrends)
	stats.GET("/categories", handler.CategoryCounts)
	stats.GET("/populations", handler.PopulationSplit)
	stats.GET("/nutrients", handler.NutrientDistribution)
	stats.GET("/phrases", handler.PhraseFrequency)
}

func SetupImportRoutes(api *echo.Group, handler *rest.ImportHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	imports := api.Group("/imports", authRequired, adminOnly)

	imports.POST("/products", handler.ImportProducts)
	imports.POST("/nutrition", handler.ImportNutrition)
	imports.POST("/labels", handler.ImportLabel)
}
