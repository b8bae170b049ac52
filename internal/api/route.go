package api

import (
	"Kolhub/internal/api/middleware"
	"Kolhub/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	kolGroup := r.Group("/kols")
	{
		kolGroup.POST("", group.KOLHandler.CreateKOL)
		kolGroup.POST("/batch", group.KOLHandler.CreateKOLBatch)
		kolGroup.GET("", group.KOLHandler.ListKOLs)
		kolGroup.GET("/:kol_id", group.KOLHandler.GetKOL)
		kolGroup.PUT("/:kol_id", group.KOLHandler.UpdateKOL)
		kolGroup.DELETE("/:kol_id", group.KOLHandler.DeleteKOL)
	}

	return r
}
