package app

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ledgerline.io/audittrail/internal/api/handlers"
	"ledgerline.io/audittrail/internal/api/middleware"
	"ledgerline.io/audittrail/internal/pkg/logger"
)

func newRouter(server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())
	router.Use(cors.Default())

	router.GET("/healthz", server.Health)

	// Runtime log level: GET returns the current level, PUT changes it.
	router.Any("/log/level", gin.WrapH(logger.HTTPHandler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/audit-records", server.ListRecords)
		v1.GET("/audit-records/transitions", server.ListTransitions)
		v1.GET("/audit-records/:id", server.GetRecord)
		v1.POST("/audit-cleanup", server.RunCleanup)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": "no such route"})
	})
	return router
}
