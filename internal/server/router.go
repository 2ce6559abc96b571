// Package server assembles the gin engine from the application parts.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/snnyvrz/shelfshare-catalog/internal/docs"
	"github.com/snnyvrz/shelfshare-catalog/internal/handler"
	"github.com/snnyvrz/shelfshare-catalog/internal/metrics"
	"github.com/snnyvrz/shelfshare-catalog/internal/middleware"
)

const APIBasePath = "/api"

type Deps struct {
	Books     handler.BookService
	DB        handler.Pinger
	Metrics   *metrics.Metrics
	Log       zerolog.Logger
	StartTime time.Time
	Version   string
}

func NewRouter(d Deps) *gin.Engine {
	e := gin.New()

	_ = e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(d.Log),
		middleware.Metrics(d.Metrics),
	)

	handler.NewHealthHandler(d.DB, d.StartTime, d.Version).RegisterRoutes(e)

	api := e.Group(APIBasePath)
	{
		bookHandler := handler.NewBookHandler(d.Books, handler.WithMetrics(d.Metrics))
		bookHandler.RegisterRoutes(api)
	}

	docs.SwaggerInfo.BasePath = APIBasePath
	docs.SwaggerInfo.Version = d.Version

	e.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}
