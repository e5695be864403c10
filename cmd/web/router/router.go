package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog-list/cmd/web/bloglist"
	"blog-list/cmd/web/clients/contentclient"
	"blog-list/cmd/web/handlers"
	"blog-list/cmd/web/httpclient"
	"blog-list/cmd/web/imageurl"
	"blog-list/cmd/web/middleware"
	"blog-list/cmd/web/postcard"
	"blog-list/cmd/web/services"
	"blog-list/cmd/web/viewstore"
	"blog-list/cmd/web/views"
	"blog-list/config"
	_ "blog-list/docs"
)

// New wires the content client, view store and view service from cfg.
func New(cfg config.AppConfig) *gin.Engine {
	content := contentclient.New(cfg.Content.PostsURL, httpclient.Config{Timeout: cfg.Content.Timeout})
	store := viewstore.New(cfg.Views.MaxEntries, func() *bloglist.List {
		return bloglist.New(content)
	})
	cards := postcard.Builder{
		Resolve:  imageurl.NewResolver(cfg.Assets.BaseURL),
		Location: cfg.Location(),
	}
	return NewWithService(services.NewViewService(store, cards), cfg.CORS.AllowedOrigins)
}

func NewWithService(svc *services.ViewService, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	r.SetHTMLTemplate(views.Templates())
	r.StaticFS("/static", views.Static())

	// Health check
	r.GET("/health", handlers.HealthHandler(svc))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// HTML (htmx)
	r.GET("/", handlers.BlogPageHandler(svc))
	blog := r.Group("/blog")
	{
		blog.GET("/list", handlers.ListFragmentHandler(svc))
		blog.POST("/search", handlers.SearchHandler(svc))
		blog.POST("/search/clear", handlers.ClearSearchHandler(svc))
		blog.POST("/page", handlers.PageHandler(svc))
	}

	// v1 routes
	api := r.Group("/api/v1")
	api.Use(middleware.CORS(allowedOrigins))
	{
		api.POST("/views", handlers.CreateViewHandler(svc))
		api.GET("/views/:id", handlers.GetViewHandler(svc))
		api.PUT("/views/:id/query", handlers.UpdateQueryHandler(svc))
		api.DELETE("/views/:id/query", handlers.ClearQueryHandler(svc))
		api.PUT("/views/:id/page", handlers.ChangePageHandler(svc))
		api.DELETE("/views/:id", handlers.CloseViewHandler(svc))
		// Preflight requests need a route, otherwise group middleware never runs.
		api.OPTIONS("/*path", func(c *gin.Context) {})
	}

	return r
}
