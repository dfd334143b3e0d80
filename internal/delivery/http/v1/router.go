package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-demandflo-backend/config"
	"go-demandflo-backend/internal/delivery/http/middleware"
	"go-demandflo-backend/internal/domain"
	"go-demandflo-backend/pkg/validation"
)

type RouterDeps struct {
	BlogUC    domain.BlogUsecase
	ContactUC domain.ContactUsecase
	RoiUC     domain.RoiUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	// Custom validators must be on gin's binding engine before any request
	// is bound.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Every mutation and admin read sits behind the API key; public reads
	// and the contact form do not.
	protected := api.Group("")
	protected.Use(middleware.AdminAPIKey(deps.Config.AdminAPIKey))

	NewBlogHandler(api, protected, deps.BlogUC)
	NewContactHandler(api, protected, deps.ContactUC)
	NewRoiHandler(api, deps.RoiUC)

	return r
}
