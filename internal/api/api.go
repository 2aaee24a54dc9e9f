package api

import (
	"net/http"

	authHandler "insight-mailer/internal/auth/handler"
	draftsHandler "insight-mailer/internal/drafts/handler"
	providersHandler "insight-mailer/internal/providers/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	authHandler      authHandler.Handler
	draftsHandler    draftsHandler.Handler
	providersHandler providersHandler.Handler
}

func New(router *gin.RouterGroup, authHandler authHandler.Handler, draftsHandler draftsHandler.Handler, providersHandler providersHandler.Handler) API {
	return API{
		router:           router,
		authHandler:      authHandler,
		draftsHandler:    draftsHandler,
		providersHandler: providersHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	adminGroup := a.router.Group("/api/admin", a.authHandler.HandleJWTMiddleware)
	{
		adminGroup.GET("/drafts", a.draftsHandler.HandleListDrafts)
		adminGroup.GET("/drafts/:id", a.draftsHandler.HandleGetDraft)
		adminGroup.POST("/drafts/:id/approve", a.draftsHandler.HandleApprove)
		adminGroup.POST("/drafts/:id/reject", a.draftsHandler.HandleReject)
		adminGroup.POST("/drafts/:id/send", a.draftsHandler.HandleSend)
		adminGroup.POST("/drafts/:id/requeue", a.draftsHandler.HandleRequeue)

		adminGroup.POST("/insights/generate", a.draftsHandler.HandleGenerate)
		adminGroup.POST("/insights/custom", a.draftsHandler.HandleCustom)
		adminGroup.POST("/dispatch", a.draftsHandler.HandleDispatch)
	}
	providerGroup := adminGroup.Group("/providers")
	{
		providerGroup.GET("", a.providersHandler.HandleListProviders)
		providerGroup.POST("", a.providersHandler.HandleCreateProvider)
		providerGroup.PUT("/:id", a.providersHandler.HandleUpdateProvider)
		providerGroup.DELETE("/:id", a.providersHandler.HandleDeleteProvider)
		providerGroup.POST("/:id/activate", a.providersHandler.HandleActivateProvider)
		providerGroup.POST("/:id/test", a.providersHandler.HandleTestProvider)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
