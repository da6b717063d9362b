package router

import (
	"net/http"
	"time"

	"bellavista/internal/contact"
	"bellavista/internal/menu"
	"bellavista/internal/middleware"
	"bellavista/internal/site"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Menu        *menu.Service
	Contacts    *contact.Service
	Logger      *zap.Logger
	CORSOrigins []string
}

func NewRouter(deps Deps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(log), middleware.Recovery(log))

	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.SetHTMLTemplate(site.Templates())

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ───────────────────────── API ─────────────────────────
	menuHandler := menu.NewHandler(deps.Menu)
	contactHandler := contact.NewHandler(deps.Contacts)

	api := r.Group("/api")
	{
		api.GET("/menu", menuHandler.List)
		api.GET("/menu/categories/:category", menuHandler.ListByCategory)
		api.POST("/contact", contactHandler.Create)
	}

	// ───────────────────────── SITE ─────────────────────────
	siteHandler := site.NewHandler(deps.Menu, deps.Contacts, log)
	r.GET("/", siteHandler.Home)
	r.POST("/contact", siteHandler.SubmitContact)

	return r
}
