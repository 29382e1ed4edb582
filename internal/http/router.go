package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BlissMahlathi/heavenly/internal/config"
	"github.com/BlissMahlathi/heavenly/internal/http/cartcookie"
	"github.com/BlissMahlathi/heavenly/internal/http/handlers"
	adminhandlers "github.com/BlissMahlathi/heavenly/internal/http/handlers/admin"
	"github.com/BlissMahlathi/heavenly/internal/http/middleware"
	"github.com/BlissMahlathi/heavenly/internal/metrics"
	"github.com/BlissMahlathi/heavenly/internal/modules/cart"
	"github.com/BlissMahlathi/heavenly/internal/modules/events"
	"github.com/BlissMahlathi/heavenly/internal/modules/notify"
	"github.com/BlissMahlathi/heavenly/internal/modules/orders"
	"github.com/BlissMahlathi/heavenly/internal/storage"
)

// Deps carries everything the router wires into handlers. cmd/web builds
// one from config and hands it over.
type Deps struct {
	Logger  *slog.Logger
	DB      *gorm.DB
	Cfg     config.Config
	Store   storage.Storage
	Metrics *metrics.ServerMetrics
}

func NewRouter(d Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Metrics(d.Metrics))
	r.Use(middleware.ErrorHandler(d.Logger))

	sessCfg := middleware.SessionCfg{
		DB:         d.DB,
		CookieName: d.Cfg.SessionCookieName,
		Secure:     d.Cfg.CookieSecure,
		TTL:        d.Cfg.SessionTTL,
	}
	r.Use(middleware.SessionMiddleware(sessCfg))

	ck := cartcookie.New([]byte(d.Cfg.CookieSecret), d.Cfg.CartCookieName, d.Cfg.CookieSecure, d.Cfg.CartTTL)
	cartStore := cart.NewStore(d.Cfg.CartTTL)
	hub := events.NewHub()

	catalogH := handlers.NewCatalogHandler()
	cartH := handlers.NewCartHandler(cartStore, ck)
	checkoutH := &handlers.CheckoutHandler{
		Store:        cartStore,
		CK:           ck,
		Orders:       orders.NewService(d.DB),
		Notify:       notify.NewService(d.DB, d.Logger),
		Hub:          hub,
		Metrics:      d.Metrics,
		ShopWhatsApp: d.Cfg.ShopWhatsApp,
		ManageURL:    d.Cfg.AdminBaseURL,
	}
	authH := handlers.NewAuthHandlers(d.DB, sessCfg)

	adminOrdersH := adminhandlers.NewOrdersHandler(d.DB, hub, d.Metrics)
	adminNotifH := adminhandlers.NewNotificationsHandler(d.DB)
	adminAnalyticsH := adminhandlers.NewAnalyticsHandler(d.DB, d.Store)
	adminStreamH := adminhandlers.NewStreamHandler(hub)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/catalog", catalogH.List)
		api.GET("/catalog/deals", catalogH.Deals)

		api.GET("/cart", cartH.Get)
		api.GET("/cart/totals", cartH.Totals)
		api.POST("/cart/items", cartH.AddItem)
		api.POST("/cart/items/update", cartH.UpdateItem)
		api.POST("/cart/items/remove", cartH.RemoveItem)
		api.POST("/cart/deals", cartH.AddDeal)

		api.POST("/checkout/preview", checkoutH.Preview)
		api.POST("/orders", checkoutH.Submit)

		api.POST("/auth/login", authH.Login)
		api.POST("/auth/logout", authH.Logout)
		api.GET("/auth/me", authH.Me)

		admin := api.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("/orders", adminOrdersH.List)
			admin.GET("/orders/stream", adminStreamH.Stream)
			admin.GET("/orders/:id", adminOrdersH.Detail)
			admin.POST("/orders/:id/accept", adminOrdersH.Accept)
			admin.POST("/orders/:id/cancel", adminOrdersH.Cancel)
			admin.GET("/orders/:id/whatsapp", adminOrdersH.WhatsApp)

			admin.GET("/notifications", adminNotifH.List)
			admin.POST("/notifications/:id/read", adminNotifH.MarkRead)
			admin.POST("/notifications/read-all", adminNotifH.MarkAllRead)

			admin.GET("/analytics", adminAnalyticsH.Summary)
			admin.POST("/reports/monthly", adminAnalyticsH.MonthlyReport)
		}
	}

	return r
}
