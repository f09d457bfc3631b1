package router

import (
	"github.com/FranCa26/InvenLink-24-7/internal/clock"
	"github.com/FranCa26/InvenLink-24-7/internal/config"
	"github.com/FranCa26/InvenLink-24-7/internal/handler"
	"github.com/FranCa26/InvenLink-24-7/internal/infra"
	"github.com/FranCa26/InvenLink-24-7/internal/middleware"
	"github.com/FranCa26/InvenLink-24-7/internal/repository"
	"github.com/FranCa26/InvenLink-24-7/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil, which disables the summary cache.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, clk *clock.Clock) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	metrics := middleware.NewMetrics()
	if sqlDB, err := db.DB(); err == nil {
		metrics.RegisterDB(sqlDB)
	} else {
		log.Warn().Err(err).Msg("db pool metrics unavailable")
	}

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.APIRateLimit(cfg.RateLimitPerMinute))

	// ── Infrastructure ───────────────────────────────────────────────────────
	resumenCache := infra.NewResumenCache(rdb, cfg.ResumenCacheTTL())

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	entradaRepo := repository.NewEntradaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg.JWTSecret, cfg.TokenTTL())
	productoSvc := service.NewProductoService(productoRepo)
	entradaSvc := service.NewEntradaService(entradaRepo, productoRepo, clk, resumenCache)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, clk, resumenCache)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	entradasH := handler.NewEntradasHandler(entradaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, resumenCache))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimit(cfg.LoginRateLimitPerMinute), authH.Login)
		auth.POST("/register", jwtMW, middleware.RequireAdmin(), authH.Registrar)
		auth.GET("/verificar", jwtMW, authH.Verificar)
	}

	productos := api.Group("/productos")
	{
		productos.GET("", productosH.Listar)
		productos.GET("/test", productosH.Test)
		productos.GET("/filter/name-category", productosH.Filtrar)
		productos.GET("/:code", productosH.Obtener)
		productos.PUT("/:code/stock", productosH.ActualizarStock)
		productos.POST("", productosH.Crear)
		productos.PUT("/:code", jwtMW, productosH.Actualizar)
	}

	entradas := api.Group("/entradas")
	{
		entradas.GET("", jwtMW, entradasH.Listar)
		entradas.GET("/resumen/dashboard", entradasH.Resumen)
		entradas.GET("/:id", entradasH.Obtener)
		entradas.GET("/:id/comprobante", entradasH.Comprobante)
		entradas.POST("", entradasH.Crear)
	}

	ventas := api.Group("/ventas")
	{
		ventas.GET("", ventasH.Listar)
		ventas.GET("/resumen", ventasH.Resumen)
		ventas.GET("/producto/:code", ventasH.ListarPorProducto)
		ventas.GET("/:id", ventasH.Obtener)
		ventas.GET("/:id/comprobante", ventasH.Comprobante)
		ventas.POST("", ventasH.Crear)
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Unknown /api paths get JSON 404; everything else falls back to the SPA
	r.NoRoute(handler.Frontend(cfg.FrontendDist))

	return r
}
