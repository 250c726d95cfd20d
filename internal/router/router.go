package router

import (
	"time"

	"gymplus/internal/config"
	"gymplus/internal/handler"
	"gymplus/internal/infra"
	"gymplus/internal/middleware"
	"gymplus/internal/repository"
	"gymplus/internal/service"
	"gymplus/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	gimnasioRepo := repository.NewGimnasioRepository(db)
	sucursalRepo := repository.NewSucursalRepository(db)
	tipoMembresiaRepo := repository.NewTipoMembresiaRepository(db)
	tipoPagoRepo := repository.NewTipoPagoRepository(db)
	membresiaRepo := repository.NewMembresiaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	checkinRepo := repository.NewCheckInRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	gimnasioSvc := service.NewGimnasioService(gimnasioRepo, sucursalRepo)
	tipoSvc := service.NewTipoService(tipoMembresiaRepo, tipoPagoRepo)
	productoSvc := service.NewProductoService(productoRepo)
	membresiaSvc := service.NewMembresiaService(membresiaRepo, tipoMembresiaRepo, tipoPagoRepo, usuarioRepo, dispatcher, nil)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, tipoPagoRepo, usuarioRepo, dispatcher)
	checkinSvc := service.NewCheckInService(usuarioRepo, membresiaRepo, sucursalRepo, checkinRepo, nil)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	gimnasiosH := handler.NewGimnasiosHandler(gimnasioSvc)
	tiposH := handler.NewTiposHandler(tipoSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	membresiasH := handler.NewMembresiasHandler(membresiaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	checkinH := handler.NewCheckInHandler(checkinSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, smtpCB))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
		auth.POST("/registro", authH.Registro)
	}

	// Protected routes — capability-based, not role-based: routes declare the
	// capability they need and the token's roles resolve to a capability set.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		gimnasios := v1.Group("/gimnasios", middleware.RequireCapability(middleware.CapManageGimnasios))
		{
			gimnasios.POST("", gimnasiosH.Crear)
			gimnasios.GET("", gimnasiosH.Listar)
			gimnasios.GET("/:id", gimnasiosH.Obtener)
			gimnasios.PUT("/:id", gimnasiosH.Actualizar)
			gimnasios.DELETE("/:id", gimnasiosH.Desactivar)
		}

		// Branch listing is open to any authenticated user: the console needs
		// it to populate the branch selector before check-ins.
		v1.GET("/sucursales", gimnasiosH.ListarSucursales)
		sucursales := v1.Group("/sucursales", middleware.RequireCapability(middleware.CapManageGimnasios))
		{
			sucursales.POST("", gimnasiosH.CrearSucursal)
			sucursales.PUT("/:id", gimnasiosH.ActualizarSucursal)
			sucursales.DELETE("/:id", gimnasiosH.DesactivarSucursal)
		}

		usuarios := v1.Group("/usuarios", middleware.RequireCapability(middleware.CapManageUsuarios))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:id", usuariosH.Obtener)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}

		// Catalogs: reads open to all authenticated users, writes guarded.
		v1.GET("/tipos-membresia", tiposH.ListarTiposMembresia)
		v1.GET("/tipos-pago", tiposH.ListarTiposPago)
		tipos := v1.Group("", middleware.RequireCapability(middleware.CapManageMembresias))
		{
			tipos.POST("/tipos-membresia", tiposH.CrearTipoMembresia)
			tipos.PUT("/tipos-membresia/:id", tiposH.ActualizarTipoMembresia)
			tipos.DELETE("/tipos-membresia/:id", tiposH.DesactivarTipoMembresia)
			tipos.POST("/tipos-pago", tiposH.CrearTipoPago)
		}

		membresias := v1.Group("/membresias", middleware.RequireCapability(middleware.CapManageMembresias))
		{
			membresias.POST("", membresiasH.Crear)
			membresias.GET("", membresiasH.Listar)
			membresias.GET("/vencimientos", membresiasH.Vencimientos)
			membresias.GET("/:id", membresiasH.Obtener)
			membresias.POST("/:id/abonos", membresiasH.Abonar)
			membresias.PATCH("/:id/cancelar", membresiasH.Cancelar)
			membresias.DELETE("/:id", membresiasH.Eliminar)
		}

		v1.GET("/productos", productosH.Listar)
		v1.GET("/productos/:id", productosH.Obtener)
		v1.GET("/productos/codigo/:codigo", productosH.ObtenerPorCodigo)
		productos := v1.Group("/productos", middleware.RequireCapability(middleware.CapManageProductos))
		{
			productos.POST("", productosH.Crear)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Desactivar)
		}

		ventas := v1.Group("/ventas", middleware.RequireCapability(middleware.CapRegistrarVentas))
		{
			ventas.POST("", ventasH.Registrar)
			ventas.GET("", ventasH.Listar)
			ventas.GET("/:id", ventasH.Obtener)
			ventas.DELETE("/:id", ventasH.Anular)
		}

		checkins := v1.Group("/checkins", middleware.RequireCapability(middleware.CapRegistrarCheckin))
		{
			checkins.POST("/verificar", checkinH.Verificar)
			checkins.POST("", checkinH.Registrar)
			checkins.GET("", checkinH.Listar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
