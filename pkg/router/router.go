package router

import (
	"time"

	config "medicore-ai/configs"
	"medicore-ai/pkg/handlers"
	"medicore-ai/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Options はルーター構築に必要な依存関係です。
// Random と Clock が nil の場合は本番用の実装を使います。
type Options struct {
	Config  *config.Config
	Catalog *config.Catalog
	Logger  zerolog.Logger
	Random  services.RandomSource
	Clock   services.Clock
}

// Services はルーターが使用するサービス群です。
type Services struct {
	Disease     *services.DiseasePredictionService
	Inventory   *services.InventoryForecastService
	Restock     *services.RestockService
	Interaction *services.InteractionService
	Monitoring  *services.MonitoringService
}

// NewServices はカタログからサービス群を初期化します。
func NewServices(opts Options) *Services {
	rng := opts.Random
	if rng == nil {
		rng = services.NewFakerSource(opts.Config.RandomSeed)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	cat := opts.Catalog
	return &Services{
		Disease:     services.NewDiseasePredictionService(cat.Diseases, services.SeasonalCurves(cat.SeasonalCurves), rng, clock),
		Inventory:   services.NewInventoryForecastService(cat.Medicines, rng, clock),
		Restock:     services.NewRestockService(cat.RestockRecommendations, clock),
		Interaction: services.NewInteractionService(cat.DrugInteractions, clock),
		Monitoring:  services.NewMonitoringService(opts.Logger, opts.Config.MonitoringMaxEntries, clock),
	}
}

// New はGinエンジンを構築し、全ルートを登録します。
func New(opts Options) *gin.Engine {
	cfg := opts.Config
	svc := NewServices(opts)

	// ハンドラーの初期化
	limits := handlers.ForecastLimits{
		DefaultRegion: cfg.DefaultRegion,
		DefaultDays:   cfg.DefaultForecastDays,
		MaxDays:       cfg.MaxForecastDays,
	}
	predictionHandler := handlers.NewPredictionHandler(svc.Disease, svc.Inventory, svc.Restock, limits)
	interactionHandler := handlers.NewInteractionHandler(svc.Interaction)
	monitoringHandler := handlers.NewMonitoringHandler(svc.Monitoring, cfg.ServiceVersion, opts.Clock)

	r := gin.New()

	// ミドルウェアの登録
	r.Use(svc.Monitoring.LoggingMiddleware())
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/", monitoringHandler.Root)

	// 予測API
	predict := r.Group("/predict")
	{
		predict.POST("/disease", predictionHandler.PredictDisease)
		predict.POST("/inventory", predictionHandler.PredictInventory)
		predict.GET("/inventory/export", predictionHandler.ExportInventory)
		predict.GET("/restock", predictionHandler.GetRestockRecommendations)
	}

	// 薬物相互作用API
	check := r.Group("/check")
	{
		check.POST("/interactions", interactionHandler.CheckInteractions)
	}

	// ヘルスチェック・モニタリング
	health := r.Group("/health")
	{
		health.GET("", monitoringHandler.HealthCheck)
		health.GET("/metrics", monitoringHandler.GetMetrics)
	}

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	c.AllowHeaders = []string{"*"}
	c.ExposeHeaders = []string{services.RequestIDHeader, "Content-Disposition"}
	if cfg.AllowAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSOrigins
		c.AllowCredentials = true
	}
	return c
}
