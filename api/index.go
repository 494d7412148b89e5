package handler

import (
	"net/http"
	"sync"

	config "medicore-ai/configs"
	"medicore-ai/pkg/logger"
	"medicore-ai/pkg/router"

	"github.com/gin-gonic/gin"
)

var (
	app  *gin.Engine
	once sync.Once
)

// setupApp はGinアプリケーションを初期化します。
// サーバーレス環境では、リクエストごとに初期化が走らないようsync.Onceで一度だけ実行します。
// .envファイルはプラットフォームの環境変数設定から読み込まれるため、ここではgodotenvを呼び出しません。
func setupApp() *gin.Engine {
	once.Do(func() {
		cfg, err := config.LoadConfig()
		if err != nil {
			app = failingApp(err)
			return
		}
		log := logger.New(cfg.Environment, cfg.LogLevel)

		catalog, err := config.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			log.Error().Err(err).Msg("🔴 [setupApp] failed to load catalog")
			app = failingApp(err)
			return
		}

		app = router.New(router.Options{
			Config:  cfg,
			Catalog: catalog,
			Logger:  log,
		})
		log.Info().Msg("🟢 [setupApp] Gin application initialized")
	})
	return app
}

// failingApp 初期化に失敗した場合、全リクエストに503を返す
func failingApp(cause error) *gin.Engine {
	r := gin.New()
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service misconfigured: " + cause.Error()})
	})
	return r
}

// Handler はサーバーレス環境からのすべてのリクエストを処理するエントリーポイントです。
func Handler(w http.ResponseWriter, r *http.Request) {
	setupApp().ServeHTTP(w, r)
}
