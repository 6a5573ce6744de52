package stub

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// Options controla o setup do servidor de desenvolvimento.
type Options struct {
	CertFile string
	KeyFile  string
}

// NewServer monta o engine gin com o estado em memória e todas as rotas do
// contrato REST.
func NewServer(store *Store, log *zap.Logger, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	if log == nil {
		log = zap.NewNop()
	}

	engine.Use(requestIDMiddleware("X-Request-ID"))
	engine.Use(loggerMiddleware(log))
	setupCors(engine)
	if opts.CertFile != "" && opts.KeyFile != "" {
		setupSSL(engine, log)
	}
	engine.Use(gin.Recovery())

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(engine, store)

	return engine
}

func setupCors(engine *gin.Engine) {
	// o painel roda em outra origem durante o desenvolvimento
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))
}

// setupSSL redireciona para https quando o stub sobe com certificado
func setupSSL(engine *gin.Engine, log *zap.Logger) {
	engine.Use(func(c *gin.Context) {
		secureMiddleware := secure.New(secure.Options{
			SSLRedirect: true,
			SSLHost:     c.Request.Host,
		})
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			log.Warn("falha no redirecionamento https", zap.Error(err))
			return
		}
		c.Next()
	})
}

// requestIDMiddleware propaga ou gera o X-Request-ID
func requestIDMiddleware(headerName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerName)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(headerName, requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

// loggerMiddleware registra cada requisição com método, rota, status e
// duração.
func loggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.GetString("request_id")),
		}
		if c.Writer.Status() >= 400 {
			log.Warn("http request", fields...)
			return
		}
		log.Info("http request", fields...)
	}
}
