package main

import (
	"log"
	"os"

	"offboardadmin/internal/config"
	"offboardadmin/internal/stub"
	"offboardadmin/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Fatalf("Error loading .env file: %v", err)
		}
	}

	cfg, err := config.NewApp()
	if err != nil {
		log.Fatalf("Error creating config: %v", err)
	}
	defer cfg.CloseAll()

	certFile, keyFile := utils.GetCertFiles(cfg.Settings.StubCertFile, cfg.Settings.StubKeyFile)

	store := stub.NewStore()
	engine := stub.NewServer(store, cfg.Logger, stub.Options{
		CertFile: certFile,
		KeyFile:  keyFile,
	})

	port := utils.GetPort(cfg.Settings.StubPort)
	cfg.Logger.Info("starting stub server", zap.String("port", port))

	startServer(engine, port, certFile, keyFile)
}

func startServer(engine *gin.Engine, port, certFile, keyFile string) {
	if certFile != "" && keyFile != "" {
		log.Println("Starting server with TLS...")
		if err := engine.RunTLS(":"+port, certFile, keyFile); err != nil {
			log.Fatalf("Error starting TLS server: %v", err)
		}
		return
	}
	log.Println("Starting server...")
	if err := engine.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
