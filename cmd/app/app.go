package main

import (
	"os"

	"github.com/seller-tech/seller-backend/internal/app"
	config "github.com/seller-tech/seller-backend/internal/cfg"
	"github.com/seller-tech/seller-backend/pkg/logger"
)

//	@title			Seller Backend API
//	@version		1.0
//	@description	Каталог товаров и корзины оптовых покупателей

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.Run(cfg, log); err != nil {
		os.Exit(1)
	}
}
