package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	cartstore "github.com/BruksfildServices01/barber-shop/internal/cart"
	"github.com/BruksfildServices01/barber-shop/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-shop/internal/db"
	"github.com/BruksfildServices01/barber-shop/internal/imagestore"
	"github.com/BruksfildServices01/barber-shop/internal/invoice"
	"github.com/BruksfildServices01/barber-shop/internal/payment"
	"github.com/BruksfildServices01/barber-shop/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb, err := cartstore.NewClient(cfg)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	var images imagestore.Store
	if cfg.S3Enabled() {
		images = imagestore.NewS3Store(cfg)
	} else {
		disk, err := imagestore.NewDiskStore(cfg.UploadDir)
		if err != nil {
			log.Fatalf("failed to prepare upload dir: %v", err)
		}
		images = disk
	}

	invoices, err := invoice.NewRenderer(cfg.InvoiceDir)
	if err != nil {
		log.Fatalf("failed to prepare invoice dir: %v", err)
	}

	var payments payment.Processor = payment.NewOffline()
	if cfg.MPAccessToken != "" {
		mp, err := payment.NewMercadoPago(cfg.MPAccessToken)
		if err != nil {
			log.Fatalf("failed to configure mercado pago: %v", err)
		}
		payments = mp
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, routes.Deps{
		Cart:     cartstore.NewStore(rdb, cfg.CartTTL),
		Images:   images,
		Invoices: invoices,
		Payments: payments,
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
