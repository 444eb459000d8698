package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"forkcast/internal/campaign"
	"forkcast/internal/db"
	"forkcast/internal/forecast"
	"forkcast/internal/inventory"
	"forkcast/internal/orders"
	"forkcast/internal/recipes"
	"forkcast/internal/reconcile"
	"forkcast/internal/restaurants"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	seed := flag.Bool("seed", false, "load the demo dataset before serving")
	flag.Parse()

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	recipesPath := os.Getenv("RECIPES_PATH")
	if recipesPath == "" {
		recipesPath = "data/recipes.json"
	}

	// ───────────────────────── RECIPES ─────────────────────────
	// A missing catalog is not fatal: inventory-forecast requests
	// report it, everything else keeps serving.
	catalog, err := recipes.Load(recipesPath)
	if err != nil {
		log.Println("⚠️  Recipe catalog unavailable:", err)
	} else {
		log.Printf("Loaded %d recipes from %s", catalog.Len(), recipesPath)
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	if *seed {
		seedPath := os.Getenv("SEED_PATH")
		if seedPath == "" {
			seedPath = "data/seed_data.json"
		}
		if err := db.Seed(context.Background(), pgDB, seedPath); err != nil {
			log.Fatal("❌ Seeding failed:", err)
		}
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── REPOS ─────────────────────────
	restaurantRepo := restaurants.NewPostgresRepository(pgDB)
	inventoryRepo := inventory.NewPostgresRepository(pgDB)
	orderRepo := orders.NewPostgresRepository(pgDB)
	campaignRepo := campaign.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	inventoryService := inventory.NewService(inventoryRepo, restaurantRepo)
	orderService := orders.NewService(orderRepo, inventoryRepo, restaurantRepo)

	oracle := forecast.NewRegressionOracle()

	promoWriter := campaign.NewWebhookWriter(os.Getenv("PROMO_WEBHOOK_URL"))
	campaignService := campaign.NewService(campaignRepo, restaurantRepo, promoWriter)

	reconcileService := reconcile.NewService(
		restaurantRepo,
		inventoryService,
		oracle,
		campaignRepo,
		catalog,
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	restaurantHandler := restaurants.NewHandler(restaurantRepo)
	inventoryHandler := inventory.NewHandler(inventoryService)
	orderHandler := orders.NewHandler(orderService)
	forecastHandler := forecast.NewHandler(oracle)
	reconcileHandler := reconcile.NewHandler(reconcileService)
	campaignHandler := campaign.NewHandler(campaignService)

	// ───────────────────────── ROUTES ─────────────────────────
	api := r.Group("/api/v1")
	{
		api.GET("/restaurant", restaurantHandler.ListRestaurants)

		api.GET("/inventory/restaurant/:restaurant_id", inventoryHandler.ListInventory)

		api.GET("/order/restaurant/:restaurant_id", orderHandler.ListOrders)
		api.POST("/order/restaurant/:restaurant_id", orderHandler.CreateOrder)

		api.GET("/forecast", forecastHandler.GetForecast)

		api.GET("/inventory-forecast/restaurant/:restaurant_id", reconcileHandler.GetInventoryForecast)

		api.GET("/promotion/restaurant/:restaurant_id", campaignHandler.GetRestaurantCampaigns)
		api.POST("/campaign/:restaurant_id", campaignHandler.StartCampaign)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Println("🚀 API running at http://localhost:" + port)
	r.Run(":" + port)
}
