package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/yashp387/Food-Ordering-System/internal/cart"
	"github.com/yashp387/Food-Ordering-System/internal/config"
	"github.com/yashp387/Food-Ordering-System/internal/menu"
	"github.com/yashp387/Food-Ordering-System/internal/order"
	"github.com/yashp387/Food-Ordering-System/internal/restaurant"
	"github.com/yashp387/Food-Ordering-System/internal/user"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	bootstrapSchema(db)

	locks := cart.NewUserLocks()

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService, cfg.JWTSecret)

	restaurantService := restaurant.NewService(restaurant.NewPostgresRepository(db))
	restaurantHandler := restaurant.NewHandler(restaurantService)

	menuService := menu.NewService(menu.NewPostgresRepository(db), restaurantService)
	menuHandler := menu.NewHandler(menuService)

	cartRepo := cart.NewPostgresRepository(db)
	cartService := cart.NewService(cartRepo, menuService, locks)
	cartHandler := cart.NewHandler(cartService)

	orderService := order.NewService(order.NewPostgresRepository(db), cartRepo, menuService, restaurantService, locks)
	orderHandler := order.NewHandler(orderService)

	// public routes first, then the JWT middleware, then everything gated
	userHandler.RegisterPublicRoutes(app)
	restaurantHandler.RegisterPublicRoutes(app)
	menuHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	restaurantHandler.RegisterProtectedRoutes(app)
	menuHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("%s %s -> %d (%s)", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(url string) *sql.DB {
	if url == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// bootstrapSchema creates the tables the services expect when they are
// missing. Kept as plain DDL so a fresh database works out of the box.
func bootstrapSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			"userId" SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS restaurants (
			"restaurantId" SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			cuisine TEXT[] NOT NULL DEFAULT '{}',
			description TEXT,
			address TEXT,
			rating NUMERIC NOT NULL DEFAULT 1,
			status TEXT NOT NULL DEFAULT 'open',
			"ownerId" INT NOT NULL,
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			"menuItemId" SERIAL PRIMARY KEY,
			"restaurantId" INT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			price BIGINT NOT NULL DEFAULT 0,
			category TEXT NOT NULL,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			"cartId" SERIAL PRIMARY KEY,
			"userId" INT NOT NULL UNIQUE,
			"restaurantId" INT NOT NULL,
			items JSONB NOT NULL DEFAULT '[]',
			total BIGINT NOT NULL DEFAULT 0,
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			"orderId" SERIAL PRIMARY KEY,
			number TEXT NOT NULL,
			"userId" INT NOT NULL,
			"restaurantId" INT NOT NULL,
			items JSONB NOT NULL DEFAULT '[]',
			total BIGINT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			"paymentStatus" TEXT NOT NULL DEFAULT 'pending',
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
