package main

import (
	"io"
	"log"
	"os"
	"time"

	"guestbook-api/config"
	"guestbook-api/db"
	"guestbook-api/middleware"
	"guestbook-api/models"
	"guestbook-api/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.LoadConfig()
	// Sin secreto de firma no hay servidor: se corta acá, no en la primera
	// verificación de un token
	if cfg.JwtSecret == "" {
		log.Fatal("JWT_ACCESS_SECRET not set")
	}

	store, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Error abriendo la base de datos: ", err)
	}
	defer store.Close()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin,Content-Type,Accept,Content-Length,Accept-Language,Accept-Encoding,Connection,Access-Control-Allow-Origin,Authorization",
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))

	// En producción el log de acceso va a archivo; en desarrollo, a stdout
	accessLog, err := accessLogOutput(cfg.Production, "access.log")
	if err != nil {
		log.Fatal("Error abriendo el archivo de logs: ", err)
	}
	app.Use(logger.New(logger.Config{Output: accessLog}))

	// Techo general para todas las rutas
	app.Use(middleware.NewLimiter(30, time.Minute))

	secret := []byte(cfg.JwtSecret)
	auth := routes.NewAuthHandler(store, secret)
	comments := routes.NewCommentHandler(store)

	protected := middleware.Protected(secret)
	anyRole := middleware.RequireRoles(models.RoleAdmin, models.RoleUsuario)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	app.Get("/status", routes.GetStatus)

	app.Post("/registro", middleware.NewLimiter(5, 15*time.Minute), auth.Register)
	app.Post("/ingreso", middleware.NewLimiter(5, 15*time.Minute), auth.Login)

	app.Get("/comentarios", protected, anyRole, comments.GetComments)
	app.Post("/agregar", middleware.NewLimiter(10, 15*time.Minute), protected, anyRole, comments.AddComment)
	app.Put("/editar/:id", middleware.NewLimiter(10, 15*time.Minute), protected, anyRole, comments.EditComment)

	// Ambas rutas de borrado comparten la misma cuota
	eliminarLimiter := middleware.NewLimiter(10, 15*time.Minute)
	app.Delete("/eliminar/:id", eliminarLimiter, protected, anyRole, comments.DeleteComment)
	app.Delete("/eliminar", eliminarLimiter, protected, adminOnly, comments.DeleteAll)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// accessLogOutput decide el destino del log de acceso. El archivo queda
// abierto durante toda la vida del proceso.
func accessLogOutput(production bool, path string) (io.Writer, error) {
	if !production {
		return os.Stdout, nil
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}
