package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"filesmanager/internal/service"
)

// Deps are the collaborators the routes need.
type Deps struct {
	DB      *sql.DB
	Redis   redis.Cmdable
	Manager service.FilesManager
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB, d.Redis))
	app.Get("/healthz", LivenessProbe())

	app.Get("/connect", Connect(d.Manager))
	app.Get("/disconnect", Disconnect(d.Manager))
	app.Get("/users/me", Me(d.Manager))

	files := app.Group("/files")
	files.Post("/", UploadFile(d.Manager))
	files.Get("/", IndexFiles(d.Manager))
	files.Get("/:id", ShowFile(d.Manager))
	files.Put("/:id/publish", PublishFile(d.Manager))
	files.Put("/:id/unpublish", UnpublishFile(d.Manager))
	files.Get("/:id/data", FileData(d.Manager))
}
