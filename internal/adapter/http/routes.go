package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// NewApp builds the fiber application with every builder route registered.
func NewApp(h *Handler, log *zap.Logger) *fiber.App {
	if log == nil {
		log = zap.NewNop()
	}
	app := fiber.New(fiber.Config{
		AppName:               "resume-builder",
		Immutable:             true,
		DisableStartupMessage: true,
		BodyLimit:             8 << 20,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestLogger(log))

	h.Register(app)
	return app
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", h.Health)
	app.Get("/themes", h.ListThemes)

	s := app.Group("/sessions")
	s.Post("/", h.CreateSession)
	s.Get("/:id", h.GetSession)
	s.Delete("/:id", h.DeleteSession)

	s.Put("/:id/record", h.ImportRecord)
	s.Patch("/:id/fields", h.SetFields)
	s.Put("/:id/photo", h.UploadPhoto)
	s.Delete("/:id/photo", h.ClearPhoto)
	s.Put("/:id/template", h.SetTemplate)
	s.Put("/:id/theme", h.SetTheme)

	s.Get("/:id/preview", h.Preview)
	s.Get("/:id/document", h.Document)
	s.Get("/:id/export", h.Export)

	s.Post("/:id/generate/:op", h.Generate)
	s.Post("/:id/generate/:op/:entryID", h.Generate)

	s.Post("/:id/:section", h.AddEntry)
	s.Patch("/:id/:section/:entryID", h.UpdateEntry)
	s.Delete("/:id/:section/:entryID", h.RemoveEntry)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// let the error handler write the status before it is logged
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		log.Debug("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("elapsed", time.Since(start)),
		)
		return nil
	}
}
