package controller

import (
	"time"

	"ai-docchat-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

const serviceVersion = "1.0.0"

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Check(ctx *fiber.Ctx) error
}

type healthController struct {
	startedAt time.Time
}

func NewHealthController() IHealthController {
	return &healthController{startedAt: time.Now()}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/health/v1")
	h.Get("/", c.Check)
}

func (c *healthController) Check(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{
		"service": "ai-docchat-be",
		"version": serviceVersion,
		"uptime":  time.Since(c.startedAt).Round(time.Second).String(),
	}))
}
