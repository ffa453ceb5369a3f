package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1")

	r.Post("/mints", h.Mint)
	r.Get("/assets", h.GetAssets)
	r.Get("/creators/:address/stats", h.GetCreatorStats)
	r.Get("/creators/:address/mints", h.GetMintHistory)
	r.Get("/creators/:address/rewards", h.GetRewardHistory)
	r.Get("/rewards/constant", h.GetRewardConstant)
	return nil
}
