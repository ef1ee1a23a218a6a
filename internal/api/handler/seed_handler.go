package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/apnakhakra/storefront-api/internal/core/ports"
)

// SeedHandler exposes the one-time bootstrap endpoints. The seed route is a
// setup convenience meant to be removed once the production database is
// provisioned.
type SeedHandler struct {
	seedService ports.SeedService
}

func NewSeedHandler(seedService ports.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

type seedAdminInfo struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Note     string `json:"note"`
}

type seedResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Admin   seedAdminInfo `json:"admin"`
}

type checkAdminResponse struct {
	Exists  bool   `json:"exists"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

// Seed wipes products and admins, then inserts the demo product and the
// admin account.
//
// @Summary      Seed the database (one-time setup)
// @Tags         seed
// @Produce      json
// @Success      200  {object}  seedResponse
// @Failure      500  {object}  errorResponse
// @Router       /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	result, err := h.seedService.Seed(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, seedResponse{
		Success: true,
		Message: "Database seeded successfully",
		Admin: seedAdminInfo{
			Email:    result.AdminEmail,
			Password: result.AdminPassword,
			Note:     "Use these credentials to login",
		},
	})
}

// CheckAdmin reports whether the configured admin account exists.
//
// @Summary      Check whether the admin account exists
// @Tags         seed
// @Produce      json
// @Success      200  {object}  checkAdminResponse
// @Router       /check-admin [get]
func (h *SeedHandler) CheckAdmin(c echo.Context) error {
	check, err := h.seedService.CheckAdmin(c.Request().Context())
	if err != nil {
		return err
	}

	resp := checkAdminResponse{Exists: check.Exists, Email: check.Email}
	if !check.Exists {
		resp.Message = "No admin found. Please seed the database."
	}
	return c.JSON(http.StatusOK, resp)
}
