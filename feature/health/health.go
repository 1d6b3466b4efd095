package health

import "github.com/gofiber/fiber/v2"

// Version is the reported service version.
const Version = "1.0.0"

// RootResponse is returned by the root endpoint.
type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// StatusResponse is returned by the health endpoint.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Status reports the current service health.
func Status() StatusResponse {
	return StatusResponse{Status: "healthy", Version: Version}
}

// Register mounts the public health endpoints. These stay outside the
// API-key middleware so probes never need credentials.
func Register(app fiber.Router) {
	app.Get("/", handleRoot)
	app.Get("/health", handleHealth)
}

// handleRoot describes the service.
// @Summary Service Info
// @Description Root endpoint with service name, status and docs pointer.
// @Tags health
// @Produce json
// @Success 200 {object} RootResponse "Service info"
// @Router / [get]
func handleRoot(c *fiber.Ctx) error {
	return c.JSON(RootResponse{
		Message: "Transaction Reconciliation API",
		Status:  "running",
		Version: Version,
		Docs:    "Visit /swagger for API documentation",
	})
}

// handleHealth is the liveness probe.
// @Summary Health Check
// @Description Liveness probe.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse "Health status"
// @Router /health [get]
func handleHealth(c *fiber.Ctx) error {
	return c.JSON(Status())
}
