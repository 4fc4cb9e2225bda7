package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConsoleHandler serves the two console entry pages. The admin console
// lives at the root path and the field agent console at /mobile; no other
// paths are recognized.
type ConsoleHandler struct{}

func NewConsoleHandler() *ConsoleHandler {
	return &ConsoleHandler{}
}

func (h *ConsoleHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.AdminConsole)
	router.GET("/mobile", h.AgentConsole)
}

const adminPage = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Panel Vendedores</title></head>
<body>
<h1>Panel Vendedores</h1>
<p>API: /api &middot; Feed: /ws/feed</p>
</body>
</html>`

const agentPage = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>Panel del Vendedor</title></head>
<body>
<h1>Panel del Vendedor</h1>
<p>API: /api</p>
</body>
</html>`

func (h *ConsoleHandler) AdminConsole(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(adminPage))
}

func (h *ConsoleHandler) AgentConsole(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(agentPage))
}
