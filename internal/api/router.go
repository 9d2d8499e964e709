package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rongwang/seabirds-server/internal/utils"
)

// NewRouter builds the gin engine with middleware and routes. When staticDir
// is set, files under it are served for any path no route matches.
func NewRouter(h *Handler, logger *utils.Logger, staticDir string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(logger.WithComponent("http")))

	h.SetupRoutes(router)

	if staticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(staticDir))))
	}

	return router
}
