package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/FranCa26/InvenLink-24-7/internal/apierror"

	"github.com/gin-gonic/gin"
)

// Frontend handles every unmatched route. Unknown /api paths get a JSON 404;
// anything else serves the file under dist when it exists and otherwise
// index.html, so the client-side router can resolve the path.
func Frontend(dist string) gin.HandlerFunc {
	index := filepath.Join(dist, "index.html")
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if p == "/api" || strings.HasPrefix(p, "/api/") {
			c.JSON(http.StatusNotFound, apierror.New("Ruta de API no encontrada"))
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, apierror.New("Ruta no encontrada"))
			return
		}

		// path.Clean on a rooted path cannot climb above dist
		file := filepath.Join(dist, filepath.FromSlash(path.Clean("/"+p)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		if _, err := os.Stat(index); err != nil {
			c.JSON(http.StatusNotFound, apierror.New("Frontend no disponible"))
			return
		}
		c.File(index)
	}
}
