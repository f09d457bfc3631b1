package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/FranCa26/InvenLink-24-7/internal/apierror"
	"github.com/FranCa26/InvenLink-24-7/internal/service"

	"github.com/gin-gonic/gin"
)

const msgDetalleInvalido = "Cada producto debe tener una cantidad mayor que 0 y un precio unitario válido"

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeCrearError maps a failed entrada/venta creation to its status.
// sinDetalles is the message for an empty line list.
func writeCrearError(c *gin.Context, err error, sinDetalles, fallo string) {
	var noEncontrado *service.ProductoNoEncontradoError
	var sinStock *service.StockInsuficienteError
	switch {
	case errors.Is(err, service.ErrSinDetalles):
		c.JSON(http.StatusBadRequest, apierror.New(sinDetalles))
	case errors.Is(err, service.ErrDetalleInvalido):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.As(err, &noEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(noEncontrado.Error()))
	case errors.As(err, &sinStock):
		c.JSON(http.StatusBadRequest, apierror.New(sinStock.Error()))
	default:
		serverError(c, fallo, err)
	}
}

// writePDF renders into memory first so a failure can still become a JSON error.
func writePDF(c *gin.Context, filename string, render func(w *bytes.Buffer) error, noEncontrado, fallo string) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New(noEncontrado))
			return
		}
		serverError(c, fallo, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
