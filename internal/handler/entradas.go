package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/FranCa26/InvenLink-24-7/internal/apierror"
	"github.com/FranCa26/InvenLink-24-7/internal/dto"
	"github.com/FranCa26/InvenLink-24-7/internal/service"

	"github.com/gin-gonic/gin"
)

type EntradasHandler struct{ svc service.EntradaService }

func NewEntradasHandler(svc service.EntradaService) *EntradasHandler {
	return &EntradasHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar entradas
// @Description  Entradas de mercadería, más recientes primero, con sus detalles.
// @Tags         entradas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.EntradaResponse
// @Router       /api/entradas [get]
func (h *EntradasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		degraded(c, "Error al obtener las entradas", err)
		resp = []dto.EntradaResponse{}
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener entrada
// @Tags         entradas
// @Produce      json
// @Param        id   path     int true "ID de la entrada"
// @Success      200  {object} dto.EntradaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/entradas/{id} [get]
func (h *EntradasHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("Entrada no encontrada"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New("Entrada no encontrada"))
			return
		}
		serverError(c, "Error al obtener la entrada", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary      Registrar entrada de mercadería
// @Description  Suma stock, fija el precio de costo y, si el precio de venta es 0, lo inicializa en costo × 1.3. Todo o nada.
// @Tags         entradas
// @Accept       json
// @Produce      json
// @Param        body body     dto.CrearEntradaRequest true "Cabecera y detalles"
// @Success      201  {object} dto.CrearEntradaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /api/entradas [post]
func (h *EntradasHandler) Crear(c *gin.Context) {
	var req dto.CrearEntradaRequest
	if !bindAndValidate(c, &req, msgDetalleInvalido) {
		return
	}
	id, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeCrearError(c, err, "Debe proporcionar al menos un producto en la entrada", "Error al crear la entrada")
		return
	}
	c.JSON(http.StatusCreated, dto.CrearEntradaResponse{
		Message:   "Entrada creada exitosamente",
		IdEntrada: strconv.FormatInt(id, 10),
	})
}

// Resumen godoc
// @Summary      Resumen de entradas
// @Description  Totales de hoy y del mes, y los 5 productos más comprados.
// @Tags         entradas
// @Produce      json
// @Success      200  {object} dto.ResumenEntradas
// @Failure      500  {object} apierror.APIError
// @Router       /api/entradas/resumen/dashboard [get]
func (h *EntradasHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		serverError(c, "Error al obtener el resumen de entradas", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Comprobante streams the receipt PDF.
func (h *EntradasHandler) Comprobante(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("Entrada no encontrada"))
		return
	}
	writePDF(c, fmt.Sprintf("entrada-%d.pdf", id), func(w *bytes.Buffer) error {
		return h.svc.Comprobante(c.Request.Context(), id, w)
	}, "Entrada no encontrada", "Error al generar el comprobante")
}
