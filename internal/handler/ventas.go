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

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// Crear godoc
// @Summary      Registrar una nueva venta
// @Description  Descuenta stock de forma atómica; una línea sin stock suficiente cancela la venta completa.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body body     dto.CrearVentaRequest true "Cabecera y detalles"
// @Success      201  {object} dto.CrearVentaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /api/ventas [post]
func (h *VentasHandler) Crear(c *gin.Context) {
	var req dto.CrearVentaRequest
	if !bindAndValidate(c, &req, msgDetalleInvalido) {
		return
	}
	id, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeCrearError(c, err, "Debe proporcionar al menos un producto en la venta", "Error al crear la venta")
		return
	}
	c.JSON(http.StatusCreated, dto.CrearVentaResponse{
		Message: "Venta creada exitosamente",
		IdVenta: strconv.FormatInt(id, 10),
	})
}

// Listar godoc
// @Summary      Listar ventas
// @Description  Ventas más recientes primero, con sus detalles.
// @Tags         ventas
// @Produce      json
// @Success      200  {array} dto.VentaResponse
// @Router       /api/ventas [get]
func (h *VentasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		degraded(c, "Error al obtener las ventas", err)
		resp = []dto.VentaResponse{}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("Venta no encontrada"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New("Venta no encontrada"))
			return
		}
		serverError(c, "Error al obtener la venta", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorProducto godoc
// @Summary      Ventas de un producto
// @Tags         ventas
// @Produce      json
// @Param        code path     string true "Código de producto"
// @Success      200  {array}  dto.VentaDeProductoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/ventas/producto/{code} [get]
func (h *VentasHandler) ListarPorProducto(c *gin.Context) {
	resp, err := h.svc.ListarPorProducto(c.Request.Context(), c.Param("code"))
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
			return
		}
		degraded(c, "Error al obtener las ventas", err)
		resp = []dto.VentaDeProductoResponse{}
	}
	c.JSON(http.StatusOK, resp)
}

// Resumen godoc
// @Summary      Resumen de ventas
// @Description  Totales de hoy, la semana y el mes como texto con dos decimales. Nunca falla: ante un error responde ceros.
// @Tags         ventas
// @Produce      json
// @Success      200  {object} dto.ResumenVentas
// @Router       /api/ventas/resumen [get]
func (h *VentasHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		degraded(c, "Error al obtener el resumen de ventas", err)
		vacio := dto.ResumenVentasVacio()
		resp = &vacio
	}
	c.JSON(http.StatusOK, resp)
}

// Comprobante streams the sale receipt PDF.
func (h *VentasHandler) Comprobante(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("Venta no encontrada"))
		return
	}
	writePDF(c, fmt.Sprintf("venta-%d.pdf", id), func(w *bytes.Buffer) error {
		return h.svc.Comprobante(c.Request.Context(), id, w)
	}, "Venta no encontrada", "Error al generar el comprobante")
}
