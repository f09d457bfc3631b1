package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/FranCa26/InvenLink-24-7/internal/apierror"
	"github.com/FranCa26/InvenLink-24-7/internal/dto"
	"github.com/FranCa26/InvenLink-24-7/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar productos
// @Description  Lista completa ordenada por código. Un error de base de datos responde 200 con lista vacía.
// @Tags         productos
// @Produce      json
// @Success      200  {array} dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		degraded(c, "Error al obtener los productos", err)
		resp = []dto.ProductoResponse{}
	}
	c.JSON(http.StatusOK, resp)
}

// Test is a liveness probe for the product routes.
func (h *ProductosHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Las rutas de productos están funcionando"})
}

// Filtrar godoc
// @Summary      Buscar productos
// @Description  Coincidencia parcial, sin distinguir mayúsculas, sobre nombre o categoría.
// @Tags         productos
// @Produce      json
// @Param        filter query string true "Texto a buscar"
// @Success      200  {array} dto.ProductoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/productos/filter/name-category [get]
func (h *ProductosHandler) Filtrar(c *gin.Context) {
	filter := strings.TrimSpace(c.Query("filter"))
	if filter == "" {
		c.JSON(http.StatusBadRequest, apierror.New("El parámetro 'filter' es obligatorio"))
		return
	}
	resp, err := h.svc.Filtrar(c.Request.Context(), filter)
	if err != nil {
		degraded(c, "Error al filtrar los productos", err)
		resp = []dto.ProductoResponse{}
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener producto
// @Tags         productos
// @Produce      json
// @Param        code path string true "Código de producto"
// @Success      200  {object} dto.ProductoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/productos/{code} [get]
func (h *ProductosHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("code"))
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
			return
		}
		serverError(c, "Error al obtener el producto", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarStock godoc
// @Summary      Sumar stock
// @Description  Incrementa el stock actual en la cantidad indicada (número o texto numérico, mayor que 0).
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        code path string                     true "Código de producto"
// @Param        body body dto.ActualizarStockRequest true "Cantidad a sumar"
// @Success      200  {object} dto.ActualizarStockResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /api/productos/{code}/stock [put]
func (h *ProductosHandler) ActualizarStock(c *gin.Context) {
	var req dto.ActualizarStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(service.ErrCantidadInvalida.Error()))
		return
	}
	cantidad, err := strconv.Atoi(req.Cantidad.String())
	if err != nil || cantidad <= 0 {
		c.JSON(http.StatusBadRequest, apierror.New(service.ErrCantidadInvalida.Error()))
		return
	}

	nuevo, err := h.svc.IncrementarStock(c.Request.Context(), c.Param("code"), cantidad)
	if err != nil {
		switch {
		case service.IsNotFound(err):
			c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		case errors.Is(err, service.ErrCantidadInvalida):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		default:
			serverError(c, "Error al actualizar el stock", err)
		}
		return
	}
	c.JSON(http.StatusOK, dto.ActualizarStockResponse{Message: "Stock actualizado correctamente", NuevoStock: nuevo})
}

// Crear godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearProductoRequest true "Producto"
// @Success      201  {object} dto.MessageResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/productos [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req, "Todos los campos son obligatorios.") {
		return
	}
	if err := h.svc.Crear(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrProductoExistente) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		serverError(c, "Error al agregar el producto", err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Producto agregado correctamente."})
}

// Actualizar godoc
// @Summary      Actualizar producto
// @Description  Reemplaza todos los campos editables. Estado se ignora: se deriva del stock.
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code path string                        true "Código de producto"
// @Param        body body dto.ActualizarProductoRequest true "Producto"
// @Success      200  {object} dto.MessageResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /api/productos/{code} [put]
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req, "Todos los campos son obligatorios y los precios deben ser números válidos.") {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), c.Param("code"), req); err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado."))
			return
		}
		serverError(c, "Error al actualizar el producto", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Producto actualizado correctamente."})
}
