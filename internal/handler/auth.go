package handler

import (
	"errors"
	"net/http"

	"github.com/FranCa26/InvenLink-24-7/internal/apierror"
	"github.com/FranCa26/InvenLink-24-7/internal/dto"
	"github.com/FranCa26/InvenLink-24-7/internal/middleware"
	"github.com/FranCa26/InvenLink-24-7/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apierror.APIError
// @Failure 401 {object} apierror.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req, "Debe proporcionar nombre de usuario y contraseña") {
		return
	}

	resp, res, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		serverError(c, "Error al iniciar sesión", err)
		return
	}
	if resp == nil {
		log.Info().Str("username", req.Username).Str("motivo", res.Motivo).Msg("login rechazado")
		c.JSON(http.StatusUnauthorized, apierror.New(res.Motivo))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Registrar godoc
// @Summary Registrar usuario (solo administradores)
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RegistrarRequest true "Nuevo usuario"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} apierror.APIError
// @Failure 403 {object} apierror.APIError
// @Router /api/auth/register [post]
func (h *AuthHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarRequest
	if !bindAndValidate(c, &req, "Debe proporcionar nombre de usuario, contraseña y nombre") {
		return
	}

	if _, err := h.svc.Registrar(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrUsuarioExistente) || errors.Is(err, service.ErrRolInvalido) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		serverError(c, "Error al registrar usuario", err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessResponse{Success: true, Message: "Usuario creado exitosamente"})
}

// Verificar echoes the identity carried by a valid token.
func (h *AuthHandler) Verificar(c *gin.Context) {
	claims := middleware.GetClaims(c)
	c.JSON(http.StatusOK, dto.VerificarResponse{
		Success: true,
		Usuario: dto.SesionUsuario{ID: claims.ID, Username: claims.Username, Rol: claims.Rol},
	})
}
