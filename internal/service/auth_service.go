package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/FranCa26/InvenLink-24-7/internal/dto"
	"github.com/FranCa26/InvenLink-24-7/internal/model"
	"github.com/FranCa26/InvenLink-24-7/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

const (
	MotivoUsuarioNoEncontrado = "Usuario no encontrado"
	MotivoPasswordIncorrecta  = "Contraseña incorrecta"
)

// ResultadoCredenciales is the outcome of a credential check: either OK with
// the sanitized user, or a failure with its reason.
type ResultadoCredenciales struct {
	OK      bool
	Motivo  string
	Usuario *dto.UsuarioResponse
	id      int64
}

type AuthService interface {
	VerificarCredenciales(ctx context.Context, username, password string) (*ResultadoCredenciales, error)
	// Login returns (nil, resultado, nil) when the credentials are rejected.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, *ResultadoCredenciales, error)
	Registrar(ctx context.Context, req dto.RegistrarRequest) (*dto.UsuarioResponse, error)
}

type authService struct {
	repo     repository.UsuarioRepository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewAuthService(repo repository.UsuarioRepository, secret string, tokenTTL time.Duration) AuthService {
	return &authService{repo: repo, secret: []byte(secret), tokenTTL: tokenTTL, now: time.Now}
}

func (s *authService) VerificarCredenciales(ctx context.Context, username, password string) (*ResultadoCredenciales, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return &ResultadoCredenciales{Motivo: MotivoUsuarioNoEncontrado}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return &ResultadoCredenciales{Motivo: MotivoPasswordIncorrecta}, nil
	}

	resp := usuarioToResponse(user)
	return &ResultadoCredenciales{OK: true, Usuario: &resp, id: user.IdUsuario}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, *ResultadoCredenciales, error) {
	res, err := s.VerificarCredenciales(ctx, req.Username, req.Password)
	if err != nil {
		return nil, nil, err
	}
	if !res.OK {
		return nil, res, nil
	}

	token, err := s.generateToken(res.id, res.Usuario.Username, res.Usuario.Rol)
	if err != nil {
		return nil, nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Message: "Inicio de sesión exitoso",
		Token:   token,
		Usuario: *res.Usuario,
	}, res, nil
}

func (s *authService) Registrar(ctx context.Context, req dto.RegistrarRequest) (*dto.UsuarioResponse, error) {
	rol := req.Rol
	if rol == "" {
		rol = model.RolVendedor
	}
	if rol != model.RolAdmin && rol != model.RolVendedor {
		return nil, ErrRolInvalido
	}

	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsuarioExistente
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Username: req.Username,
		Password: hash,
		Nombre:   req.Nombre,
		Rol:      rol,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// lost the race against a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsuarioExistente
		}
		return nil, err
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *authService) generateToken(id int64, username, rol string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"id":       id,
		"username": username,
		"rol":      rol,
		"exp":      now.Add(s.tokenTTL).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// HashPassword returns the bcrypt hash stored for password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hash), err
}

func usuarioToResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		IdUsuario: strconv.FormatInt(u.IdUsuario, 10),
		Username:  u.Username,
		Nombre:    u.Nombre,
		Rol:       u.Rol,
	}
}
