// Command seeduser creates a user, or resets the password of an
// existing one, against the configured database.
//
//	go run ./cmd/seeduser -username admin -password admin123 -rol admin
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/FranCa26/InvenLink-24-7/internal/config"
	"github.com/FranCa26/InvenLink-24-7/internal/infra"
	"github.com/FranCa26/InvenLink-24-7/internal/model"
	"github.com/FranCa26/InvenLink-24-7/internal/repository"
	"github.com/FranCa26/InvenLink-24-7/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	username := flag.String("username", "admin", "nombre de usuario")
	password := flag.String("password", "admin123", "contraseña en texto plano")
	nombre := flag.String("nombre", "Administrador", "nombre para mostrar")
	rol := flag.String("rol", model.RolAdmin, "admin | vendedor")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *rol != model.RolAdmin && *rol != model.RolVendedor {
		log.Fatal().Str("rol", *rol).Msg("rol inválido")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}
	defer func() { _ = infra.CloseDatabase(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, repository.NewUsuarioRepository(db), *username, *password, *nombre, *rol); err != nil {
		log.Fatal().Err(err).Str("username", *username).Msg("seed failed")
	}
	log.Info().Str("username", *username).Str("rol", *rol).Msg("usuario creado/actualizado")
}

// seed upserts the user. An existing user keeps its id and gets the new
// password hash.
func seed(ctx context.Context, repo repository.UsuarioRepository, username, password, nombre, rol string) error {
	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}
	existing, err := repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return repo.UpdatePassword(ctx, existing.IdUsuario, hash)
	case errors.Is(err, repository.ErrNotFound):
		return repo.Create(ctx, &model.Usuario{
			Username: username,
			Password: hash,
			Nombre:   nombre,
			Rol:      rol,
		})
	default:
		return err
	}
}
