package repository

import (
	"context"

	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Las busquedas devuelven (nil, nil) cuando no hay documento.
type UsuarioRepository interface {
	Crear(ctx context.Context, usuario *entity.Usuario) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Usuario, error)
	ObtenerPorEmail(ctx context.Context, email string) (*entity.Usuario, error)
}
