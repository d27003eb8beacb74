package repository

import (
	"context"

	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
)

// ClienteCambios describe la actualizacion de un Cliente. Telefono nil no se
// toca. El vendedor nunca se reasigna por esta via.
type ClienteCambios struct {
	Nombre   string
	Apellido string
	Empresa  string
	Email    string
	Telefono *string
}

// ClienteRepository define el puerto de persistencia para Cliente. El filtro
// por vendedor es de primera clase: las consultas del vendedor autenticado
// pasan por ListarPorVendedor.
type ClienteRepository interface {
	Crear(ctx context.Context, cliente *entity.Cliente) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Cliente, error)
	ObtenerPorEmail(ctx context.Context, email string) (*entity.Cliente, error)
	Listar(ctx context.Context) ([]*entity.Cliente, error)
	ListarPorVendedor(ctx context.Context, vendedorID string) ([]*entity.Cliente, error)
	Actualizar(ctx context.Context, id string, cambios ClienteCambios) (*entity.Cliente, error)
	Eliminar(ctx context.Context, id string) error
}
