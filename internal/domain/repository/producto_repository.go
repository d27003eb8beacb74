package repository

import (
	"context"

	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto.
// Actualizar reemplaza los campos mutables y devuelve el documento ya
// actualizado, o (nil, nil) si el id no existe.
type ProductoRepository interface {
	Crear(ctx context.Context, producto *entity.Producto) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Producto, error)
	Listar(ctx context.Context) ([]*entity.Producto, error)
	Actualizar(ctx context.Context, id string, producto entity.Producto) (*entity.Producto, error)
	Eliminar(ctx context.Context, id string) error
	// Buscar ejecuta la busqueda de texto sobre el indice de nombre,
	// acotada a limite resultados.
	Buscar(ctx context.Context, texto string, limite int) ([]*entity.Producto, error)
}
