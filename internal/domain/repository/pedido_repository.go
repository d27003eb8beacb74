package repository

import (
	"context"

	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
)

// PedidoRepository define el puerto de persistencia para Pedido, incluidas
// las agregaciones de reportes que corren en el almacen de documentos.
type PedidoRepository interface {
	Crear(ctx context.Context, pedido *entity.Pedido) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Pedido, error)
	Listar(ctx context.Context) ([]*entity.Pedido, error)
	ListarPorVendedor(ctx context.Context, vendedorID string) ([]*entity.Pedido, error)
	ListarPorVendedorYEstado(ctx context.Context, vendedorID, estado string) ([]*entity.Pedido, error)
	Actualizar(ctx context.Context, id string, cambios entity.PedidoCambios) (*entity.Pedido, error)
	Eliminar(ctx context.Context, id string) error

	// MejoresClientes agrupa pedidos COMPLETADO por cliente, suma totales y
	// ordena descendente.
	MejoresClientes(ctx context.Context) ([]*entity.TopCliente, error)
	// MejoresVendedores agrupa pedidos COMPLETADO por vendedor y devuelve a
	// lo sumo 3 filas. El recorte se aplica antes del ordenamiento.
	MejoresVendedores(ctx context.Context) ([]*entity.TopVendedor, error)
}
