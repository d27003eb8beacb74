package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"github.com/jhoicas/crm-graphql-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo adaptador de PedidoRepository sobre la colección pedidos.
type PedidoRepo struct {
	col *mongo.Collection
}

// NewPedidoRepository construye el adaptador.
func NewPedidoRepository(db *mongo.Database) *PedidoRepo {
	return &PedidoRepo{col: db.Collection(colPedidos)}
}

// Crear persiste un nuevo pedido.
func (r *PedidoRepo) Crear(ctx context.Context, pedido *entity.Pedido) error {
	if _, err := r.col.InsertOne(ctx, pedido); err != nil {
		return fmt.Errorf("insertar pedido: %w", err)
	}
	return nil
}

// ObtenerPorID devuelve un pedido por id, o (nil, nil) si no existe.
func (r *PedidoRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Pedido, error) {
	var p entity.Pedido
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar pedido: %w", err)
	}
	return &p, nil
}

// Listar devuelve todos los pedidos.
func (r *PedidoRepo) Listar(ctx context.Context) ([]*entity.Pedido, error) {
	return r.listar(ctx, bson.M{})
}

// ListarPorVendedor devuelve los pedidos del vendedor dado.
func (r *PedidoRepo) ListarPorVendedor(ctx context.Context, vendedorID string) ([]*entity.Pedido, error) {
	return r.listar(ctx, bson.M{"vendedor": vendedorID})
}

// ListarPorVendedorYEstado filtra ademas por estado del pedido.
func (r *PedidoRepo) ListarPorVendedorYEstado(ctx context.Context, vendedorID, estado string) ([]*entity.Pedido, error) {
	return r.listar(ctx, bson.M{"vendedor": vendedorID, "estado": estado})
}

func (r *PedidoRepo) listar(ctx context.Context, filtro bson.M) ([]*entity.Pedido, error) {
	cursor, err := r.col.Find(ctx, filtro)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	var pedidos []*entity.Pedido
	if err := cursor.All(ctx, &pedidos); err != nil {
		return nil, fmt.Errorf("decodificar pedidos: %w", err)
	}
	return pedidos, nil
}

// Actualizar aplica los cambios parciales y devuelve el documento
// actualizado, o (nil, nil) si el id no existe.
func (r *PedidoRepo) Actualizar(ctx context.Context, id string, cambios entity.PedidoCambios) (*entity.Pedido, error) {
	set := bson.M{}
	if cambios.Pedido != nil {
		set["pedido"] = cambios.Pedido
	}
	if cambios.Total != nil {
		set["total"] = *cambios.Total
	}
	if cambios.Cliente != nil {
		set["cliente"] = *cambios.Cliente
	}
	if cambios.Estado != nil {
		set["estado"] = *cambios.Estado
	}
	if len(set) == 0 {
		return r.ObtenerPorID(ctx, id)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var actualizado entity.Pedido
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&actualizado)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("actualizar pedido: %w", err)
	}
	return &actualizado, nil
}

// Eliminar borra un pedido por id.
func (r *PedidoRepo) Eliminar(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("eliminar pedido: %w", err)
	}
	return nil
}

// MejoresClientes corre la agregación de mejores clientes.
func (r *PedidoRepo) MejoresClientes(ctx context.Context) ([]*entity.TopCliente, error) {
	cursor, err := r.col.Aggregate(ctx, pipelineMejoresClientes())
	if err != nil {
		return nil, fmt.Errorf("agregar mejores clientes: %w", err)
	}
	var filas []*entity.TopCliente
	if err := cursor.All(ctx, &filas); err != nil {
		return nil, fmt.Errorf("decodificar mejores clientes: %w", err)
	}
	return filas, nil
}

// MejoresVendedores corre la agregación de mejores vendedores.
func (r *PedidoRepo) MejoresVendedores(ctx context.Context) ([]*entity.TopVendedor, error) {
	cursor, err := r.col.Aggregate(ctx, pipelineMejoresVendedores())
	if err != nil {
		return nil, fmt.Errorf("agregar mejores vendedores: %w", err)
	}
	var filas []*entity.TopVendedor
	if err := cursor.All(ctx, &filas); err != nil {
		return nil, fmt.Errorf("decodificar mejores vendedores: %w", err)
	}
	return filas, nil
}
