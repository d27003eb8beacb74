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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo adaptador de ClienteRepository sobre la colección clientes.
type ClienteRepo struct {
	col *mongo.Collection
}

// NewClienteRepository construye el adaptador.
func NewClienteRepository(db *mongo.Database) *ClienteRepo {
	return &ClienteRepo{col: db.Collection(colClientes)}
}

// Crear persiste un nuevo cliente.
func (r *ClienteRepo) Crear(ctx context.Context, cliente *entity.Cliente) error {
	if _, err := r.col.InsertOne(ctx, cliente); err != nil {
		return fmt.Errorf("insertar cliente: %w", err)
	}
	return nil
}

// ObtenerPorID devuelve un cliente por id, o (nil, nil) si no existe.
func (r *ClienteRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Cliente, error) {
	return r.obtener(ctx, bson.M{"_id": id})
}

// ObtenerPorEmail devuelve un cliente por email, o (nil, nil) si no existe.
func (r *ClienteRepo) ObtenerPorEmail(ctx context.Context, email string) (*entity.Cliente, error) {
	return r.obtener(ctx, bson.M{"email": email})
}

func (r *ClienteRepo) obtener(ctx context.Context, filtro bson.M) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.col.FindOne(ctx, filtro).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	return &c, nil
}

// Listar devuelve todos los clientes.
func (r *ClienteRepo) Listar(ctx context.Context) ([]*entity.Cliente, error) {
	return r.listar(ctx, bson.M{})
}

// ListarPorVendedor devuelve los clientes del vendedor dado.
func (r *ClienteRepo) ListarPorVendedor(ctx context.Context, vendedorID string) ([]*entity.Cliente, error) {
	return r.listar(ctx, bson.M{"vendedor": vendedorID})
}

func (r *ClienteRepo) listar(ctx context.Context, filtro bson.M) ([]*entity.Cliente, error) {
	cursor, err := r.col.Find(ctx, filtro)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	var clientes []*entity.Cliente
	if err := cursor.All(ctx, &clientes); err != nil {
		return nil, fmt.Errorf("decodificar clientes: %w", err)
	}
	return clientes, nil
}

// Actualizar aplica los cambios y devuelve el documento actualizado, o
// (nil, nil) si el id no existe. El campo vendedor nunca se modifica.
func (r *ClienteRepo) Actualizar(ctx context.Context, id string, cambios repository.ClienteCambios) (*entity.Cliente, error) {
	set := bson.M{
		"nombre":   cambios.Nombre,
		"apellido": cambios.Apellido,
		"empresa":  cambios.Empresa,
		"email":    cambios.Email,
	}
	if cambios.Telefono != nil {
		set["telefono"] = *cambios.Telefono
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var actualizado entity.Cliente
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&actualizado)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	return &actualizado, nil
}

// Eliminar borra un cliente por id.
func (r *ClienteRepo) Eliminar(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("eliminar cliente: %w", err)
	}
	return nil
}
