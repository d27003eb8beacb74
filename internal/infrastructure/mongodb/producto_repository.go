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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo adaptador de ProductoRepository sobre la colección productos.
type ProductoRepo struct {
	col *mongo.Collection
}

// NewProductoRepository construye el adaptador.
func NewProductoRepository(db *mongo.Database) *ProductoRepo {
	return &ProductoRepo{col: db.Collection(colProductos)}
}

// Crear persiste un nuevo producto.
func (r *ProductoRepo) Crear(ctx context.Context, producto *entity.Producto) error {
	if _, err := r.col.InsertOne(ctx, producto); err != nil {
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

// ObtenerPorID devuelve un producto por id, o (nil, nil) si no existe.
func (r *ProductoRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Producto, error) {
	var p entity.Producto
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	return &p, nil
}

// Listar devuelve todos los productos.
func (r *ProductoRepo) Listar(ctx context.Context) ([]*entity.Producto, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	var productos []*entity.Producto
	if err := cursor.All(ctx, &productos); err != nil {
		return nil, fmt.Errorf("decodificar productos: %w", err)
	}
	return productos, nil
}

// Actualizar reemplaza los campos mutables y devuelve el documento
// actualizado, o (nil, nil) si el id no existe.
func (r *ProductoRepo) Actualizar(ctx context.Context, id string, producto entity.Producto) (*entity.Producto, error) {
	cambios := bson.M{"$set": bson.M{
		"nombre":     producto.Nombre,
		"existencia": producto.Existencia,
		"precio":     producto.Precio,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var actualizado entity.Producto
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, cambios, opts).Decode(&actualizado)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	return &actualizado, nil
}

// Eliminar borra un producto por id.
func (r *ProductoRepo) Eliminar(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	return nil
}

// Buscar ejecuta la búsqueda de texto sobre el índice de nombre, acotada a
// limite resultados.
func (r *ProductoRepo) Buscar(ctx context.Context, texto string, limite int) ([]*entity.Producto, error) {
	filtro := bson.M{"$text": bson.M{"$search": texto}}
	opts := options.Find().SetLimit(int64(limite))
	cursor, err := r.col.Find(ctx, filtro, opts)
	if err != nil {
		return nil, fmt.Errorf("buscar productos: %w", err)
	}
	var productos []*entity.Producto
	if err := cursor.All(ctx, &productos); err != nil {
		return nil, fmt.Errorf("decodificar productos: %w", err)
	}
	return productos, nil
}
