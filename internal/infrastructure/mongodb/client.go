package mongodb

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-graphql-api/pkg/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Nombres de las colecciones del CRM.
const (
	colUsuarios  = "usuarios"
	colProductos = "productos"
	colClientes  = "clientes"
	colPedidos   = "pedidos"
)

// Conectar abre la conexión al almacén de documentos y verifica con un ping.
func Conectar(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("conectar a mongo: %w", err)
	}
	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping a mongo: %w", err)
	}
	return cli.Database(cfg.Database), nil
}

// CrearIndices asegura los índices que respaldan las reglas del dominio:
// email único en usuarios y clientes, índice de texto sobre el nombre del
// producto para buscarProducto.
func CrearIndices(ctx context.Context, db *mongo.Database) error {
	emailUnico := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(colUsuarios).Indexes().CreateOne(ctx, emailUnico); err != nil {
		return fmt.Errorf("indice email usuarios: %w", err)
	}
	if _, err := db.Collection(colClientes).Indexes().CreateOne(ctx, emailUnico); err != nil {
		return fmt.Errorf("indice email clientes: %w", err)
	}
	textoNombre := mongo.IndexModel{
		Keys: bson.D{{Key: "nombre", Value: "text"}},
	}
	if _, err := db.Collection(colProductos).Indexes().CreateOne(ctx, textoNombre); err != nil {
		return fmt.Errorf("indice texto productos: %w", err)
	}
	return nil
}
