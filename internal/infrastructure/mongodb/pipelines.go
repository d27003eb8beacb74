package mongodb

import (
	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// pipelineMejoresClientes: pedidos COMPLETADO agrupados por cliente, total
// sumado, identidad resuelta con $lookup y orden descendente por total.
func pipelineMejoresClientes() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "estado", Value: entity.EstadoCompletado}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$cliente"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colClientes},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "cliente"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
	}
}

// pipelineMejoresVendedores: igual que el de clientes pero agrupando por
// vendedor. El $limit de 3 va ANTES del $sort, asi que con mas de 3
// vendedores el recorte ocurre sobre filas sin ordenar; es el comportamiento
// vigente y se conserva tal cual (ver DESIGN.md).
func pipelineMejoresVendedores() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "estado", Value: entity.EstadoCompletado}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$vendedor"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colUsuarios},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "vendedor"},
		}}},
		bson.D{{Key: "$limit", Value: 3}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
	}
}
