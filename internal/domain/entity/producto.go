package entity

import "time"

// Producto representa un articulo del catalogo con su existencia disponible.
// Invariante: Existencia nunca debe quedar negativa por un pedido confirmado.
type Producto struct {
	ID         string    `bson:"_id,omitempty"`
	Nombre     string    `bson:"nombre"`
	Existencia int       `bson:"existencia"`
	Precio     float64   `bson:"precio"`
	Creado     time.Time `bson:"creado"`
}
