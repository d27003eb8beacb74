package entity

import "time"

// Estados validos para Pedido.
const (
	EstadoPendiente  = "PENDIENTE"
	EstadoCompletado = "COMPLETADO"
	EstadoCancelado  = "CANCELADO"
)

// ArticuloPedido es una linea del pedido: producto solicitado y cantidad.
// Nombre y Precio se copian del producto al reservar el stock.
type ArticuloPedido struct {
	ProductoID string  `bson:"id"`
	Cantidad   int     `bson:"cantidad"`
	Nombre     string  `bson:"nombre"`
	Precio     float64 `bson:"precio"`
}

// Pedido agrupa articulos solicitados por un cliente. Invariante: Vendedor
// coincide con el vendedor del cliente al momento de la creacion.
type Pedido struct {
	ID       string           `bson:"_id,omitempty"`
	Pedido   []ArticuloPedido `bson:"pedido"`
	Total    float64          `bson:"total"`
	Cliente  string           `bson:"cliente"`
	Vendedor string           `bson:"vendedor"`
	Estado   string           `bson:"estado"`
	Creado   time.Time        `bson:"creado"`
}

// PedidoCambios describe una actualizacion parcial de Pedido. Los campos nil
// no se tocan; Pedido distinto de nil reemplaza la lista de articulos completa.
type PedidoCambios struct {
	Pedido  []ArticuloPedido
	Total   *float64
	Cliente *string
	Estado  *string
}

// TopCliente es una fila del reporte de mejores clientes (pedidos COMPLETADO
// agrupados por cliente). Cliente llega como arreglo por el $lookup.
type TopCliente struct {
	Total   float64   `bson:"total"`
	Cliente []Cliente `bson:"cliente"`
}

// TopVendedor es una fila del reporte de mejores vendedores.
type TopVendedor struct {
	Total    float64   `bson:"total"`
	Vendedor []Usuario `bson:"vendedor"`
}
