package dto

// Inputs de las mutaciones, ya traducidos desde la capa GraphQL a tipos
// planos de aplicación.

// UsuarioInput datos de registro de un usuario.
type UsuarioInput struct {
	Nombre   string
	Apellido string
	Email    string
	Password string
}

// AutenticarInput credenciales de inicio de sesión.
type AutenticarInput struct {
	Email    string
	Password string
}

// ProductoInput datos de creación/actualización de un producto.
type ProductoInput struct {
	Nombre     string
	Existencia int
	Precio     float64
}

// ClienteInput datos de creación/actualización de un cliente. Telefono nil en
// una actualización significa "no tocar".
type ClienteInput struct {
	Nombre   string
	Apellido string
	Empresa  string
	Email    string
	Telefono *string
}

// ArticuloInput una línea del pedido: producto y cantidad solicitada.
type ArticuloInput struct {
	ProductoID string
	Cantidad   int
}

// PedidoInput datos de creación de un pedido.
type PedidoInput struct {
	Pedido  []ArticuloInput
	Total   float64
	Cliente string
	Estado  *string
}

// PedidoActualizarInput actualización parcial de un pedido. Pedido nil deja
// la lista de artículos (y el stock) sin tocar.
type PedidoActualizarInput struct {
	Pedido  []ArticuloInput
	Total   *float64
	Cliente string
	Estado  *string
}
