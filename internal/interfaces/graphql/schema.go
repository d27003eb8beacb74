package graphql

// Schema define el contrato GraphQL completo del CRM: 13 consultas y 11
// mutaciones, con los nombres de operación expuestos tal cual al cliente.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		obtenerUsuario: Usuario
		obtenerProductos: [Producto!]!
		obtenerProducto(id: ID!): Producto!
		obtenerClientes: [Cliente!]!
		obtenerClientesVendedor: [Cliente!]!
		obtenerCliente(id: ID!): Cliente!
		obtenerPedidos: [Pedido!]!
		obtenerPedidosVendedor: [Pedido!]!
		obtenerPedido(id: ID!): Pedido!
		obtenerPedidosEstado(estado: EstadoPedido!): [Pedido!]!
		mejoresClientes: [TopCliente!]!
		mejoresVendedores: [TopVendedor!]!
		buscarProducto(texto: String!): [Producto!]!
	}

	type Mutation {
		nuevoUsuario(input: UsuarioInput!): Usuario!
		autenticarUsuario(input: AutenticarInput!): Token!
		nuevoProducto(input: ProductoInput!): Producto!
		actualizarProducto(id: ID!, input: ProductoInput!): Producto!
		eliminarProducto(id: ID!): String!
		nuevoCliente(input: ClienteInput!): Cliente!
		actualizarCliente(id: ID!, input: ClienteInput!): Cliente!
		eliminarCliente(id: ID!): String!
		nuevoPedido(input: PedidoInput!): Pedido!
		actualizarPedido(id: ID!, input: PedidoActualizarInput!): Pedido!
		eliminarPedido(id: ID!): String!
	}

	type Usuario {
		id: ID!
		nombre: String!
		apellido: String!
		email: String!
		creado: String!
	}

	type Token {
		token: String!
	}

	type Producto {
		id: ID!
		nombre: String!
		existencia: Int!
		precio: Float!
		creado: String!
	}

	type Cliente {
		id: ID!
		nombre: String!
		apellido: String!
		empresa: String!
		email: String!
		telefono: String
		vendedor: ID!
		creado: String!
	}

	type PedidoGrupo {
		id: ID!
		cantidad: Int!
		nombre: String!
		precio: Float!
	}

	type Pedido {
		id: ID!
		pedido: [PedidoGrupo!]!
		total: Float!
		cliente: Cliente
		vendedor: ID!
		estado: EstadoPedido!
		creado: String!
	}

	type TopCliente {
		total: Float!
		cliente: [Cliente!]!
	}

	type TopVendedor {
		total: Float!
		vendedor: [Usuario!]!
	}

	enum EstadoPedido {
		PENDIENTE
		COMPLETADO
		CANCELADO
	}

	input UsuarioInput {
		nombre: String!
		apellido: String!
		email: String!
		password: String!
	}

	input AutenticarInput {
		email: String!
		password: String!
	}

	input ProductoInput {
		nombre: String!
		existencia: Int!
		precio: Float!
	}

	input ClienteInput {
		nombre: String!
		apellido: String!
		empresa: String!
		email: String!
		telefono: String
	}

	input PedidoProductoInput {
		id: ID!
		cantidad: Int!
	}

	input PedidoInput {
		pedido: [PedidoProductoInput!]!
		total: Float!
		cliente: ID!
		estado: EstadoPedido
	}

	input PedidoActualizarInput {
		pedido: [PedidoProductoInput!]
		total: Float
		cliente: ID!
		estado: EstadoPedido
	}
`
