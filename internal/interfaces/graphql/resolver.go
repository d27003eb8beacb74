package graphql

import (
	"context"

	"github.com/graph-gophers/graphql-go"
	"github.com/jhoicas/crm-graphql-api/internal/application/auth"
	"github.com/jhoicas/crm-graphql-api/internal/application/dto"
	"github.com/jhoicas/crm-graphql-api/internal/application/usecase"
	"github.com/jhoicas/crm-graphql-api/internal/domain"
	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"github.com/jhoicas/crm-graphql-api/internal/domain/repository"
	"github.com/jhoicas/crm-graphql-api/pkg/logger"
)

// Resolver es la fachada de consultas y mutaciones: resuelve cada operación
// del schema contra los casos de uso y traduce los resultados de dominio a
// respuestas o errores GraphQL.
type Resolver struct {
	log         *logger.Logger
	auth        *auth.UseCase
	productos   *usecase.ProductoUseCase
	clientes    *usecase.ClienteUseCase
	pedidos     *usecase.PedidoUseCase
	reportes    *usecase.ReporteUseCase
	clienteRepo repository.ClienteRepository
}

// Deps dependencias del resolver raíz.
type Deps struct {
	Log         *logger.Logger
	Auth        *auth.UseCase
	Productos   *usecase.ProductoUseCase
	Clientes    *usecase.ClienteUseCase
	Pedidos     *usecase.PedidoUseCase
	Reportes    *usecase.ReporteUseCase
	ClienteRepo repository.ClienteRepository
}

// NewResolver construye el resolver raíz.
func NewResolver(deps Deps) *Resolver {
	return &Resolver{
		log:         deps.Log,
		auth:        deps.Auth,
		productos:   deps.Productos,
		clientes:    deps.Clientes,
		pedidos:     deps.Pedidos,
		reportes:    deps.Reportes,
		clienteRepo: deps.ClienteRepo,
	}
}

// traducir deja pasar los errores de dominio (su mensaje es el contrato con
// el cliente) y convierte cualquier otro fallo en un error genérico de
// repositorio, dejando el detalle en el log.
func (r *Resolver) traducir(operacion string, err error) error {
	if err == nil || domain.EsErrorDeDominio(err) {
		return err
	}
	r.log.Error().Err(err).Str("operacion", operacion).Msg("fallo de repositorio")
	return domain.ErrRepositorio
}

// ─── Query ───────────────────────────────────────────────────────────────────

// ObtenerUsuario devuelve el perfil del actor autenticado, o null en un
// contexto anónimo.
func (r *Resolver) ObtenerUsuario(ctx context.Context) (*UsuarioResolver, error) {
	actor, ok := auth.ActorDelContexto(ctx)
	if !ok {
		return nil, nil
	}
	usuario, err := r.auth.Usuario(ctx, actor.ID)
	if err != nil {
		return nil, r.traducir("obtenerUsuario", err)
	}
	return &UsuarioResolver{u: usuario}, nil
}

func (r *Resolver) ObtenerProductos(ctx context.Context) ([]*ProductoResolver, error) {
	productos, err := r.productos.Listar(ctx)
	if err != nil {
		return nil, r.traducir("obtenerProductos", err)
	}
	return productosResolver(productos), nil
}

func (r *Resolver) ObtenerProducto(ctx context.Context, args struct{ ID graphql.ID }) (*ProductoResolver, error) {
	producto, err := r.productos.Obtener(ctx, string(args.ID))
	if err != nil {
		return nil, r.traducir("obtenerProducto", err)
	}
	return &ProductoResolver{p: producto}, nil
}

func (r *Resolver) ObtenerClientes(ctx context.Context) ([]*ClienteResolver, error) {
	clientes, err := r.clientes.Listar(ctx)
	if err != nil {
		return nil, r.traducir("obtenerClientes", err)
	}
	return clientesResolver(clientes), nil
}

func (r *Resolver) ObtenerClientesVendedor(ctx context.Context) ([]*ClienteResolver, error) {
	actor, err := auth.ActorRequerido(ctx)
	if err != nil {
		return nil, err
	}
	clientes, err := r.clientes.ListarDelVendedor(ctx, actor)
	if err != nil {
		return nil, r.traducir("obtenerClientesVendedor", err)
	}
	return clientesResolver(clientes), nil
}

func (r *Resolver) ObtenerCliente(ctx context.Context, args struct{ ID graphql.ID }) (*ClienteResolver, error) {
	actor, err := auth.ActorRequerido(ctx)
	if err != nil {
		return nil, err
	}
	cliente, err := r.clientes.Obtener(ctx, actor, string(args.ID))
	if err != nil {
		return nil, r.traducir("obtenerCliente", err)
	}
	return &ClienteResolver{c: cliente}, nil
}

func (r *Resolver) ObtenerPedidos(ctx context.Context) ([]*PedidoResolver, error) {
	pedidos, err := r.pedidos.Listar(ctx)
	if err != nil {
		return nil, r.traducir("obtenerPedidos", err)
	}
	return r.pedidosResolver(pedidos), nil
}

func (r *Resolver) ObtenerPedidosVendedor(ctx context.Context) ([]*PedidoResolver, error) {
	actor, err := auth.ActorRequerido(ctx)
	if err != nil {
		return nil, err
	}
	pedidos, err := r.pedidos.ListarDelVendedor(ctx, actor)
	if err != nil {
		return nil, r.traducir("obtenerPedidosVendedor", err)
	}
	return r.pedidosResolver(pedidos), nil
}

func (r *Resolver) ObtenerPedido(ctx context.Context, args struct{ ID graphql.ID }) (*PedidoResolver, error) {
	actor, err := auth.ActorRequerido(ctx)
	if err != nil {
		return nil, err
	}
	pedido, err := r.pedidos.Obtener(ctx, actor, string(args.ID))
	if err != nil {
		return nil, r.traducir("obtenerPedido", err)
	}
	return &PedidoResolver{p: pedido, raiz: r}, nil
}

func (r *Resolver) ObtenerPedidosEstado(ctx context.Context, args struct{ Estado string }) ([]*PedidoResolver, error) {
	actor, err := auth.ActorRequerido(ctx)
	if err != nil {
		return nil, err
	}
	pedidos, err := r.pedidos.ListarPorEstado(ctx, actor, args.Estado)
	if err != nil {
		return nil, r.traducir("obtenerPedidosEstado", err)
	}
	return r.pedidosResolver(pedidos), nil
}

func (r *Resolver) MejoresClientes(ctx context.Context) ([]*TopClienteResolver, error) {
	filas, err := r.reportes.MejoresClientes(ctx)
	if err != nil {
		return nil, r.traducir("mejoresClientes", err)
	}
	out := make([]*TopClienteResolver, 0, len(filas))
	for _, fila := range filas {
		out = append(out, &TopClienteResolver{fila: fila})
	}
	return out, nil
}

func (r *Resolver) MejoresVendedores(ctx context.Context) ([]*TopVendedorResolver, error) {
	filas, err := r.reportes.MejoresVendedores(ctx)
	if err != nil {
		return nil, r.traducir("mejoresVendedores", err)
	}
	out := make([]*TopVendedorResolver, 0, len(filas))
	for _, fila := range filas {
		out = append(out, &TopVendedorResolver{fila: fila})
	}
	return out, nil
}

func (r *Resolver) BuscarProducto(ctx context.Context, args struct{ Texto string }) ([]*ProductoResolver, error) {
	productos, err := r.productos.Buscar(ctx, args.Texto)
	if err != nil {
		return nil, r.traducir("buscarProducto", err)
	}
	return productosResolver(productos), nil
}

// ─── Mutation ────────────────────────────────────────────────────────────────

func (r *Resolver) NuevoUsuario(ctx context.Context, args struct{ Input UsuarioInput }) (*UsuarioResolver, error) {
	usuario, err := r.auth.Registrar(ctx, dto.UsuarioInput{
		Nombre:   args.Input.Nombre,
		Apellido: args.Input.Apellido,
		Email:    args.Input.Email,
		Password: args.Input.Password,
	})
	if err != nil {
		return nil, r.traducir("nuevoUsuario", err)
	}
	return &UsuarioResolver{u: usuario}, nil
}

func (r *Resolver) AutenticarUsuario(ctx context.Context, args struct{ Input AutenticarInput }) (*TokenResolver, error) {
	token, err := r.auth.Autenticar(ctx, dto.AutenticarInput{
		Email:    args.Input.Email,
		Password: args.Input.Password,
	})
	if err != nil {
		return nil, r.traducir("autenticarUsuario", err)
	}
	return &TokenResolver{token: token}, nil
}

func (r *Resolver) NuevoProducto(ctx context.Context, args struct{ Input ProductoInput }) (*ProductoResolver, error) {
	producto, err := r.productos.Crear(ctx, productoDTO(args.Input))
	if err != nil {
		return nil, r.traducir("nuevoProducto", err)
	}
	return &ProductoResolver{p: producto}, nil
}

func (r *Resolver) ActualizarProducto(ctx context.Context, args struct {
	ID    graphql.ID
	Input ProductoInput
}) (*ProductoResolver, error) {
	producto, err := r.productos.Actualizar(ctx, string(args.ID), productoDTO(args.Input))
	if err != nil {
		return nil, r.traducir("actualizarProducto", err)
	}
	return &ProductoResolver{p: producto}, nil
}

func (r *Resolver) EliminarProducto(ctx context.Context, args struct{ ID graphql.ID }) (string, error) {
	if err := r.productos.Eliminar(ctx, string(args.ID)); err != nil {
		return "", r.traducir("eliminarProducto", err)
	}
	return "producto eliminado", nil
}

func (r *Resolver) NuevoCliente(ctx context.Context, args struct{ Input ClienteInput }) (*ClienteResolver, error) {
	actor, err := auth.ActorRequerido(ctx)
	if err != nil {
		return nil, err
	}
	cliente, err := r.clientes.Crear(ctx, actor, clienteDTO(args.Input))
	if err != nil {
		return nil, r.traducir("nuevoCliente", err)
	}
	return &ClienteResolver{c: cliente}, nil
}

func (r *Resolver) ActualizarCliente(ctx context.Context, args struct {
	ID    graphql.ID
	Input ClienteInput
}) (*ClienteResolver, error) {
	actor, err := auth.ActorRequerido(ctx)
	if err != nil {
		return nil, err
	}
	cliente, err := r.clientes.Actualizar(ctx, actor, string(args.ID), clienteDTO(args.Input))
	if err != nil {
		return nil, r.traducir("actualizarCliente", err)
	}
	return &ClienteResolver{c: cliente}, nil
}

func (r *Resolver) EliminarCliente(ctx context.Context, args struct{ ID graphql.ID }) (string, error) {
	actor, err := auth.ActorRequerido(ctx)
	if err != nil {
		return "", err
	}
	if err := r.clientes.Eliminar(ctx, actor, string(args.ID)); err != nil {
		return "", r.traducir("eliminarCliente", err)
	}
	return "cliente eliminado", nil
}

func (r *Resolver) NuevoPedido(ctx context.Context, args struct{ Input PedidoInput }) (*PedidoResolver, error) {
	actor, err := auth.ActorRequerido(ctx)
	if err != nil {
		return nil, err
	}
	pedido, err := r.pedidos.Crear(ctx, actor, dto.PedidoInput{
		Pedido:  articulosDTO(args.Input.Pedido),
		Total:   args.Input.Total,
		Cliente: string(args.Input.Cliente),
		Estado:  args.Input.Estado,
	})
	if err != nil {
		return nil, r.traducir("nuevoPedido", err)
	}
	return &PedidoResolver{p: pedido, raiz: r}, nil
}

func (r *Resolver) ActualizarPedido(ctx context.Context, args struct {
	ID    graphql.ID
	Input PedidoActualizarInput
}) (*PedidoResolver, error) {
	actor, err := auth.ActorRequerido(ctx)
	if err != nil {
		return nil, err
	}
	in := dto.PedidoActualizarInput{
		Total:   args.Input.Total,
		Cliente: string(args.Input.Cliente),
		Estado:  args.Input.Estado,
	}
	if args.Input.Pedido != nil {
		in.Pedido = articulosDTO(*args.Input.Pedido)
	}
	pedido, err := r.pedidos.Actualizar(ctx, actor, string(args.ID), in)
	if err != nil {
		return nil, r.traducir("actualizarPedido", err)
	}
	return &PedidoResolver{p: pedido, raiz: r}, nil
}

func (r *Resolver) EliminarPedido(ctx context.Context, args struct{ ID graphql.ID }) (string, error) {
	actor, err := auth.ActorRequerido(ctx)
	if err != nil {
		return "", err
	}
	if err := r.pedidos.Eliminar(ctx, actor, string(args.ID)); err != nil {
		return "", r.traducir("eliminarPedido", err)
	}
	return "Pedido eliminado", nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func productoDTO(in ProductoInput) dto.ProductoInput {
	return dto.ProductoInput{
		Nombre:     in.Nombre,
		Existencia: int(in.Existencia),
		Precio:     in.Precio,
	}
}

func clienteDTO(in ClienteInput) dto.ClienteInput {
	return dto.ClienteInput{
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Empresa:  in.Empresa,
		Email:    in.Email,
		Telefono: in.Telefono,
	}
}

func productosResolver(productos []*entity.Producto) []*ProductoResolver {
	out := make([]*ProductoResolver, 0, len(productos))
	for _, p := range productos {
		out = append(out, &ProductoResolver{p: p})
	}
	return out
}

func clientesResolver(clientes []*entity.Cliente) []*ClienteResolver {
	out := make([]*ClienteResolver, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, &ClienteResolver{c: c})
	}
	return out
}

func (r *Resolver) pedidosResolver(pedidos []*entity.Pedido) []*PedidoResolver {
	out := make([]*PedidoResolver, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, &PedidoResolver{p: p, raiz: r})
	}
	return out
}
