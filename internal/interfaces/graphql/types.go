package graphql

import (
	"context"
	"time"

	"github.com/graph-gophers/graphql-go"
	"github.com/jhoicas/crm-graphql-api/internal/application/dto"
	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
)

// Inputs de las mutaciones, con los tipos escalares del motor GraphQL. Se
// traducen a los DTO planos de la capa de aplicación.

type UsuarioInput struct {
	Nombre   string
	Apellido string
	Email    string
	Password string
}

type AutenticarInput struct {
	Email    string
	Password string
}

type ProductoInput struct {
	Nombre     string
	Existencia int32
	Precio     float64
}

type ClienteInput struct {
	Nombre   string
	Apellido string
	Empresa  string
	Email    string
	Telefono *string
}

type PedidoProductoInput struct {
	ID       graphql.ID
	Cantidad int32
}

type PedidoInput struct {
	Pedido  []PedidoProductoInput
	Total   float64
	Cliente graphql.ID
	Estado  *string
}

type PedidoActualizarInput struct {
	Pedido  *[]PedidoProductoInput
	Total   *float64
	Cliente graphql.ID
	Estado  *string
}

func articulosDTO(articulos []PedidoProductoInput) []dto.ArticuloInput {
	out := make([]dto.ArticuloInput, 0, len(articulos))
	for _, a := range articulos {
		out = append(out, dto.ArticuloInput{
			ProductoID: string(a.ID),
			Cantidad:   int(a.Cantidad),
		})
	}
	return out
}

// Resolvers de entidad: envuelven las entidades de dominio y exponen los
// campos del schema.

type UsuarioResolver struct {
	u *entity.Usuario
}

func (r *UsuarioResolver) ID() graphql.ID   { return graphql.ID(r.u.ID) }
func (r *UsuarioResolver) Nombre() string   { return r.u.Nombre }
func (r *UsuarioResolver) Apellido() string { return r.u.Apellido }
func (r *UsuarioResolver) Email() string    { return r.u.Email }
func (r *UsuarioResolver) Creado() string   { return r.u.Creado.Format(time.RFC3339) }

type TokenResolver struct {
	token string
}

func (r *TokenResolver) Token() string { return r.token }

type ProductoResolver struct {
	p *entity.Producto
}

func (r *ProductoResolver) ID() graphql.ID    { return graphql.ID(r.p.ID) }
func (r *ProductoResolver) Nombre() string    { return r.p.Nombre }
func (r *ProductoResolver) Existencia() int32 { return int32(r.p.Existencia) }
func (r *ProductoResolver) Precio() float64   { return r.p.Precio }
func (r *ProductoResolver) Creado() string    { return r.p.Creado.Format(time.RFC3339) }

type ClienteResolver struct {
	c *entity.Cliente
}

func (r *ClienteResolver) ID() graphql.ID   { return graphql.ID(r.c.ID) }
func (r *ClienteResolver) Nombre() string   { return r.c.Nombre }
func (r *ClienteResolver) Apellido() string { return r.c.Apellido }
func (r *ClienteResolver) Empresa() string  { return r.c.Empresa }
func (r *ClienteResolver) Email() string    { return r.c.Email }
func (r *ClienteResolver) Telefono() *string {
	if r.c.Telefono == "" {
		return nil
	}
	t := r.c.Telefono
	return &t
}
func (r *ClienteResolver) Vendedor() graphql.ID { return graphql.ID(r.c.Vendedor) }
func (r *ClienteResolver) Creado() string       { return r.c.Creado.Format(time.RFC3339) }

type ArticuloResolver struct {
	a entity.ArticuloPedido
}

func (r *ArticuloResolver) ID() graphql.ID  { return graphql.ID(r.a.ProductoID) }
func (r *ArticuloResolver) Cantidad() int32 { return int32(r.a.Cantidad) }
func (r *ArticuloResolver) Nombre() string  { return r.a.Nombre }
func (r *ArticuloResolver) Precio() float64 { return r.a.Precio }

// PedidoResolver resuelve el cliente del pedido de forma perezosa contra el
// repositorio; un cliente ya eliminado produce null, no un error.
type PedidoResolver struct {
	p    *entity.Pedido
	raiz *Resolver
}

func (r *PedidoResolver) ID() graphql.ID { return graphql.ID(r.p.ID) }

func (r *PedidoResolver) Pedido() []*ArticuloResolver {
	articulos := make([]*ArticuloResolver, 0, len(r.p.Pedido))
	for _, a := range r.p.Pedido {
		articulos = append(articulos, &ArticuloResolver{a: a})
	}
	return articulos
}

func (r *PedidoResolver) Total() float64 { return r.p.Total }

func (r *PedidoResolver) Cliente(ctx context.Context) (*ClienteResolver, error) {
	cliente, err := r.raiz.clienteRepo.ObtenerPorID(ctx, r.p.Cliente)
	if err != nil {
		return nil, r.raiz.traducir("pedido.cliente", err)
	}
	if cliente == nil {
		return nil, nil
	}
	return &ClienteResolver{c: cliente}, nil
}

func (r *PedidoResolver) Vendedor() graphql.ID { return graphql.ID(r.p.Vendedor) }
func (r *PedidoResolver) Estado() string       { return r.p.Estado }
func (r *PedidoResolver) Creado() string       { return r.p.Creado.Format(time.RFC3339) }

type TopClienteResolver struct {
	fila *entity.TopCliente
}

func (r *TopClienteResolver) Total() float64 { return r.fila.Total }

func (r *TopClienteResolver) Cliente() []*ClienteResolver {
	clientes := make([]*ClienteResolver, 0, len(r.fila.Cliente))
	for i := range r.fila.Cliente {
		clientes = append(clientes, &ClienteResolver{c: &r.fila.Cliente[i]})
	}
	return clientes
}

type TopVendedorResolver struct {
	fila *entity.TopVendedor
}

func (r *TopVendedorResolver) Total() float64 { return r.fila.Total }

func (r *TopVendedorResolver) Vendedor() []*UsuarioResolver {
	usuarios := make([]*UsuarioResolver, 0, len(r.fila.Vendedor))
	for i := range r.fila.Vendedor {
		usuarios = append(usuarios, &UsuarioResolver{u: &r.fila.Vendedor[i]})
	}
	return usuarios
}
