package memoria

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"github.com/jhoicas/crm-graphql-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación en memoria de PedidoRepository. Recibe los
// repositorios de clientes y usuarios para resolver los $lookup de los
// reportes.
type PedidoRepo struct {
	mu       sync.RWMutex
	orden    []string
	pedidos  map[string]*entity.Pedido
	clientes *ClienteRepo
	usuarios *UsuarioRepo
}

// NewPedidoRepository construye el repositorio en memoria.
func NewPedidoRepository(clientes *ClienteRepo, usuarios *UsuarioRepo) *PedidoRepo {
	return &PedidoRepo{
		pedidos:  make(map[string]*entity.Pedido),
		clientes: clientes,
		usuarios: usuarios,
	}
}

func (r *PedidoRepo) Crear(ctx context.Context, pedido *entity.Pedido) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if pedido.ID == "" {
		pedido.ID = uuid.New().String()
	}
	r.orden = append(r.orden, pedido.ID)
	r.pedidos[pedido.ID] = clonarPedido(pedido)
	return nil
}

func (r *PedidoRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Pedido, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clonarPedido(r.pedidos[id]), nil
}

func (r *PedidoRepo) Listar(ctx context.Context) ([]*entity.Pedido, error) {
	return r.listar(func(*entity.Pedido) bool { return true })
}

func (r *PedidoRepo) ListarPorVendedor(ctx context.Context, vendedorID string) ([]*entity.Pedido, error) {
	return r.listar(func(p *entity.Pedido) bool { return p.Vendedor == vendedorID })
}

func (r *PedidoRepo) ListarPorVendedorYEstado(ctx context.Context, vendedorID, estado string) ([]*entity.Pedido, error) {
	return r.listar(func(p *entity.Pedido) bool {
		return p.Vendedor == vendedorID && p.Estado == estado
	})
}

func (r *PedidoRepo) listar(filtro func(*entity.Pedido) bool) ([]*entity.Pedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var lista []*entity.Pedido
	for _, id := range r.orden {
		if p, ok := r.pedidos[id]; ok && filtro(p) {
			lista = append(lista, clonarPedido(p))
		}
	}
	return lista, nil
}

func (r *PedidoRepo) Actualizar(ctx context.Context, id string, cambios entity.PedidoCambios) (*entity.Pedido, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	actual, ok := r.pedidos[id]
	if !ok {
		return nil, nil
	}
	if cambios.Pedido != nil {
		actual.Pedido = append([]entity.ArticuloPedido(nil), cambios.Pedido...)
	}
	if cambios.Total != nil {
		actual.Total = *cambios.Total
	}
	if cambios.Cliente != nil {
		actual.Cliente = *cambios.Cliente
	}
	if cambios.Estado != nil {
		actual.Estado = *cambios.Estado
	}
	return clonarPedido(actual), nil
}

func (r *PedidoRepo) Eliminar(ctx context.Context, id string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pedidos, id)
	return nil
}

// MejoresClientes replica la agregación del almacén: pedidos COMPLETADO
// agrupados por cliente, total sumado y orden descendente.
func (r *PedidoRepo) MejoresClientes(ctx context.Context) ([]*entity.TopCliente, error) {
	grupos, claves := r.agrupar(func(p *entity.Pedido) string { return p.Cliente })
	filas := make([]*entity.TopCliente, 0, len(claves))
	for _, clave := range claves {
		fila := &entity.TopCliente{Total: grupos[clave]}
		if cliente, _ := r.clientes.ObtenerPorID(ctx, clave); cliente != nil {
			fila.Cliente = []entity.Cliente{*cliente}
		}
		filas = append(filas, fila)
	}
	sort.SliceStable(filas, func(i, j int) bool { return filas[i].Total > filas[j].Total })
	return filas, nil
}

// MejoresVendedores replica la agregación del almacén, incluido el recorte a
// 3 filas ANTES de ordenar (comportamiento vigente que se conserva).
func (r *PedidoRepo) MejoresVendedores(ctx context.Context) ([]*entity.TopVendedor, error) {
	grupos, claves := r.agrupar(func(p *entity.Pedido) string { return p.Vendedor })
	if len(claves) > 3 {
		claves = claves[:3]
	}
	filas := make([]*entity.TopVendedor, 0, len(claves))
	for _, clave := range claves {
		fila := &entity.TopVendedor{Total: grupos[clave]}
		if usuario, _ := r.usuarios.ObtenerPorID(ctx, clave); usuario != nil {
			fila.Vendedor = []entity.Usuario{*usuario}
		}
		filas = append(filas, fila)
	}
	sort.SliceStable(filas, func(i, j int) bool { return filas[i].Total > filas[j].Total })
	return filas, nil
}

// agrupar suma totales de pedidos COMPLETADO por la clave dada, conservando
// el orden de primera aparición.
func (r *PedidoRepo) agrupar(clave func(*entity.Pedido) string) (map[string]float64, []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	grupos := make(map[string]float64)
	var claves []string
	for _, id := range r.orden {
		p, ok := r.pedidos[id]
		if !ok || p.Estado != entity.EstadoCompletado {
			continue
		}
		k := clave(p)
		if _, visto := grupos[k]; !visto {
			claves = append(claves, k)
		}
		grupos[k] += p.Total
	}
	return grupos, claves
}

func clonarPedido(p *entity.Pedido) *entity.Pedido {
	if p == nil {
		return nil
	}
	clon := *p
	clon.Pedido = append([]entity.ArticuloPedido(nil), p.Pedido...)
	return &clon
}
