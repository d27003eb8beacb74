package memoria

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"github.com/jhoicas/crm-graphql-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación en memoria de ProductoRepository. La búsqueda
// de texto se aproxima con coincidencia de subcadena sin distinguir
// mayúsculas.
type ProductoRepo struct {
	mu        sync.RWMutex
	orden     []string
	productos map[string]*entity.Producto
}

// NewProductoRepository construye el repositorio en memoria.
func NewProductoRepository() *ProductoRepo {
	return &ProductoRepo{productos: make(map[string]*entity.Producto)}
}

func (r *ProductoRepo) Crear(ctx context.Context, producto *entity.Producto) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if producto.ID == "" {
		producto.ID = uuid.New().String()
	}
	r.orden = append(r.orden, producto.ID)
	r.productos[producto.ID] = clonarProducto(producto)
	return nil
}

func (r *ProductoRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Producto, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clonarProducto(r.productos[id]), nil
}

func (r *ProductoRepo) Listar(ctx context.Context) ([]*entity.Producto, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	lista := make([]*entity.Producto, 0, len(r.productos))
	for _, id := range r.orden {
		if p, ok := r.productos[id]; ok {
			lista = append(lista, clonarProducto(p))
		}
	}
	return lista, nil
}

func (r *ProductoRepo) Actualizar(ctx context.Context, id string, producto entity.Producto) (*entity.Producto, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	actual, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	actual.Nombre = producto.Nombre
	actual.Existencia = producto.Existencia
	actual.Precio = producto.Precio
	return clonarProducto(actual), nil
}

func (r *ProductoRepo) Eliminar(ctx context.Context, id string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.productos, id)
	return nil
}

func (r *ProductoRepo) Buscar(ctx context.Context, texto string, limite int) ([]*entity.Producto, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	buscado := strings.ToLower(texto)
	var lista []*entity.Producto
	for _, id := range r.orden {
		p, ok := r.productos[id]
		if !ok || !strings.Contains(strings.ToLower(p.Nombre), buscado) {
			continue
		}
		lista = append(lista, clonarProducto(p))
		if len(lista) == limite {
			break
		}
	}
	return lista, nil
}

func clonarProducto(p *entity.Producto) *entity.Producto {
	if p == nil {
		return nil
	}
	clon := *p
	return &clon
}
