package memoria

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"github.com/jhoicas/crm-graphql-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación en memoria de ClienteRepository.
type ClienteRepo struct {
	mu       sync.RWMutex
	orden    []string
	clientes map[string]*entity.Cliente
}

// NewClienteRepository construye el repositorio en memoria.
func NewClienteRepository() *ClienteRepo {
	return &ClienteRepo{clientes: make(map[string]*entity.Cliente)}
}

func (r *ClienteRepo) Crear(ctx context.Context, cliente *entity.Cliente) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if cliente.ID == "" {
		cliente.ID = uuid.New().String()
	}
	r.orden = append(r.orden, cliente.ID)
	r.clientes[cliente.ID] = clonarCliente(cliente)
	return nil
}

func (r *ClienteRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Cliente, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clonarCliente(r.clientes[id]), nil
}

func (r *ClienteRepo) ObtenerPorEmail(ctx context.Context, email string) (*entity.Cliente, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clientes {
		if c.Email == email {
			return clonarCliente(c), nil
		}
	}
	return nil, nil
}

func (r *ClienteRepo) Listar(ctx context.Context) ([]*entity.Cliente, error) {
	return r.listar(func(*entity.Cliente) bool { return true })
}

func (r *ClienteRepo) ListarPorVendedor(ctx context.Context, vendedorID string) ([]*entity.Cliente, error) {
	return r.listar(func(c *entity.Cliente) bool { return c.Vendedor == vendedorID })
}

func (r *ClienteRepo) listar(filtro func(*entity.Cliente) bool) ([]*entity.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var lista []*entity.Cliente
	for _, id := range r.orden {
		if c, ok := r.clientes[id]; ok && filtro(c) {
			lista = append(lista, clonarCliente(c))
		}
	}
	return lista, nil
}

func (r *ClienteRepo) Actualizar(ctx context.Context, id string, cambios repository.ClienteCambios) (*entity.Cliente, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	actual, ok := r.clientes[id]
	if !ok {
		return nil, nil
	}
	actual.Nombre = cambios.Nombre
	actual.Apellido = cambios.Apellido
	actual.Empresa = cambios.Empresa
	actual.Email = cambios.Email
	if cambios.Telefono != nil {
		actual.Telefono = *cambios.Telefono
	}
	return clonarCliente(actual), nil
}

func (r *ClienteRepo) Eliminar(ctx context.Context, id string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clientes, id)
	return nil
}

func clonarCliente(c *entity.Cliente) *entity.Cliente {
	if c == nil {
		return nil
	}
	clon := *c
	return &clon
}
