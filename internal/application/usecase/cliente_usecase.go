package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-graphql-api/internal/application/auth"
	"github.com/jhoicas/crm-graphql-api/internal/application/dto"
	"github.com/jhoicas/crm-graphql-api/internal/domain"
	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"github.com/jhoicas/crm-graphql-api/internal/domain/repository"
)

// ClienteUseCase casos de uso para clientes. Lectura puntual, actualización y
// borrado pasan por la regla de propietario; el listado global no (alcance
// vigente, ver DESIGN.md).
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Crear registra un cliente asignando como vendedor al actor. Devuelve
// ErrClienteRegistrado si el email ya está asignado.
func (uc *ClienteUseCase) Crear(ctx context.Context, actor auth.Actor, in dto.ClienteInput) (*entity.Cliente, error) {
	existente, err := uc.repo.ObtenerPorEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrClienteRegistrado
	}
	cliente := &entity.Cliente{
		ID:       uuid.New().String(),
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Empresa:  in.Empresa,
		Email:    in.Email,
		Vendedor: actor.ID,
		Creado:   time.Now(),
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if err := uc.repo.Crear(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

// Listar devuelve todos los clientes sin filtrar por vendedor.
func (uc *ClienteUseCase) Listar(ctx context.Context) ([]*entity.Cliente, error) {
	return uc.repo.Listar(ctx)
}

// ListarDelVendedor devuelve los clientes del actor.
func (uc *ClienteUseCase) ListarDelVendedor(ctx context.Context, actor auth.Actor) ([]*entity.Cliente, error) {
	return uc.repo.ListarPorVendedor(ctx, actor.ID)
}

// Obtener devuelve un cliente por id. Solo el vendedor propietario puede
// verlo.
func (uc *ClienteUseCase) Obtener(ctx context.Context, actor auth.Actor, id string) (*entity.Cliente, error) {
	cliente, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNoExiste
	}
	if err := domain.VerificarPropietario(cliente.Vendedor, actor.ID); err != nil {
		return nil, err
	}
	return cliente, nil
}

// Actualizar modifica un cliente del actor. El vendedor asignado no cambia.
func (uc *ClienteUseCase) Actualizar(ctx context.Context, actor auth.Actor, id string, in dto.ClienteInput) (*entity.Cliente, error) {
	cliente, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNoExiste
	}
	if err := domain.VerificarPropietario(cliente.Vendedor, actor.ID); err != nil {
		return nil, err
	}
	actualizado, err := uc.repo.Actualizar(ctx, id, repository.ClienteCambios{
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Empresa:  in.Empresa,
		Email:    in.Email,
		Telefono: in.Telefono,
	})
	if err != nil {
		return nil, err
	}
	if actualizado == nil {
		return nil, domain.ErrClienteNoExiste
	}
	return actualizado, nil
}

// Eliminar borra un cliente del actor.
func (uc *ClienteUseCase) Eliminar(ctx context.Context, actor auth.Actor, id string) error {
	cliente, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrClienteNoExiste
	}
	if err := domain.VerificarPropietario(cliente.Vendedor, actor.ID); err != nil {
		return err
	}
	return uc.repo.Eliminar(ctx, id)
}
