package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-graphql-api/internal/application/dto"
	"github.com/jhoicas/crm-graphql-api/internal/domain"
	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"github.com/jhoicas/crm-graphql-api/internal/domain/repository"
)

// Resultados de la busqueda de texto, tope del comportamiento vigente.
const limiteBusquedaProductos = 10

// ProductoUseCase casos de uso CRUD para productos. El CRUD de productos es
// global: no pasa por la regla de propietario.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Crear crea un nuevo producto.
func (uc *ProductoUseCase) Crear(ctx context.Context, in dto.ProductoInput) (*entity.Producto, error) {
	producto := &entity.Producto{
		ID:         uuid.New().String(),
		Nombre:     in.Nombre,
		Existencia: in.Existencia,
		Precio:     in.Precio,
		Creado:     time.Now(),
	}
	if err := uc.repo.Crear(ctx, producto); err != nil {
		return nil, err
	}
	return producto, nil
}

// Listar devuelve todos los productos.
func (uc *ProductoUseCase) Listar(ctx context.Context) ([]*entity.Producto, error) {
	return uc.repo.Listar(ctx)
}

// Obtener devuelve un producto por id o ErrProductoNoExiste.
func (uc *ProductoUseCase) Obtener(ctx context.Context, id string) (*entity.Producto, error) {
	producto, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrProductoNoExiste
	}
	return producto, nil
}

// Actualizar reemplaza los campos del producto y devuelve el documento
// actualizado.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, id string, in dto.ProductoInput) (*entity.Producto, error) {
	existente, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrProductoNoExiste
	}
	actualizado, err := uc.repo.Actualizar(ctx, id, entity.Producto{
		Nombre:     in.Nombre,
		Existencia: in.Existencia,
		Precio:     in.Precio,
	})
	if err != nil {
		return nil, err
	}
	if actualizado == nil {
		return nil, domain.ErrProductoNoExiste
	}
	return actualizado, nil
}

// Eliminar borra un producto por id. Un segundo borrado del mismo id devuelve
// ErrProductoNoExiste.
func (uc *ProductoUseCase) Eliminar(ctx context.Context, id string) error {
	existente, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return err
	}
	if existente == nil {
		return domain.ErrProductoNoExiste
	}
	return uc.repo.Eliminar(ctx, id)
}

// Buscar ejecuta la busqueda de texto sobre el catalogo, con tope de 10
// resultados.
func (uc *ProductoUseCase) Buscar(ctx context.Context, texto string) ([]*entity.Producto, error) {
	return uc.repo.Buscar(ctx, texto, limiteBusquedaProductos)
}
