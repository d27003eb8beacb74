package memoria

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"github.com/jhoicas/crm-graphql-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación en memoria de UsuarioRepository. Se usa en tests
// y para correr la API sin almacén externo.
type UsuarioRepo struct {
	mu       sync.RWMutex
	usuarios map[string]*entity.Usuario
}

// NewUsuarioRepository construye el repositorio en memoria.
func NewUsuarioRepository() *UsuarioRepo {
	return &UsuarioRepo{usuarios: make(map[string]*entity.Usuario)}
}

func (r *UsuarioRepo) Crear(ctx context.Context, usuario *entity.Usuario) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if usuario.ID == "" {
		usuario.ID = uuid.New().String()
	}
	r.usuarios[usuario.ID] = clonarUsuario(usuario)
	return nil
}

func (r *UsuarioRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Usuario, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clonarUsuario(r.usuarios[id]), nil
}

func (r *UsuarioRepo) ObtenerPorEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.usuarios {
		if u.Email == email {
			return clonarUsuario(u), nil
		}
	}
	return nil, nil
}

func clonarUsuario(u *entity.Usuario) *entity.Usuario {
	if u == nil {
		return nil
	}
	clon := *u
	return &clon
}
