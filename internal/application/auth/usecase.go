package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-graphql-api/internal/application/dto"
	"github.com/jhoicas/crm-graphql-api/internal/domain"
	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"github.com/jhoicas/crm-graphql-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/crm-graphql-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret   string
	ExpHoras int
}

// UseCase casos de uso de credenciales: registro, autenticación y
// verificación de tokens.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewUseCase construye el caso de uso de credenciales.
func NewUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Registrar crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrUsuarioRegistrado si el email ya existe.
func (uc *UseCase) Registrar(ctx context.Context, in dto.UsuarioInput) (*entity.Usuario, error) {
	existente, err := uc.usuarioRepo.ObtenerPorEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrUsuarioRegistrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		ID:       uuid.New().String(),
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Email:    in.Email,
		Password: string(hash),
		Creado:   time.Now(),
	}
	if err := uc.usuarioRepo.Crear(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// Autenticar verifica email/password y emite un token firmado con los claims
// de identidad {id, nombre, apellido}.
func (uc *UseCase) Autenticar(ctx context.Context, in dto.AutenticarInput) (string, error) {
	usuario, err := uc.usuarioRepo.ObtenerPorEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if usuario == nil {
		return "", domain.ErrUsuarioNoExiste
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(in.Password)); err != nil {
		return "", domain.ErrPasswordIncorrecto
	}
	return pkgjwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Nombre, usuario.Apellido, uc.jwtCfg.ExpHoras)
}

// Verificar decodifica el token y devuelve al actor si firma y vigencia son
// válidas. Un token ausente, malformado o expirado produce (Actor{}, false):
// el contexto queda anónimo, no es un fallo de esta capa.
func (uc *UseCase) Verificar(token string) (Actor, bool) {
	if token == "" {
		return Actor{}, false
	}
	id, nombre, apellido, err := pkgjwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return Actor{}, false
	}
	return Actor{ID: id, Nombre: nombre, Apellido: apellido}, true
}

// Usuario devuelve el perfil persistido del actor autenticado.
func (uc *UseCase) Usuario(ctx context.Context, actorID string) (*entity.Usuario, error) {
	usuario, err := uc.usuarioRepo.ObtenerPorID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoExiste
	}
	return usuario, nil
}

// ActorRequerido devuelve el actor del contexto o ErrNoAutenticado si la
// petición llegó anónima a una operación que exige identidad.
func ActorRequerido(ctx context.Context) (Actor, error) {
	actor, ok := ActorDelContexto(ctx)
	if !ok {
		return Actor{}, domain.ErrNoAutenticado
	}
	return actor, nil
}
