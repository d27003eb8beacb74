package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-graphql-api/internal/application/auth"
	"github.com/jhoicas/crm-graphql-api/internal/application/dto"
	"github.com/jhoicas/crm-graphql-api/internal/domain"
	"github.com/jhoicas/crm-graphql-api/internal/infrastructure/memoria"
)

const testSecret = "test-secret-key-for-unit-tests"

func nuevoUseCase() *auth.UseCase {
	return auth.NewUseCase(memoria.NewUsuarioRepository(), auth.JWTConfig{
		Secret:   testSecret,
		ExpHoras: 24,
	})
}

func registrar(t *testing.T, uc *auth.UseCase, email string) string {
	t.Helper()
	usuario, err := uc.Registrar(context.Background(), dto.UsuarioInput{
		Nombre:   "Juan",
		Apellido: "Pérez",
		Email:    email,
		Password: "secreto123",
	})
	require.NoError(t, err)
	return usuario.ID
}

func TestRegistrar_GuardaHashNuncaElPlano(t *testing.T) {
	uc := nuevoUseCase()
	usuario, err := uc.Registrar(context.Background(), dto.UsuarioInput{
		Nombre:   "Juan",
		Apellido: "Pérez",
		Email:    "juan@correo.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, usuario.ID)
	assert.NotEqual(t, "secreto123", usuario.Password, "el password no debe persistirse en plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte("secreto123")))
}

func TestRegistrar_EmailDuplicado(t *testing.T) {
	uc := nuevoUseCase()
	registrar(t, uc, "juan@correo.com")

	_, err := uc.Registrar(context.Background(), dto.UsuarioInput{
		Nombre:   "Otro",
		Apellido: "Usuario",
		Email:    "juan@correo.com",
		Password: "distinto",
	})
	assert.ErrorIs(t, err, domain.ErrUsuarioRegistrado)

	// el primero sigue recuperable
	token, err := uc.Autenticar(context.Background(), dto.AutenticarInput{
		Email:    "juan@correo.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAutenticar_UsuarioNoExiste(t *testing.T) {
	uc := nuevoUseCase()
	_, err := uc.Autenticar(context.Background(), dto.AutenticarInput{
		Email:    "nadie@correo.com",
		Password: "lo-que-sea",
	})
	assert.ErrorIs(t, err, domain.ErrUsuarioNoExiste)
}

func TestAutenticar_PasswordIncorrecto(t *testing.T) {
	uc := nuevoUseCase()
	registrar(t, uc, "juan@correo.com")

	_, err := uc.Autenticar(context.Background(), dto.AutenticarInput{
		Email:    "juan@correo.com",
		Password: "equivocado",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordIncorrecto)
}

func TestAutenticarYVerificar_RoundTrip(t *testing.T) {
	uc := nuevoUseCase()
	id := registrar(t, uc, "juan@correo.com")

	token, err := uc.Autenticar(context.Background(), dto.AutenticarInput{
		Email:    "juan@correo.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	actor, ok := uc.Verificar(token)
	require.True(t, ok, "un token recién emitido debe verificar")
	assert.Equal(t, id, actor.ID)
	assert.Equal(t, "Juan", actor.Nombre)
	assert.Equal(t, "Pérez", actor.Apellido)
}

func TestVerificar_TokenInvalidoEsAnonimo(t *testing.T) {
	uc := nuevoUseCase()

	// ausencia, basura y manipulación producen contexto anónimo, no error
	_, ok := uc.Verificar("")
	assert.False(t, ok)

	_, ok = uc.Verificar("token.invalido.aqui")
	assert.False(t, ok)

	token, err := uc.Autenticar(context.Background(), dto.AutenticarInput{
		Email:    "nadie@correo.com",
		Password: "x",
	})
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestActorRequerido(t *testing.T) {
	_, err := auth.ActorRequerido(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoAutenticado)

	ctx := auth.ContextoConActor(context.Background(), auth.Actor{ID: "v1"})
	actor, err := auth.ActorRequerido(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v1", actor.ID)
}
