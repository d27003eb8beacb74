package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"github.com/jhoicas/crm-graphql-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo adaptador de UsuarioRepository sobre la colección usuarios.
type UsuarioRepo struct {
	col *mongo.Collection
}

// NewUsuarioRepository construye el adaptador.
func NewUsuarioRepository(db *mongo.Database) *UsuarioRepo {
	return &UsuarioRepo{col: db.Collection(colUsuarios)}
}

// Crear persiste un nuevo usuario.
func (r *UsuarioRepo) Crear(ctx context.Context, usuario *entity.Usuario) error {
	if _, err := r.col.InsertOne(ctx, usuario); err != nil {
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

// ObtenerPorID devuelve un usuario por id, o (nil, nil) si no existe.
func (r *UsuarioRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Usuario, error) {
	return r.obtener(ctx, bson.M{"_id": id})
}

// ObtenerPorEmail devuelve un usuario por email, o (nil, nil) si no existe.
func (r *UsuarioRepo) ObtenerPorEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	return r.obtener(ctx, bson.M{"email": email})
}

func (r *UsuarioRepo) obtener(ctx context.Context, filtro bson.M) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.col.FindOne(ctx, filtro).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	return &u, nil
}
