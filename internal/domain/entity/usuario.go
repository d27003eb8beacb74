package entity

import "time"

// Usuario representa un vendedor del CRM.
type Usuario struct {
	ID       string    `bson:"_id,omitempty"`
	Nombre   string    `bson:"nombre"`
	Apellido string    `bson:"apellido"`
	Email    string    `bson:"email"`
	Password string    `bson:"password"` // hash bcrypt, nunca el texto plano
	Creado   time.Time `bson:"creado"`
}
