package entity

import "time"

// Cliente representa un cliente del CRM. Vendedor es el usuario propietario,
// asignado al crearlo e inmutable despues.
type Cliente struct {
	ID       string    `bson:"_id,omitempty"`
	Nombre   string    `bson:"nombre"`
	Apellido string    `bson:"apellido"`
	Empresa  string    `bson:"empresa"`
	Email    string    `bson:"email"`
	Telefono string    `bson:"telefono,omitempty"`
	Vendedor string    `bson:"vendedor"`
	Creado   time.Time `bson:"creado"`
}
