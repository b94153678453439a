// internal/domain/models/teacher.go
package models

// Teacher is a staff identity in the teacher directory. The collection is
// keyed by username, so the username doubles as the document _id.
//
// The directory is used by this service only as an authorization gate: a
// write operation is allowed iff the supplied username exists. Password is
// carried for compatibility with the wider system and never read here.
type Teacher struct {
	Username    string `bson:"_id"`
	DisplayName string `bson:"display_name"`
	Password    string `bson:"password,omitempty"`
}
