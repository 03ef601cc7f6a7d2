package entity

// Project is a committed piece of work. The entity is declared for the schema
// but no service operation exposes it yet; leads are expected to graduate
// into projects in a later iteration.
type Project struct {
	ID          int64
	Idea        string
	Description string
}
