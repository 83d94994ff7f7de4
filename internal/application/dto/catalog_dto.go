package dto

import "encoding/json"

// CategoryEntry un elemento del archivo JSON de categorías.
// Products admite objetos de producto o valores sueltos (se conservan tal cual).
type CategoryEntry struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Products    []json.RawMessage `json:"products"`
}

// ImportSummary resumen de una importación.
type ImportSummary struct {
	Categories int `json:"categories"`
	Products   int `json:"products"`
	Merged     int `json:"merged"`  // duplicados fusionados por nombre
	Skipped    int `json:"skipped"` // precio o cantidad inválidos
}
