package model

// Package представляет туристический пакет из каталога (название, направление, цена).
type Package struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Destination string  `db:"destination" json:"destination"`
	Price       float64 `db:"price" json:"price"`
}
