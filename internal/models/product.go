package models

import "time"

// Product представляет товар каталога
type Product struct {
	UpdatedAt time.Time `json:"updated_at"`          // время последнего изменения
	ID        string    `json:"id"`                  // UUID товара
	Name      string    `json:"name"`                // отображаемое название
	Category  string    `json:"category,omitempty"`  // категория
	ImageURL  string    `json:"image_url,omitempty"` // ссылка на изображение в object storage
	Price     int64     `json:"price"`               // цена в минимальных единицах валюты
	Stock     int       `json:"stock"`               // доступный остаток
}

// SameDisplay reports whether the fields a shopper sees (price and name) match.
func (p Product) SameDisplay(other Product) bool {
	return p.Price == other.Price && p.Name == other.Name
}
