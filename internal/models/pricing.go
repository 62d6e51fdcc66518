package models

// ProductPrice - наблюдение цены товара, цена хранится в центах
type ProductPrice struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Price     int64     `json:"price"`
	CreatedAt Timestamp `json:"created_at"`
}

type ProductPricePayload struct {
	ProductID   *int64    `json:"product_id,omitempty"`
	ProductName *string   `json:"product_name,omitempty"`
	Price       float64   `json:"price"`
	CreatedAt   Timestamp `json:"created_at"`
}

// ProductPriceDto - цена в долларах, округленная до центов
type ProductPriceDto struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Price     float64   `json:"price"`
	CreatedAt Timestamp `json:"created_at"`
}

type CreateProductPriceResponse struct {
	ProductPrice ProductPriceDto `json:"product_price"`
	Product      Product         `json:"product"`
}
