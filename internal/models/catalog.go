package models

// Category - категория пользователя, может ссылаться на родителя
type Category struct {
	ID               int64  `json:"id"`
	ParentCategoryID *int64 `json:"parent_category_id"`
	Name             string `json:"name"`
	UserID           int64  `json:"user_id"`
}

// CategoryPayload - запрос на создание категории.
// Родитель задается по id либо по имени.
type CategoryPayload struct {
	Name               string  `json:"name"`
	ParentCategoryID   *int64  `json:"parent_category_id,omitempty"`
	ParentCategoryName *string `json:"parent_category_name,omitempty"`
}

type CategoryDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateCategoryResponse struct {
	Category Category     `json:"category"`
	Parent   *CategoryDto `json:"parent"`
}

func (c Category) Dto() CategoryDto {
	return CategoryDto{ID: c.ID, Name: c.Name}
}

// Product - товар пользователя, категория необязательна
type Product struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	CategoryID *int64 `json:"category_id"`
	Name       string `json:"name"`
}

type ProductPayload struct {
	Name         string  `json:"name"`
	CategoryID   *int64  `json:"category_id,omitempty"`
	CategoryName *string `json:"category_name,omitempty"`
}

// ProductDto - товар без user_id
type ProductDto struct {
	ID         int64  `json:"id"`
	CategoryID *int64 `json:"category_id"`
	Name       string `json:"name"`
}

type CreateProductResponse struct {
	Product  Product      `json:"product"`
	Category *CategoryDto `json:"category"`
}

func (p Product) Dto() ProductDto {
	return ProductDto{ID: p.ID, CategoryID: p.CategoryID, Name: p.Name}
}
