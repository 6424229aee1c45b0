package models

import "time"

// DTO каталога: структуры ответа продуктового сервиса (JSON по проводу).
type Product struct {
	ProductID    int       `json:"productId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Amount       int       `json:"amount"`
	UserID       int       `json:"userId"`
	CategoryID   int       `json:"categoryId"`
	CreationDate time.Time `json:"creationDate"`
	ModifiedDate time.Time `json:"modifiedDate"`
	ImagePaths   []string  `json:"imagePaths,omitempty"`
}

type ProductList struct {
	Items      []Product `json:"items"`
	TotalCount int       `json:"totalCount"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}

type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Amount       int     `json:"amount" binding:"required,gte=0"`
	CategoryName string  `json:"categoryName" binding:"required"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Amount      int     `json:"amount"`
}

// ProductFilter — параметры публичного поиска, прокидываются в query string.
type ProductFilter struct {
	Search     string   `form:"search"`
	CategoryID int      `form:"category_id"`
	MinPrice   *float64 `form:"min_price"`
	MaxPrice   *float64 `form:"max_price"`
	Available  *bool    `form:"available"`
	Page       int      `form:"page"`
	PageSize   int      `form:"page_size"`
}
