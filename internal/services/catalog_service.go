package services

import (
	"context"
	"strings"

	"finance-tracker/internal/logger"
	"finance-tracker/internal/models"
	"finance-tracker/internal/storage"
)

// CatalogServiceImpl реализует интерфейс CatalogService
type CatalogServiceImpl struct {
	store storage.Store
}

func NewCatalogService(store storage.Store) CatalogService {
	return &CatalogServiceImpl{store: store}
}

// CreateCategory создает категорию. Родитель задается по id (должен принадлежать
// пользователю) или по имени (находится или создается верхнего уровня).
func (s *CatalogServiceImpl) CreateCategory(ctx context.Context, userID int64, payload *models.CategoryPayload) (*models.CreateCategoryResponse, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return nil, validationError("Category name cannot be empty")
	}

	var resp models.CreateCategoryResponse
	err := s.store.WithTx(ctx, func(repo storage.Repository) error {
		parent, err := resolve(ctx, userID, refOf(payload.ParentCategoryID, payload.ParentCategoryName), categoryFinder(repo))
		if err != nil {
			return err
		}

		var parentID *int64
		if parent != nil {
			parentID = &parent.ID
			dto := parent.Dto()
			resp.Parent = &dto
		}

		category, err := repo.CreateCategory(ctx, userID, name, parentID)
		if err != nil {
			return err
		}
		resp.Category = *category
		return nil
	})
	if err != nil {
		return nil, storageError(err, "create category")
	}

	logger.LogEvent(logger.EventCategoryCreated, serviceName, "sqlite", userID, map[string]interface{}{
		"category_id": resp.Category.ID,
		"name":        resp.Category.Name,
	})
	return &resp, nil
}

func (s *CatalogServiceImpl) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	var categories []models.Category
	err := s.store.WithConn(ctx, func(repo storage.Repository) error {
		var err error
		categories, err = repo.ListCategories(ctx, userID)
		return err
	})
	if err != nil {
		return nil, storageError(err, "fetch categories")
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// CreateProduct создает товар; категория по id или имени необязательна
func (s *CatalogServiceImpl) CreateProduct(ctx context.Context, userID int64, payload *models.ProductPayload) (*models.CreateProductResponse, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return nil, validationError("Product name cannot be empty")
	}

	var resp models.CreateProductResponse
	err := s.store.WithTx(ctx, func(repo storage.Repository) error {
		category, err := resolve(ctx, userID, refOf(payload.CategoryID, payload.CategoryName), categoryFinder(repo))
		if err != nil {
			return err
		}

		var categoryID *int64
		if category != nil {
			categoryID = &category.ID
			dto := category.Dto()
			resp.Category = &dto
		}

		product, err := repo.CreateProduct(ctx, userID, name, categoryID)
		if err != nil {
			return err
		}
		resp.Product = *product
		return nil
	})
	if err != nil {
		return nil, storageError(err, "create product")
	}

	logger.LogEvent(logger.EventProductCreated, serviceName, "sqlite", userID, map[string]interface{}{
		"product_id": resp.Product.ID,
		"name":       resp.Product.Name,
	})
	return &resp, nil
}

func (s *CatalogServiceImpl) ListProducts(ctx context.Context, userID int64) ([]models.ProductDto, error) {
	var products []models.Product
	err := s.store.WithConn(ctx, func(repo storage.Repository) error {
		var err error
		products, err = repo.ListProducts(ctx, userID)
		return err
	})
	if err != nil {
		return nil, storageError(err, "fetch products")
	}

	result := make([]models.ProductDto, 0, len(products))
	for _, p := range products {
		result = append(result, p.Dto())
	}
	return result, nil
}
