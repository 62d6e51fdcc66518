package services

import (
	"context"
	"errors"
	"strings"

	"finance-tracker/internal/models"
	"finance-tracker/internal/storage"
)

// finder описывает поиск и создание одного вида сущностей пользователя
type finder[T any] struct {
	kind   string
	get    func(ctx context.Context, userID, id int64) (*T, error)
	find   func(ctx context.Context, userID int64, name string) (*T, error)
	create func(ctx context.Context, userID int64, name string) (*T, error)
}

// resolve находит сущность по ссылке или создает ее по имени.
// Пустая ссылка дает nil без ошибки; чужой или несуществующий id - ошибка валидации.
func resolve[T any](ctx context.Context, userID int64, ref models.Ref, f finder[T]) (*T, error) {
	if ref.ID != nil {
		entity, err := f.get(ctx, userID, *ref.ID)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, validationError("%s %d not found", f.kind, *ref.ID)
		}
		return entity, err
	}

	name := strings.TrimSpace(ref.Name)
	if name == "" {
		return nil, nil
	}

	entity, err := f.find(ctx, userID, name)
	if errors.Is(err, storage.ErrNotFound) {
		return f.create(ctx, userID, name)
	}
	return entity, err
}

func categoryFinder(repo storage.Repository) finder[models.Category] {
	return finder[models.Category]{
		kind: "Category",
		get:  repo.GetCategory,
		find: repo.FindCategoryByName,
		create: func(ctx context.Context, userID int64, name string) (*models.Category, error) {
			// Созданная по имени категория всегда верхнего уровня
			return repo.CreateCategory(ctx, userID, name, nil)
		},
	}
}

func productFinder(repo storage.Repository) finder[models.Product] {
	return finder[models.Product]{
		kind: "Product",
		get:  repo.GetProduct,
		find: repo.FindProductByName,
		create: func(ctx context.Context, userID int64, name string) (*models.Product, error) {
			return repo.CreateProduct(ctx, userID, name, nil)
		},
	}
}

func tagFinder(repo storage.Repository) finder[models.Tag] {
	return finder[models.Tag]{
		kind:   "Tag",
		get:    repo.GetTag,
		find:   repo.FindTagByName,
		create: repo.CreateTag,
	}
}

// refOf собирает ссылку из пары полей запроса; id имеет приоритет над именем
func refOf(id *int64, name *string) models.Ref {
	if id != nil {
		return models.RefByID(*id)
	}
	if name != nil {
		return models.RefByName(*name)
	}
	return models.Ref{}
}

// resolveProduct - товар обязателен: пустая ссылка дает ошибку валидации
func resolveProduct(ctx context.Context, repo storage.Repository, userID int64, id *int64, name *string) (*models.Product, error) {
	product, err := resolve(ctx, userID, refOf(id, name), productFinder(repo))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, validationError("Either product_id or product_name must be provided")
	}
	return product, nil
}
