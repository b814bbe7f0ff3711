// Package impl contains the use case implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "comanda/internal/delivery/context"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	"comanda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	ingredientRepo repository.IngredientRepository
	productRepo    repository.ProductRepository
	viewCache      service.ViewCache
	logger         *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	IngredientRepo repository.IngredientRepository
	ProductRepo    repository.ProductRepository
	ViewCache      service.ViewCache
	Logger         *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		ingredientRepo: params.IngredientRepo,
		productRepo:    params.ProductRepo,
		viewCache:      params.ViewCache,
		logger:         params.Logger,
	}
}

// log returns the request-scoped logger when the call came through the HTTP
// middleware, falling back to the service logger otherwise.
func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListIngredients retrieves all ingredients ordered by name.
func (s *catalogService) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	ingredients, err := s.ingredientRepo.ListIngredients(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	return ingredients, nil
}

// CreateIngredient validates and persists a new ingredient.
func (s *catalogService) CreateIngredient(ctx context.Context, input usecase.IngredientInput) (*entity.Ingredient, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrNameRequired
	}
	if input.ExtraCost.IsNegative() {
		return nil, domainerrors.ErrNegativeExtraCost
	}

	ingredient := &entity.Ingredient{
		Name:      name,
		ExtraCost: input.ExtraCost,
	}

	if err := s.ingredientRepo.CreateIngredient(ctx, ingredient); err != nil {
		s.log(ctx).ErrorContext(ctx, "create ingredient failed", slog.Any("error", err))

		return nil, domainerrors.ErrCatalogSaveFailed
	}

	s.invalidateCatalogViews(ctx)

	return ingredient, nil
}

// UpdateIngredient validates and applies changes to an existing ingredient.
func (s *catalogService) UpdateIngredient(ctx context.Context, id int64, input usecase.IngredientInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domainerrors.ErrNameRequired
	}
	if input.ExtraCost.IsNegative() {
		return domainerrors.ErrNegativeExtraCost
	}

	ingredient := &entity.Ingredient{
		ID:        id,
		Name:      name,
		ExtraCost: input.ExtraCost,
	}

	if err := s.ingredientRepo.UpdateIngredient(ctx, ingredient); err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return domainerrors.ErrIngredientNotFound
		}
		s.log(ctx).ErrorContext(ctx, "update ingredient failed", slog.Int64("id", id), slog.Any("error", err))

		return domainerrors.ErrCatalogSaveFailed
	}

	s.invalidateCatalogViews(ctx)

	return nil
}

// DeleteIngredient removes an ingredient from the catalog.
func (s *catalogService) DeleteIngredient(ctx context.Context, id int64) error {
	if err := s.ingredientRepo.DeleteIngredient(ctx, id); err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return domainerrors.ErrIngredientNotFound
		}
		s.log(ctx).ErrorContext(ctx, "delete ingredient failed", slog.Int64("id", id), slog.Any("error", err))

		return domainerrors.ErrCatalogSaveFailed
	}

	s.invalidateCatalogViews(ctx)

	return nil
}

// ListProducts retrieves all products with their base ingredients.
func (s *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateProduct validates and persists a new product with its ingredient set.
func (s *catalogService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrNameRequired
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrNegativePrice
	}

	product := &entity.Product{
		Name:  name,
		Price: input.Price,
	}

	if err := s.productRepo.CreateProduct(ctx, product, input.IngredientIDs); err != nil {
		s.log(ctx).ErrorContext(ctx, "create product failed", slog.Any("error", err))

		return nil, domainerrors.ErrCatalogSaveFailed
	}

	s.invalidateCatalogViews(ctx)

	return product, nil
}

// UpdateProduct validates and applies changes to an existing product,
// replacing its whole ingredient association set.
func (s *catalogService) UpdateProduct(ctx context.Context, id int64, input usecase.ProductInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domainerrors.ErrNameRequired
	}
	if input.Price.IsNegative() {
		return domainerrors.ErrNegativePrice
	}

	product := &entity.Product{
		ID:    id,
		Name:  name,
		Price: input.Price,
	}

	if err := s.productRepo.UpdateProduct(ctx, product, input.IngredientIDs); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		s.log(ctx).ErrorContext(ctx, "update product failed", slog.Int64("id", id), slog.Any("error", err))

		return domainerrors.ErrCatalogSaveFailed
	}

	s.invalidateCatalogViews(ctx)

	return nil
}

// DeleteProduct removes a product from the catalog.
func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		s.log(ctx).ErrorContext(ctx, "delete product failed", slog.Int64("id", id), slog.Any("error", err))

		return domainerrors.ErrCatalogSaveFailed
	}

	s.invalidateCatalogViews(ctx)

	return nil
}

// invalidateCatalogViews refreshes the screens that render catalog data: the
// catalog itself and the order-entry form that offers products and extras.
func (s *catalogService) invalidateCatalogViews(ctx context.Context) {
	s.viewCache.Invalidate(ctx, service.ViewCatalog, service.ViewOrderEntry)
}
