package sqlite

import (
	"context"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"
	"comanda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// productIngredientRow flattens the join between product_ingredients and
// ingredients for the batch association query.
type productIngredientRow struct {
	ProductID int64
	model.IngredientModel
}

// ListProducts retrieves every product ordered by name with its base
// ingredients attached. Associations are fetched with a single IN query and
// grouped in memory, never one query per product.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	if len(productModels) == 0 {
		return []*entity.Product{}, nil
	}

	productIDs := make([]int64, 0, len(productModels))
	for _, productM := range productModels {
		productIDs = append(productIDs, productM.ID)
	}

	var rows []productIngredientRow
	if err := repo.db.WithContext(ctx).
		Table("product_ingredients").
		Select("product_ingredients.product_id, ingredients.*").
		Joins("JOIN ingredients ON ingredients.id = product_ingredients.ingredient_id").
		Where("product_ingredients.product_id IN ?", productIDs).
		Order("ingredients.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list product ingredients")
	}

	ingredientsByProduct := make(map[int64][]entity.Ingredient, len(productModels))
	for _, row := range rows {
		ingredientsByProduct[row.ProductID] = append(
			ingredientsByProduct[row.ProductID],
			*toIngredientDomain(&row.IngredientModel),
		)
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		product := toProductDomain(productM)
		product.Ingredients = ingredientsByProduct[productM.ID]
		if product.Ingredients == nil {
			product.Ingredients = []entity.Ingredient{}
		}
		products = append(products, product)
	}

	return products, nil
}

// CreateProduct persists a new product and its ingredient associations.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product, ingredientIDs []int64) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return repo.insertAssociations(ctx, productM.ID, ingredientIDs)
}

// UpdateProduct modifies a product and replaces its association set wholesale.
// The association rows are deleted and reinserted rather than diffed.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product, ingredientIDs []int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":  product.Name,
			"price": product.Price,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", product.ID).
		Delete(&model.ProductIngredientModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear product ingredients")
	}

	return repo.insertAssociations(ctx, product.ID, ingredientIDs)
}

// DeleteProduct removes a product by id. Join rows cascade; order items that
// reference the product keep their snapshots and lose only the weak reference.
func (repo *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) insertAssociations(ctx context.Context, productID int64, ingredientIDs []int64) error {
	if len(ingredientIDs) == 0 {
		return nil
	}

	joinRows := make([]model.ProductIngredientModel, 0, len(ingredientIDs))
	for _, ingredientID := range ingredientIDs {
		joinRows = append(joinRows, model.ProductIngredientModel{
			ProductID:    productID,
			IngredientID: ingredientID,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&joinRows).Error; err != nil {
		return errors.Wrap(err, "failed to insert product ingredients")
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:        data.ID,
		Name:      data.Name,
		Price:     data.Price,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:        data.ID,
		Name:      data.Name,
		Price:     data.Price,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
