package sqlite

import (
	"context"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"
	"comanda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ingredientRepository implements the repository.IngredientRepository interface.
type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{
		db: db,
	}
}

// ListIngredients retrieves every ingredient ordered by name ascending.
func (repo *ingredientRepository) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	var ingredientModels []*model.IngredientModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&ingredientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientModels))
	for _, ingredientM := range ingredientModels {
		ingredients = append(ingredients, toIngredientDomain(ingredientM))
	}

	return ingredients, nil
}

// CreateIngredient persists a new ingredient.
func (repo *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := fromIngredientDomain(ingredient)

	if err := repo.db.WithContext(ctx).Create(ingredientM).Error; err != nil {
		return errors.Wrap(err, "failed to create ingredient")
	}

	// Write back generated values
	ingredient.ID = ingredientM.ID
	ingredient.CreatedAt = ingredientM.CreatedAt
	ingredient.UpdatedAt = ingredientM.UpdatedAt

	return nil
}

// UpdateIngredient modifies an existing ingredient by id.
func (repo *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entity.Ingredient) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IngredientModel{}).
		Where("id = ?", ingredient.ID).
		Updates(map[string]any{
			"name":       ingredient.Name,
			"extra_cost": ingredient.ExtraCost,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update ingredient")
	}

	if result.RowsAffected == 0 {
		return repository.ErrIngredientNotFound
	}

	return nil
}

// DeleteIngredient removes an ingredient by id. Product associations are
// cleaned up by the store's cascade; order snapshot rows only lose their weak
// reference (SET NULL) and keep their snapshotted name and cost.
func (repo *ingredientRepository) DeleteIngredient(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.IngredientModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete ingredient")
	}

	if result.RowsAffected == 0 {
		return repository.ErrIngredientNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toIngredientDomain converts a GORM IngredientModel to a domain Ingredient entity.
func toIngredientDomain(data *model.IngredientModel) *entity.Ingredient {
	if data == nil {
		return nil
	}

	return &entity.Ingredient{
		ID:        data.ID,
		Name:      data.Name,
		ExtraCost: data.ExtraCost,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromIngredientDomain converts a domain Ingredient entity to a GORM IngredientModel.
func fromIngredientDomain(data *entity.Ingredient) *model.IngredientModel {
	if data == nil {
		return nil
	}

	return &model.IngredientModel{
		ID:        data.ID,
		Name:      data.Name,
		ExtraCost: data.ExtraCost,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
