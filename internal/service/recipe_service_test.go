package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pickmydish/internal/models"
	"pickmydish/internal/repository"
)

var (
	owner    = &models.User{UserID: "owner-1", Username: "kynm"}
	stranger = &models.User{UserID: "stranger-1", Username: "peter"}
	admin    = &models.User{UserID: "admin-1", Username: "root", IsAdmin: true}
)

func newRecipeServiceMocks() (RecipeService, *mockRecipeRepository, *mockLookupRepository, *mockStorage) {
	recipeRepo := new(mockRecipeRepository)
	lookupRepo := new(mockLookupRepository)
	st := new(mockStorage)
	return NewRecipeService(recipeRepo, lookupRepo, st), recipeRepo, lookupRepo, st
}

func TestRecipeService_Create(t *testing.T) {
	ctx := context.Background()

	svc, recipeRepo, lookupRepo, _ := newRecipeServiceMocks()

	lookupRepo.On("EnsureCategory", ctx, "Brunch").Return("cat-1", nil)
	recipeRepo.On("Create", ctx, mock.AnythingOfType("*models.Recipe"), []string{"ing-1"}).
		Return(nil)

	recipe, err := svc.Create(ctx, owner, CreateRecipeRequest{
		Name:          "Berry toast",
		CategoryName:  "Brunch",
		Steps:         []string{"Toast bread"},
		Moods:         []string{"Quick"},
		IngredientIDs: []string{"ing-1"},
	})

	require.NoError(t, err)
	// владелец берется из аутентификации, а не из тела запроса
	assert.Equal(t, "owner-1", recipe.UserID)
	assert.Equal(t, "cat-1", recipe.CategoryID)
	recipeRepo.AssertExpectations(t)
}

func TestRecipeService_Update(t *testing.T) {
	ctx := context.Background()

	stored := func() *models.Recipe {
		return &models.Recipe{
			RecipeID:   "recipe-1",
			UserID:     "owner-1",
			Name:       "Berry toast",
			CategoryID: "cat-1",
			Steps:      models.StringList{"Toast bread"},
			Moods:      models.StringList{"Quick"},
		}
	}

	t.Run("Чужой пользователь получает ErrForbidden без записи", func(t *testing.T) {
		svc, recipeRepo, _, _ := newRecipeServiceMocks()

		recipeRepo.On("GetByID", ctx, "recipe-1").Return(stored(), nil)

		newName := "Hacked"
		details, err := svc.Update(ctx, stranger, "recipe-1", UpdateRecipeRequest{Name: &newName})

		assert.Nil(t, details)
		assert.ErrorIs(t, err, ErrForbidden)
		recipeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Несуществующий рецепт дает ErrNotFound раньше проверки прав", func(t *testing.T) {
		svc, recipeRepo, _, _ := newRecipeServiceMocks()

		recipeRepo.On("GetByID", ctx, "missing").Return(nil, repository.ErrNotFound)

		_, err := svc.Update(ctx, stranger, "missing", UpdateRecipeRequest{})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NotErrorIs(t, err, ErrForbidden)
	})

	t.Run("Владелец меняет только переданные поля", func(t *testing.T) {
		svc, recipeRepo, _, _ := newRecipeServiceMocks()

		recipeRepo.On("GetByID", ctx, "recipe-1").Return(stored(), nil)

		newName := "Berry toast deluxe"
		recipeRepo.On("Update", ctx, mock.MatchedBy(func(r *models.Recipe) bool {
			// имя обновлено, остальное сохранило прежние значения
			return r.Name == "Berry toast deluxe" &&
				r.CategoryID == "cat-1" &&
				len(r.Steps) == 1 && r.Steps[0] == "Toast bread"
		}), []string(nil)).Return(nil)
		recipeRepo.On("GetDetailsByID", ctx, "recipe-1").
			Return(&models.RecipeDetails{Recipe: models.Recipe{RecipeID: "recipe-1", Name: newName}}, nil)

		details, err := svc.Update(ctx, owner, "recipe-1", UpdateRecipeRequest{Name: &newName})

		require.NoError(t, err)
		assert.Equal(t, "Berry toast deluxe", details.Name)
		recipeRepo.AssertExpectations(t)
	})

	t.Run("Администратор может менять чужой рецепт", func(t *testing.T) {
		svc, recipeRepo, _, _ := newRecipeServiceMocks()

		recipeRepo.On("GetByID", ctx, "recipe-1").Return(stored(), nil)
		recipeRepo.On("Update", ctx, mock.AnythingOfType("*models.Recipe"), []string(nil)).Return(nil)
		recipeRepo.On("GetDetailsByID", ctx, "recipe-1").
			Return(&models.RecipeDetails{Recipe: models.Recipe{RecipeID: "recipe-1"}}, nil)

		newName := "Moderated"
		_, err := svc.Update(ctx, admin, "recipe-1", UpdateRecipeRequest{Name: &newName})

		assert.NoError(t, err)
	})
}

func TestRecipeService_Delete(t *testing.T) {
	ctx := context.Background()

	stored := &models.Recipe{RecipeID: "recipe-1", UserID: "owner-1"}

	t.Run("Чужой пользователь получает ErrForbidden без удаления", func(t *testing.T) {
		svc, recipeRepo, _, _ := newRecipeServiceMocks()

		recipeRepo.On("GetByID", ctx, "recipe-1").Return(stored, nil)

		err := svc.Delete(ctx, stranger, "recipe-1")

		assert.ErrorIs(t, err, ErrForbidden)
		recipeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Владелец удаляет свой рецепт", func(t *testing.T) {
		svc, recipeRepo, _, _ := newRecipeServiceMocks()

		recipeRepo.On("GetByID", ctx, "recipe-1").Return(stored, nil)
		recipeRepo.On("Delete", ctx, "recipe-1").Return(nil)

		err := svc.Delete(ctx, owner, "recipe-1")

		assert.NoError(t, err)
		recipeRepo.AssertExpectations(t)
	})

	t.Run("Администратор удаляет чужой рецепт", func(t *testing.T) {
		svc, recipeRepo, _, _ := newRecipeServiceMocks()

		recipeRepo.On("GetByID", ctx, "recipe-1").Return(stored, nil)
		recipeRepo.On("Delete", ctx, "recipe-1").Return(nil)

		err := svc.Delete(ctx, admin, "recipe-1")

		assert.NoError(t, err)
	})

	t.Run("Несуществующий рецепт дает ErrNotFound", func(t *testing.T) {
		svc, recipeRepo, _, _ := newRecipeServiceMocks()

		recipeRepo.On("GetByID", ctx, "missing").Return(nil, repository.ErrNotFound)

		err := svc.Delete(ctx, owner, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRecipeService_UploadPicture(t *testing.T) {
	ctx := context.Background()

	svc, _, _, st := newRecipeServiceMocks()

	data := []byte{0xFF, 0xD8, 0xFF}
	st.On("UploadImage", ctx, "recipes-pictures", "toast.jpg", data).
		Return("uploads/recipes-pictures/1-a.jpg", nil)

	path, err := svc.UploadPicture(ctx, "toast.jpg", data)

	require.NoError(t, err)
	assert.Equal(t, "uploads/recipes-pictures/1-a.jpg", path)
}
