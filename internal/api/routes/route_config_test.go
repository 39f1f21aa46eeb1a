package routes

import (
	"io"
	"net/http/httptest"
	"testing"

	"foodgram-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

type stubUserHandler struct{}

func (stubUserHandler) Register(c *fiber.Ctx) error         { return ok(c) }
func (stubUserHandler) Login(c *fiber.Ctx) error            { return ok(c) }
func (stubUserHandler) Me(c *fiber.Ctx) error               { return ok(c) }
func (stubUserHandler) GetUsers(c *fiber.Ctx) error         { return ok(c) }
func (stubUserHandler) GetUserDetail(c *fiber.Ctx) error    { return ok(c) }
func (stubUserHandler) UpdateUser(c *fiber.Ctx) error       { return ok(c) }
func (stubUserHandler) SetPassword(c *fiber.Ctx) error      { return ok(c) }
func (stubUserHandler) ForgotPassword(c *fiber.Ctx) error   { return ok(c) }
func (stubUserHandler) ResetPassword(c *fiber.Ctx) error    { return ok(c) }
func (stubUserHandler) Subscribe(c *fiber.Ctx) error        { return c.SendStatus(fiber.StatusCreated) }
func (stubUserHandler) Unsubscribe(c *fiber.Ctx) error      { return ok(c) }
func (stubUserHandler) GetSubscriptions(c *fiber.Ctx) error { return ok(c) }

type stubRecipeHandler struct{}

func (stubRecipeHandler) GetRecipes(c *fiber.Ctx) error      { return ok(c) }
func (stubRecipeHandler) GetRecipeDetail(c *fiber.Ctx) error { return ok(c) }
func (stubRecipeHandler) CreateRecipe(c *fiber.Ctx) error    { return ok(c) }
func (stubRecipeHandler) UpdateRecipe(c *fiber.Ctx) error    { return ok(c) }
func (stubRecipeHandler) DeleteRecipe(c *fiber.Ctx) error    { return ok(c) }
func (stubRecipeHandler) AddFavorite(c *fiber.Ctx) error     { return ok(c) }
func (stubRecipeHandler) RemoveFavorite(c *fiber.Ctx) error  { return ok(c) }
func (stubRecipeHandler) AddToCart(c *fiber.Ctx) error       { return ok(c) }
func (stubRecipeHandler) RemoveFromCart(c *fiber.Ctx) error  { return ok(c) }
func (stubRecipeHandler) DownloadShoppingCart(c *fiber.Ctx) error {
	return c.SendString("shopping list")
}

type stubTagHandler struct{}

func (stubTagHandler) GetTags(c *fiber.Ctx) error      { return ok(c) }
func (stubTagHandler) GetTagDetail(c *fiber.Ctx) error { return ok(c) }

type stubIngredientHandler struct{}

func (stubIngredientHandler) GetIngredients(c *fiber.Ctx) error      { return ok(c) }
func (stubIngredientHandler) GetIngredientDetail(c *fiber.Ctx) error { return ok(c) }

type stubMiddleware struct{}

func pass(c *fiber.Ctx) error { return c.Next() }

func (stubMiddleware) CORSMiddleware() fiber.Handler                       { return pass }
func (stubMiddleware) AuthMiddleware(jwt.JWTService) fiber.Handler         { return pass }
func (stubMiddleware) OptionalAuthMiddleware(jwt.JWTService) fiber.Handler { return pass }

func newTestApp() *fiber.App {
	app := fiber.New()
	cfg := Config{
		App:               app,
		UserHandler:       stubUserHandler{},
		RecipeHandler:     stubRecipeHandler{},
		TagHandler:        stubTagHandler{},
		IngredientHandler: stubIngredientHandler{},
		Middleware:        stubMiddleware{},
	}
	cfg.Setup()
	return app
}

func TestSubscribeAcceptsGetAndPost(t *testing.T) {
	app := newTestApp()

	for _, method := range []string{fiber.MethodGet, fiber.MethodPost} {
		req := httptest.NewRequest(method, "/api/v1/users/some-id/subscribe", nil)
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, res.StatusCode, method)
	}
}

func TestDownloadRouteNotShadowedByRecipeID(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/recipes/download_shopping_cart", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "shopping list", string(body))
}
