package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/util/numberutils"
)

type TodoController struct {
	api          *echo.Group
	useCase      todo.UseCase
	strictDelete bool
}

// NewTodoController builds the todo routes. With strictDelete, deleting an absent item answers 404 instead of 204.
func NewTodoController(api *echo.Group, useCase todo.UseCase, strictDelete bool) *TodoController {
	return &TodoController{api: api, useCase: useCase, strictDelete: strictDelete}
}

// InitTodoRoutes initializes todo item routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.FindAll)
	controller.api.GET("/todos/:id", controller.FindByID)
	controller.api.POST("/todos", controller.Create)
	controller.api.PUT("/todos/:id", controller.Update)
	controller.api.DELETE("/todos/:id", controller.Delete)
	controller.api.PUT("/todos/:id/toggle", controller.Toggle)
}

// FindAll godoc
// @Summary Get all todo items
// @Tags todos
// @Produce json
// @Success 200 {array} entity.TodoItem "All todo items"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	items, err := controller.useCase.GetAllTodoItems(c.Request().Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// FindByID godoc
// @Summary Get a todo item by id
// @Tags todos
// @Produce json
// @Param id path int true "Todo item id"
// @Success 200 {object} entity.TodoItem "Todo item"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 "Todo item not found"
// @Router /todos/{id} [get]
func (controller *TodoController) FindByID(c echo.Context) error {
	id, err := numberutils.ToPositiveInt64(c.Param("id"))
	if err != nil {
		return invalidID(c)
	}

	item, err := controller.useCase.GetTodoItemByID(c.Request().Context(), id)
	if err != nil {
		return internalError(c, err)
	}
	if item == nil {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, item)
}

// Create godoc
// @Summary Create a todo item
// @Description The description must not be blank; completed defaults to false
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.TodoItemRequest true "Todo item data"
// @Success 201 {object} entity.TodoItem "Created todo item"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var request model.TodoItemRequest
	if err := c.Bind(&request); err != nil {
		return invalidBody(c)
	}

	item, err := controller.useCase.CreateTodoItem(c.Request().Context(), request)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary Replace the description and completed flag of a todo item
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo item id"
// @Param todo body model.TodoItemRequest true "Todo item data"
// @Success 200 {object} entity.TodoItem "Updated todo item"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 "Todo item not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/{id} [put]
func (controller *TodoController) Update(c echo.Context) error {
	id, err := numberutils.ToPositiveInt64(c.Param("id"))
	if err != nil {
		return invalidID(c)
	}

	var request model.TodoItemRequest
	if err := c.Bind(&request); err != nil {
		return invalidBody(c)
	}

	item, err := controller.useCase.UpdateTodoItem(c.Request().Context(), id, request)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary Delete a todo item
// @Description Deleting an absent item also answers 204 unless strict not-found is enabled
// @Tags todos
// @Param id path int true "Todo item id"
// @Success 204 "Todo item deleted"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 "Todo item not found (strict mode only)"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/{id} [delete]
func (controller *TodoController) Delete(c echo.Context) error {
	id, err := numberutils.ToPositiveInt64(c.Param("id"))
	if err != nil {
		return invalidID(c)
	}

	err = controller.useCase.DeleteTodoItem(c.Request().Context(), id)
	if errors.Is(err, todo.ErrTodoItemNotFound) && !controller.strictDelete {
		log.Debug(msg.GetMessage("todo.error.not-found", id))
		return c.NoContent(http.StatusNoContent)
	}
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Toggle godoc
// @Summary Flip the completed flag of a todo item
// @Tags todos
// @Produce json
// @Param id path int true "Todo item id"
// @Success 200 {object} entity.TodoItem "Toggled todo item"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 "Todo item not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/{id}/toggle [put]
func (controller *TodoController) Toggle(c echo.Context) error {
	id, err := numberutils.ToPositiveInt64(c.Param("id"))
	if err != nil {
		return invalidID(c)
	}

	item, err := controller.useCase.ToggleTodoItemCompletion(c.Request().Context(), id)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (controller *TodoController) handleError(c echo.Context, err error) error {
	var validationErr *todo.ValidationError
	switch {
	case errors.Is(err, todo.ErrTodoItemNotFound):
		return c.NoContent(http.StatusNotFound)
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
	default:
		return internalError(c, err)
	}
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("todo.error.invalid-id", c.Param("id"))})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("todo.error.invalid-body")})
}

func internalError(c echo.Context, err error) error {
	log.Error(msg.GetMessage("app.internal-error", c.Request().Method, c.Path()), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
