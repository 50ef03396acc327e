package userController

import (
	"stayhub/middleware"
	"stayhub/services"
	"stayhub/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	facade *services.Facade
}

func New(facade *services.Facade) *UserController {
	return &UserController{facade: facade}
}

func actorFrom(c *fiber.Ctx) services.Actor {
	id, isAdmin := middleware.ActorLocals(c)
	return services.Actor{ID: id, IsAdmin: isAdmin}
}

// CreateUser registers a new user (admin only).
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	reqData := new(struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		IsAdmin   bool   `json:"is_admin"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := uc.facade.CreateUser(actorFrom(c), services.CreateUserInput{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		Password:  reqData.Password,
		IsAdmin:   reqData.IsAdmin,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	go utils.SendWelcomeEmail(user.FirstName, user.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully.", user.ToMap())
}

func (uc *UserController) GetUser(c *fiber.Ctx) error {
	user, err := uc.facade.GetUser(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched!", user.ToMap())
}

func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	users, err := uc.facade.ListUsers()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	data := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		data = append(data, users[i].ToMap())
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched!", data)
}

// UpdateUser applies a partial update. The facade decides what the actor
// may touch.
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	reqData := new(struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Password  *string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := uc.facade.UpdateUser(actorFrom(c), c.Params("id"), services.UpdateUserInput{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		Password:  reqData.Password,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully.", user.ToMap())
}

// DeleteUser removes a user and cascades to their places and reviews.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	if err := uc.facade.DeleteUser(actorFrom(c), c.Params("id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}
