package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cleaningnetwork/marketplace-api/db"
	"github.com/cleaningnetwork/marketplace-api/models"
	"github.com/cleaningnetwork/marketplace-api/utils"
)

// GetAllUsers lists all user accounts with their roles.
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := db.DB.Preload("Role").Order("created_at DESC").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to fetch users", err))
	}

	for i := range users {
		users[i].Password = ""
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": len(users),
	})
}

// UpdateUser edits a user's contact details.
func UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	type UserInput struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
	}
	input := new(UserInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.FullName == "" || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and email are required",
		})
	}

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	user.FullName = input.FullName
	user.Email = input.Email
	user.Phone = input.Phone

	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to update user", err))
	}

	user.Password = ""
	return c.JSON(user)
}

// DeleteUser soft-deletes a user account. Accounts are never hard-deleted;
// bookings and reviews keep their references.
func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to delete user", err))
	}

	return c.SendStatus(fiber.StatusNoContent)
}
