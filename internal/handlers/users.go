package handlers

import (
	"net/http"

	"bloglist/internal/service"

	"github.com/gin-gonic/gin"
)

type createUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// @Summary      Register user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  createUserRequest  true  "User payload"
// @Success      201  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Router       /api/users [post]
func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.services.Users.Register(c.Request.Context(), service.RegisterUserInput{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  models.User
// @Router       /api/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}
