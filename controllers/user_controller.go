package controllers

import (
	"net/http"

	"github.com/AntonioTonhao/Node-02-Desafio/services"
	"github.com/AntonioTonhao/Node-02-Desafio/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

type RegisterInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// Register creates a user and, if the request carries no usable session
// cookie, issues a new one (path "/", 7 days). A request that already
// holds a session cookie keeps its token and still inserts a new row.
func (h *UserController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := utils.NewSessionToken()
	if raw, err := c.Cookie(utils.SessionCookieName); err == nil {
		if existing, err := utils.ParseSessionToken(raw); err == nil {
			token = existing
		} else {
			c.SetCookie(utils.SessionCookieName, token.String(), utils.SessionCookieMaxAge, "/", "", false, false)
		}
	} else {
		c.SetCookie(utils.SessionCookieName, token.String(), utils.SessionCookieMaxAge, "/", "", false, false)
	}

	if _, err := h.Svc.Register(c.Request.Context(), input.Name, input.Email, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}

func (h *UserController) ListUsers(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
