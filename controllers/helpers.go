package controllers

import (
	"github.com/AntonioTonhao/Node-02-Desafio/middlewares"
	"github.com/AntonioTonhao/Node-02-Desafio/models"

	"github.com/gin-gonic/gin"
)

// currentUser returns the identity the session middleware attached to this
// request. Services receive the user id from here explicitly; nothing
// downstream reads the request context for identity.
func currentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(middlewares.UserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
