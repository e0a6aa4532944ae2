package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bikestores/bikestore/internal/domain/model"
)

// customerFormFromRequest reads the posted customer fields verbatim;
// trimming happens during validation so rejected input can be re-displayed
// exactly as submitted.
func customerFormFromRequest(c *gin.Context) model.CustomerForm {
	return model.CustomerForm{
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Email:     c.PostForm("email"),
		City:      c.PostForm("city"),
	}
}
