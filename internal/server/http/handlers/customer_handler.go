package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bikestores/bikestore/internal/domain/errors"
	"github.com/bikestores/bikestore/internal/domain/model"
)

// CustomerHandler serves the customer listing and CRUD forms.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler creates CustomerHandler instance.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// List handles GET /customers.
func (h *CustomerHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	search := c.Query("search")

	customers, err := h.facade.Customers(c.Request.Context(), search, page)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "customers.html", gin.H{
		"customers": customers,
		"page":      page,
		"search":    search,
	})
}

// AddForm handles GET /customers/add.
func (h *CustomerHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "customer_add.html", gin.H{
		"first_name": "",
		"last_name":  "",
		"email":      "",
		"city":       "",
	})
}

// Create handles POST /customers/add.
func (h *CustomerHandler) Create(c *gin.Context) {
	form := customerFormFromRequest(c)

	_, err := h.facade.CreateCustomer(c.Request.Context(), form)
	if err != nil {
		var vErr *domainErrors.ValidationError
		if errors.As(err, &vErr) {
			c.HTML(http.StatusOK, "customer_add.html", gin.H{
				"errors":     vErr.Messages,
				"first_name": form.FirstName,
				"last_name":  form.LastName,
				"email":      form.Email,
				"city":       form.City,
			})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, "/customers")
}

// EditForm handles GET /customers/edit/:id.
func (h *CustomerHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	customer, err := h.facade.Customer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "customer_edit.html", gin.H{"cust": customer})
}

// Update handles POST /customers/edit/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	form := customerFormFromRequest(c)

	if err := h.facade.UpdateCustomer(c.Request.Context(), id, form); err != nil {
		var vErr *domainErrors.ValidationError
		if errors.As(err, &vErr) {
			c.HTML(http.StatusOK, "customer_edit.html", gin.H{
				"errors": vErr.Messages,
				"cust": &model.Customer{
					ID:        id,
					FirstName: form.FirstName,
					LastName:  form.LastName,
					Email:     form.Email,
					City:      form.City,
				},
			})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, "/customers")
}

// Delete handles GET /customers/delete/:id. Deleting an absent id still
// redirects normally.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.facade.DeleteCustomer(c.Request.Context(), id); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, "/customers")
}
