package customer

import (
	"net/http"

	sharedError "github.com/insure-planner/go-api-server/internal/shared/error"
	"github.com/insure-planner/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService *CustomerService
}

func NewCustomerHandler(customerService *CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// List derives the filtered customer view from query parameters.
func (h *CustomerHandler) List(c *gin.Context) {
	q := Query{
		Search:     c.Query("q"),
		Status:     c.Query("status"),
		BirthMonth: c.Query("birthMonth"),
		Tag:        c.Query("tag"),
	}

	c.JSON(http.StatusOK, h.customerService.List(q))
}

func (h *CustomerHandler) Get(c *gin.Context) {
	response, err := h.customerService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var payload CustomerPayload
	if !handler.BindJSON(c, &payload) {
		return
	}

	response, err := h.customerService.Create(c.Request.Context(), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var payload CustomerPayload
	if !handler.BindJSON(c, &payload) {
		return
	}

	response, err := h.customerService.Update(c.Request.Context(), c.Param("id"), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	h.customerService.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusNoContent, nil)
}

func (h *CustomerHandler) Network(c *gin.Context) {
	response, err := h.customerService.Network(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CustomerHandler) AddContract(c *gin.Context) {
	var payload ContractPayload
	if !handler.BindJSON(c, &payload) {
		return
	}

	response, err := h.customerService.AddContract(c.Request.Context(), c.Param("id"), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *CustomerHandler) UpdateContract(c *gin.Context) {
	var payload ContractPayload
	if !handler.BindJSON(c, &payload) {
		return
	}

	response, err := h.customerService.UpdateContract(c.Request.Context(), c.Param("id"), c.Param("contractId"), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CustomerHandler) DeleteContract(c *gin.Context) {
	response, err := h.customerService.DeleteContract(c.Request.Context(), c.Param("id"), c.Param("contractId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CustomerHandler) AddHistory(c *gin.Context) {
	var payload HistoryPayload
	if !handler.BindJSON(c, &payload) {
		return
	}

	response, err := h.customerService.AddHistory(c.Request.Context(), c.Param("id"), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *CustomerHandler) Touch(c *gin.Context) {
	var payload TouchPayload
	if !handler.BindJSON(c, &payload) {
		return
	}

	response, err := h.customerService.LogTouch(c.Request.Context(), c.Param("id"), payload.Method)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *CustomerHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.customerService.Stats())
}

func (h *CustomerHandler) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.customerService.Suggestions(c.Query("field"), c.Query("q")))
}

func (h *CustomerHandler) respondError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		handler.RespondError(c, err, resp)
		return
	}

	handler.RespondError(c, err, sharedError.InternalServerError)
}
