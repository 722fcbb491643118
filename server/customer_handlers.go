package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"github.com/muratfirtina/teklif-sistemi-sub002/server/response"
)

func (s *Server) handleCreateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CustomerRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		if err := models.ConformInput(&req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		customer := models.Customer{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
			TaxNumber: req.TaxNumber,
		}
		if err := s.CustomerRepository.CreateCustomer(&customer); err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}

		response.JSON(c, "Customer Created", http.StatusCreated, customer, nil)
	}
}

func (s *Server) handleGetAllCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := s.CustomerRepository.GetAllCustomers()
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, customers, nil)
	}
}

func (s *Server) handleGetCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid customer id", http.StatusBadRequest, nil, err)
			return
		}

		customer, err := s.CustomerRepository.GetCustomerByID(id)
		if err != nil {
			response.JSON(c, "customer not found", http.StatusNotFound, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, customer, nil)
	}
}

func (s *Server) handleUpdateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid customer id", http.StatusBadRequest, nil, err)
			return
		}

		var req models.CustomerRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		if err := models.ConformInput(&req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		customer, err := s.CustomerRepository.GetCustomerByID(id)
		if err != nil {
			response.JSON(c, "customer not found", http.StatusNotFound, nil, err)
			return
		}

		customer.Name = req.Name
		customer.Email = req.Email
		customer.Phone = req.Phone
		customer.Address = req.Address
		customer.TaxNumber = req.TaxNumber

		if err := s.CustomerRepository.UpdateCustomer(customer); err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "Customer Updated", http.StatusOK, customer, nil)
	}
}

func (s *Server) handleDeleteCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid customer id", http.StatusBadRequest, nil, err)
			return
		}

		if err := s.CustomerRepository.DeleteCustomer(id); err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "Customer Deleted", http.StatusOK, nil, nil)
	}
}
