package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"github.com/muratfirtina/teklif-sistemi-sub002/server/response"
)

func (s *Server) handleCreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ProductRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		product, err := s.ProductService.CreateProduct(&req)
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "Product Created", http.StatusCreated, product, nil)
	}
}

func (s *Server) handleGetAllProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.ProductService.ListProducts()
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, products, nil)
	}
}

func (s *Server) handleGetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid product id", http.StatusBadRequest, nil, err)
			return
		}

		product, err := s.ProductService.GetProduct(id)
		if err != nil {
			response.JSON(c, "product not found", http.StatusNotFound, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, product, nil)
	}
}

func (s *Server) handleUpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid product id", http.StatusBadRequest, nil, err)
			return
		}

		var req models.ProductRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		product, err := s.ProductService.UpdateProduct(id, &req)
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "Product Updated", http.StatusOK, product, nil)
	}
}

func (s *Server) handleDeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid product id", http.StatusBadRequest, nil, err)
			return
		}

		if err := s.ProductService.DeleteProduct(id); err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "Product Deleted", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleAdjustStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid product id", http.StatusBadRequest, nil, err)
			return
		}

		var req models.StockAdjustRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		product, err := s.ProductService.AdjustStock(id, &req, currentUserID(c))
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		response.JSON(c, "Stock Adjusted", http.StatusOK, product, nil)
	}
}

func (s *Server) handleGetStockMovements() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid product id", http.StatusBadRequest, nil, err)
			return
		}

		movements, err := s.ProductService.GetStockMovements(id)
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, movements, nil)
	}
}
