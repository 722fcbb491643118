package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"github.com/muratfirtina/teklif-sistemi-sub002/server/response"
)

func (s *Server) handleGetAllProductionOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.ProductionOrderService.ListProductionOrders()
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, orders, nil)
	}
}

func (s *Server) handleGetProductionOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid production order id", http.StatusBadRequest, nil, err)
			return
		}

		order, err := s.ProductionOrderService.GetProductionOrder(id)
		if err != nil {
			response.JSON(c, "production order not found", http.StatusNotFound, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, order, nil)
	}
}

func (s *Server) handleUpdateProductionOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid production order id", http.StatusBadRequest, nil, err)
			return
		}

		var req models.ProductionStatusRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		if err := s.ProductionOrderService.UpdateStatus(id, req.Status); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		response.JSON(c, "Production Order Updated", http.StatusOK, nil, nil)
	}
}
