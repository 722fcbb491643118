package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"github.com/muratfirtina/teklif-sistemi-sub002/server/response"
)

func (s *Server) handleCreateQuotation() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.QuotationRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		quotation, err := s.QuotationService.CreateQuotation(&req, currentUserID(c))
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		response.JSON(c, "Quotation Created", http.StatusCreated, quotation, nil)
	}
}

func (s *Server) handleGetAllQuotations() gin.HandlerFunc {
	return func(c *gin.Context) {
		quotations, err := s.QuotationService.ListQuotations()
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, quotations, nil)
	}
}

func (s *Server) handleGetQuotation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid quotation id", http.StatusBadRequest, nil, err)
			return
		}

		quotation, err := s.QuotationService.GetQuotation(id)
		if err != nil {
			response.JSON(c, "quotation not found", http.StatusNotFound, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, quotation, nil)
	}
}

func (s *Server) handleSendQuotation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid quotation id", http.StatusBadRequest, nil, err)
			return
		}

		var req models.SendQuotationRequest
		if err := decode(c, &req); err != nil && err.Error() != "EOF" {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		if err := s.QuotationService.SendQuotation(id, req.Message); err != nil {
			response.JSON(c, "could not send quotation", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "Quotation Sent", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleApproveQuotation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid quotation id", http.StatusBadRequest, nil, err)
			return
		}

		order, err := s.QuotationService.ApproveQuotation(id)
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		response.JSON(c, "Quotation Approved", http.StatusOK, order, nil)
	}
}

func (s *Server) handleRejectQuotation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid quotation id", http.StatusBadRequest, nil, err)
			return
		}

		if err := s.QuotationService.RejectQuotation(id); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		response.JSON(c, "Quotation Rejected", http.StatusOK, nil, nil)
	}
}
