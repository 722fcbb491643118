package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"github.com/muratfirtina/teklif-sistemi-sub002/server/response"
)

func (s *Server) handleCreateInvoiceFromQuotation() gin.HandlerFunc {
	return func(c *gin.Context) {
		quotationID, err := parseIDParam(c, "quotationID")
		if err != nil {
			response.JSON(c, "invalid quotation id", http.StatusBadRequest, nil, err)
			return
		}

		invoice, err := s.InvoiceService.CreateFromQuotation(quotationID)
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		response.JSON(c, "Invoice Created", http.StatusCreated, invoice, nil)
	}
}

func (s *Server) handleGetAllInvoices() gin.HandlerFunc {
	return func(c *gin.Context) {
		invoices, err := s.InvoiceService.ListInvoices()
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, invoices, nil)
	}
}

func (s *Server) handleGetInvoice() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid invoice id", http.StatusBadRequest, nil, err)
			return
		}

		invoice, err := s.InvoiceService.GetInvoice(id)
		if err != nil {
			response.JSON(c, "invoice not found", http.StatusNotFound, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, invoice, nil)
	}
}

func (s *Server) handleUpdateInvoiceStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid invoice id", http.StatusBadRequest, nil, err)
			return
		}

		var req models.InvoiceStatusRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		if err := s.InvoiceService.UpdateStatus(id, req.Status); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		response.JSON(c, "Invoice Updated", http.StatusOK, nil, nil)
	}
}
