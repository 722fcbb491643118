package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"github.com/muratfirtina/teklif-sistemi-sub002/server/response"
)

func (s *Server) handleGetCompanySetting() gin.HandlerFunc {
	return func(c *gin.Context) {
		setting, err := s.SettingsRepository.GetCompanySetting()
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, setting, nil)
	}
}

func (s *Server) handleUpdateCompanySetting() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CompanySettingRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		if err := models.ConformInput(&req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		setting, err := s.SettingsRepository.GetCompanySetting()
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}

		setting.CompanyName = req.CompanyName
		setting.Address = req.Address
		setting.Phone = req.Phone
		setting.Email = req.Email
		setting.TaxNumber = req.TaxNumber

		if err := s.SettingsRepository.UpdateCompanySetting(setting); err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "Settings Updated", http.StatusOK, setting, nil)
	}
}
