package handler

import (
	"Kolhub/internal/api/dto"
	"Kolhub/internal/pkg/response"
	"Kolhub/internal/service"

	"github.com/gin-gonic/gin"
)

type KOLHandler struct {
	kolSvc service.KOLService
}

func NewKOLHandler(kolSvc service.KOLService) *KOLHandler {
	return &KOLHandler{kolSvc: kolSvc}
}

func (s *KOLHandler) CreateKOL(c *gin.Context) {
	var createDTO dto.KOLCreateDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	resp, err := s.kolSvc.Create(c.Request.Context(), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

func (s *KOLHandler) CreateKOLBatch(c *gin.Context) {
	var batchDTO dto.KOLBatchCreateDTO
	if err := c.ShouldBindJSON(&batchDTO); err != nil {
		response.Error(c, err)
		return
	}
	resps, err := s.kolSvc.CreateBatch(c.Request.Context(), batchDTO.Kols)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resps)
}

func (s *KOLHandler) GetKOL(c *gin.Context) {
	kolID := c.Param("kol_id")
	resp, err := s.kolSvc.GetByKolID(c.Request.Context(), kolID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

func (s *KOLHandler) UpdateKOL(c *gin.Context) {
	kolID := c.Param("kol_id")

	// 空请求体直接返回当前记录，不触发更新
	if c.Request.ContentLength == 0 {
		resp, err := s.kolSvc.GetByKolID(c.Request.Context(), kolID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, resp)
		return
	}

	var updateDTO dto.KOLUpdateDTO
	if err := c.ShouldBindJSON(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	resp, err := s.kolSvc.Update(c.Request.Context(), kolID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

func (s *KOLHandler) DeleteKOL(c *gin.Context) {
	kolID := c.Param("kol_id")
	if err := s.kolSvc.Delete(c.Request.Context(), kolID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (s *KOLHandler) ListKOLs(c *gin.Context) {
	var filterDTO dto.KOLFilterDTO
	if err := c.ShouldBindQuery(&filterDTO); err != nil {
		response.Error(c, service.NewValidationError("查询参数错误: %s", err.Error()))
		return
	}
	resp, err := s.kolSvc.List(c.Request.Context(), &filterDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}
