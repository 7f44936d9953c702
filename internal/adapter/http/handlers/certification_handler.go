package handlers

import (
	"net/http"

	request "translation_backoffice/internal/adapter/http/dto/request"
	response "translation_backoffice/internal/adapter/http/dto/response"
	"translation_backoffice/internal/adapter/http/middleware"
	"translation_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CertificationHandler struct {
	usecase usecase.ICertificationUseCase
}

func NewCertificationHandler(uc usecase.ICertificationUseCase) *CertificationHandler {
	return &CertificationHandler{usecase: uc}
}

func (h *CertificationHandler) ListCertifications(c *gin.Context) {
	certs, err := h.usecase.List(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCertifications(certs))
}

func (h *CertificationHandler) CreateCertification(c *gin.Context) {
	var payload request.CertificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	cert, totals, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), c.Param("quote_id"), payload.ToInput())
	if err != nil {
		writeError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.CertificationWriteResponse{Certification: response.FromCertification(cert), Totals: response.FromBreakdown(totals.Breakdown)})
}

func (h *CertificationHandler) UpdateCertification(c *gin.Context) {
	var payload request.CertificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	cert, totals, err := h.usecase.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("quote_id"), c.Param("certification_id"), payload.ToInput())
	if err != nil {
		writeError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.CertificationWriteResponse{Certification: response.FromCertification(cert), Totals: response.FromBreakdown(totals.Breakdown)})
}

func (h *CertificationHandler) DeleteCertification(c *gin.Context) {
	totals, err := h.usecase.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("quote_id"), c.Param("certification_id"))
	if err != nil {
		writeError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.Deleted(totals))
}
