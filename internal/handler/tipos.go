package handler

import (
	"net/http"

	"gymplus/internal/apierror"
	"gymplus/internal/dto"
	"gymplus/internal/service"

	"github.com/gin-gonic/gin"
)

// TiposHandler exposes the membership-plan and payment-method catalogs.
type TiposHandler struct{ svc service.TipoService }

func NewTiposHandler(svc service.TipoService) *TiposHandler { return &TiposHandler{svc: svc} }

func (h *TiposHandler) CrearTipoMembresia(c *gin.Context) {
	var req dto.TipoMembresiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearTipoMembresia(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TiposHandler) ListarTiposMembresia(c *gin.Context) {
	resp, err := h.svc.ListarTiposMembresia(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar tipos de membresia"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TiposHandler) ActualizarTipoMembresia(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.TipoMembresiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarTipoMembresia(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TiposHandler) DesactivarTipoMembresia(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DesactivarTipoMembresia(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TiposHandler) CrearTipoPago(c *gin.Context) {
	var req struct {
		Descripcion string `json:"descripcion" validate:"required"`
	}
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearTipoPago(c.Request.Context(), req.Descripcion)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TiposHandler) ListarTiposPago(c *gin.Context) {
	resp, err := h.svc.ListarTiposPago(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar tipos de pago"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
