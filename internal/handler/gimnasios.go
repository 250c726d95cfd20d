package handler

import (
	"net/http"

	"gymplus/internal/apierror"
	"gymplus/internal/dto"
	"gymplus/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GimnasiosHandler struct{ svc service.GimnasioService }

func NewGimnasiosHandler(svc service.GimnasioService) *GimnasiosHandler {
	return &GimnasiosHandler{svc: svc}
}

func (h *GimnasiosHandler) Crear(c *gin.Context) {
	var req dto.GimnasioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GimnasiosHandler) Obtener(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GimnasiosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar gimnasios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GimnasiosHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.GimnasioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GimnasiosHandler) Desactivar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Sucursales ────────────────────────────────────────────────────────────────

func (h *GimnasiosHandler) CrearSucursal(c *gin.Context) {
	var req dto.SucursalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearSucursal(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GimnasiosHandler) ListarSucursales(c *gin.Context) {
	var gimnasioID *uuid.UUID
	if q := c.Query("gimnasio_id"); q != "" {
		gid, err := uuid.Parse(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("gimnasio_id invalido"))
			return
		}
		gimnasioID = &gid
	}
	resp, err := h.svc.ListarSucursales(c.Request.Context(), gimnasioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar sucursales"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GimnasiosHandler) ActualizarSucursal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SucursalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarSucursal(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GimnasiosHandler) DesactivarSucursal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DesactivarSucursal(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
