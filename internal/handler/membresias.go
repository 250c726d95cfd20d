package handler

import (
	"errors"
	"net/http"

	"gymplus/internal/apierror"
	"gymplus/internal/dto"
	"gymplus/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MembresiasHandler struct{ svc service.MembresiaService }

func NewMembresiasHandler(svc service.MembresiaService) *MembresiasHandler {
	return &MembresiasHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear membresia(s)
// @Description  Crea una membresia por cliente (compra grupal con varios cliente_ids). Valida la lista de pagos divididos antes de escribir; un pago parcial deja la membresia PENDIENTE con saldo.
// @Tags         membresias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearMembresiaRequest true "Compra de membresia"
// @Success      201  {array}  dto.MembresiaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/membresias [post]
func (h *MembresiasHandler) Crear(c *gin.Context) {
	var req dto.CrearMembresiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusForReconError(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Abonar godoc
// @Summary      Abonar a una membresia
// @Description  Registra un pago contra el saldo pendiente. Al llegar a cero la membresia pasa de PENDIENTE a ACTIVA.
// @Tags         membresias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string          true "UUID de la membresia"
// @Param        body body dto.AbonoRequest true "Pago"
// @Success      200  {object} dto.MembresiaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/membresias/{id}/abonos [post]
func (h *MembresiasHandler) Abonar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AbonoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Abonar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrMembresiaNoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(statusForReconError(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MembresiasHandler) Obtener(c *gin.Context) {
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

func (h *MembresiasHandler) Listar(c *gin.Context) {
	if clienteID := c.Query("cliente_id"); clienteID != "" {
		cid, err := uuid.Parse(clienteID)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("cliente_id invalido"))
			return
		}
		resp, err := h.svc.ListarPorCliente(c.Request.Context(), cid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error al listar membresias"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar membresias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Vencimientos godoc
// @Summary      Membresias por vencer
// @Description  Lista membresias ACTIVAS cuya fecha de fin cae dentro de la ventana de aviso (default 7 dias).
// @Tags         membresias
// @Produce      json
// @Security     BearerAuth
// @Param        dias query int false "Ventana de aviso en dias (default 7)"
// @Success      200  {array}  dto.MembresiaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/membresias/vencimientos [get]
func (h *MembresiasHandler) Vencimientos(c *gin.Context) {
	var filter dto.VencimientosFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("dias fuera de rango"))
		return
	}
	resp, err := h.svc.Vencimientos(c.Request.Context(), filter.Dias)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar vencimientos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MembresiasHandler) Cancelar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Cancelar(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMembresiaNoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MembresiasHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMembresiaNoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// statusForReconError maps payment-reconciliation failures to 422 and
// everything else to 400.
func statusForReconError(err error) int {
	switch {
	case errors.Is(err, service.ErrMontoInvalido),
		errors.Is(err, service.ErrExcedeTotal),
		errors.Is(err, service.ErrPagosNoCoinciden):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
