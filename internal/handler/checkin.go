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

type CheckInHandler struct{ svc service.CheckInService }

func NewCheckInHandler(svc service.CheckInService) *CheckInHandler {
	return &CheckInHandler{svc: svc}
}

// Verificar godoc
// @Summary      Verificar acceso por cedula
// @Description  Busca a la persona por cedula y decide: auto_aprobado (membresia ACTIVA y vigente) o requiere_confirmacion (sin membresia activa, o vencida por fecha). La decision no se persiste.
// @Tags         checkins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.VerificarCheckInRequest true "Cedula y sucursal"
// @Success      200  {object} dto.CheckInDecision
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/checkins/verificar [post]
func (h *CheckInHandler) Verificar(c *gin.Context) {
	var req dto.VerificarCheckInRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sucursalID, err := uuid.Parse(req.SucursalID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("sucursal_id invalido"))
		return
	}

	decision, err := h.svc.Verificar(c.Request.Context(), req.Cedula, sucursalID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsuarioNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrCedulaRequerida),
			errors.Is(err, service.ErrSucursalRequerida):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, decision)
}

// Registrar godoc
// @Summary      Registrar un acceso
// @Description  Persiste el evento de acceso, ya sea auto-aprobado o confirmado manualmente por el operador.
// @Tags         checkins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarCheckInRequest true "Acceso a registrar"
// @Success      201  {object} dto.CheckInResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/checkins [post]
func (h *CheckInHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarCheckInRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Historial de accesos
// @Tags         checkins
// @Produce      json
// @Security     BearerAuth
// @Param        sucursal_id query string false "UUID de la sucursal"
// @Param        fecha       query string false "Fecha YYYY-MM-DD"
// @Param        page        query int    false "Pagina (default 1)"
// @Param        limit       query int    false "Registros por pagina (default 50)"
// @Success      200  {object} dto.CheckInListResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/checkins [get]
func (h *CheckInHandler) Listar(c *gin.Context) {
	var filter dto.CheckInFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar accesos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
