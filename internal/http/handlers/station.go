package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freightdesk/fleetadmin/internal/http/response"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/services"
)

type StationHandler struct {
	log            *logger.Logger
	stationService services.StationService
}

func NewStationHandler(log *logger.Logger, stationService services.StationService) *StationHandler {
	return &StationHandler{log: log.With("handler", "StationHandler"), stationService: stationService}
}

type stationRequest struct {
	StationName   string     `json:"stationName"`
	DisplayName   string     `json:"displayName"`
	Email         string     `json:"email"`
	DialCode      FlexString `json:"dialCode"`
	PhoneNumber   FlexString `json:"phoneNumber"`
	Country       string     `json:"country"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	ZipCode       FlexString `json:"zipCode"`
	ContactPerson string     `json:"contactPerson"`
	Activity1     FlexBool   `json:"activity1"`
	Activity2     FlexBool   `json:"activity2"`
	Activity3     FlexBool   `json:"activity3"`
	Activity4     FlexBool   `json:"activity4"`
	Activity5     FlexBool   `json:"activity5"`
	Activity6     FlexBool   `json:"activity6"`
}

func (r stationRequest) input() services.StationInput {
	return services.StationInput{
		StationName:   r.StationName,
		DisplayName:   r.DisplayName,
		Email:         r.Email,
		DialCode:      r.DialCode.String(),
		PhoneNumber:   r.PhoneNumber.String(),
		Country:       r.Country,
		Address:       r.Address,
		City:          r.City,
		ZipCode:       r.ZipCode.String(),
		ContactPerson: r.ContactPerson,
		Activities: [6]bool{
			bool(r.Activity1), bool(r.Activity2), bool(r.Activity3),
			bool(r.Activity4), bool(r.Activity5), bool(r.Activity6),
		},
	}
}

func (h *StationHandler) List(c *gin.Context) {
	page, err := h.stationService.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.RespondFailure(c, h.log, err)
		return
	}
	response.RespondData(c, http.StatusOK, "", page)
}

func (h *StationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	st, err := h.stationService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFailure(c, h.log, err)
		return
	}
	response.RespondData(c, http.StatusOK, "", st)
}

func (h *StationHandler) Create(c *gin.Context) {
	var req stationRequest
	if !bindJSON(c, &req) {
		return
	}
	st, err := h.stationService.Create(c.Request.Context(), req.input())
	if err != nil {
		response.RespondFailure(c, h.log, err)
		return
	}
	response.RespondData(c, http.StatusCreated, "Station created successfully", st)
}

func (h *StationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req stationRequest
	if !bindJSON(c, &req) {
		return
	}
	st, err := h.stationService.Update(c.Request.Context(), id, req.input())
	if err != nil {
		response.RespondFailure(c, h.log, err)
		return
	}
	response.RespondData(c, http.StatusOK, "Station updated successfully", st)
}
