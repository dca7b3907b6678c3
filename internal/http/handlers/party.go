package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/services"
)

type partyRequest struct {
	Name          string     `json:"name"`
	ContactPerson string     `json:"contactPerson"`
	Email         string     `json:"email"`
	DialCode      FlexString `json:"dialCode"`
	PhoneNumber   FlexString `json:"phoneNumber"`
	GSTNumber     string     `json:"gstNumber"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	PostalCode    FlexString `json:"postalCode"`
	Country       string     `json:"country"`
}

func (r partyRequest) input() services.PartyInput {
	return services.PartyInput{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		DialCode:      r.DialCode.String(),
		PhoneNumber:   r.PhoneNumber.String(),
		GSTNumber:     r.GSTNumber,
		Address:       r.Address,
		City:          r.City,
		PostalCode:    r.PostalCode.String(),
		Country:       r.Country,
	}
}

// PartyHandler serves one party kind; the router mounts one per kind.
type PartyHandler struct {
	resource[*types.Party, services.PartyInput, partyRequest]
	partyService services.PartyService
}

func NewPartyHandler(log *logger.Logger, partyService services.PartyService) *PartyHandler {
	kind := string(partyService.Kind())
	return &PartyHandler{
		resource: resource[*types.Party, services.PartyInput, partyRequest]{
			log:     log.With("handler", "PartyHandler", "kind", kind),
			label:   strings.ToUpper(kind[:1]) + kind[1:],
			svc:     partyService,
			toInput: partyRequest.input,
		},
		partyService: partyService,
	}
}

func (h *PartyHandler) List(c *gin.Context)   { h.list(c) }
func (h *PartyHandler) Get(c *gin.Context)    { h.get(c) }
func (h *PartyHandler) Create(c *gin.Context) { h.create(c) }
func (h *PartyHandler) Update(c *gin.Context) { h.update(c) }
func (h *PartyHandler) Delete(c *gin.Context) { deleteByID(c, h.log, h.label, h.partyService) }
