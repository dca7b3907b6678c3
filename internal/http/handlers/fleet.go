package handlers

import (
	"github.com/gin-gonic/gin"

	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/services"
)

type BrokerHandler struct {
	resource[*types.Broker, services.PersonInput, personRequest]
}

func NewBrokerHandler(log *logger.Logger, brokerService services.BrokerService) *BrokerHandler {
	return &BrokerHandler{resource[*types.Broker, services.PersonInput, personRequest]{
		log:     log.With("handler", "BrokerHandler"),
		label:   "Broker",
		svc:     brokerService,
		toInput: personRequest.input,
	}}
}

func (h *BrokerHandler) List(c *gin.Context)   { h.list(c) }
func (h *BrokerHandler) Get(c *gin.Context)    { h.get(c) }
func (h *BrokerHandler) Create(c *gin.Context) { h.create(c) }
func (h *BrokerHandler) Update(c *gin.Context) { h.update(c) }

type DriverHandler struct {
	resource[*types.Driver, services.PersonInput, personRequest]
	driverService services.DriverService
}

func NewDriverHandler(log *logger.Logger, driverService services.DriverService) *DriverHandler {
	return &DriverHandler{
		resource: resource[*types.Driver, services.PersonInput, personRequest]{
			log:     log.With("handler", "DriverHandler"),
			label:   "Driver",
			svc:     driverService,
			toInput: personRequest.input,
		},
		driverService: driverService,
	}
}

func (h *DriverHandler) List(c *gin.Context)   { h.list(c) }
func (h *DriverHandler) Get(c *gin.Context)    { h.get(c) }
func (h *DriverHandler) Create(c *gin.Context) { h.create(c) }
func (h *DriverHandler) Update(c *gin.Context) { h.update(c) }
func (h *DriverHandler) Delete(c *gin.Context) { deleteByID(c, h.log, h.label, h.driverService) }

type OwnerHandler struct {
	resource[*types.Owner, services.PersonInput, personRequest]
	ownerService services.OwnerService
}

func NewOwnerHandler(log *logger.Logger, ownerService services.OwnerService) *OwnerHandler {
	return &OwnerHandler{
		resource: resource[*types.Owner, services.PersonInput, personRequest]{
			log:     log.With("handler", "OwnerHandler"),
			label:   "Owner",
			svc:     ownerService,
			toInput: personRequest.input,
		},
		ownerService: ownerService,
	}
}

func (h *OwnerHandler) List(c *gin.Context)   { h.list(c) }
func (h *OwnerHandler) Get(c *gin.Context)    { h.get(c) }
func (h *OwnerHandler) Create(c *gin.Context) { h.create(c) }
func (h *OwnerHandler) Update(c *gin.Context) { h.update(c) }
func (h *OwnerHandler) Delete(c *gin.Context) { deleteByID(c, h.log, h.label, h.ownerService) }

type lorryRequest struct {
	RegistrationNumber string `json:"registrationNumber"`
	Name               string `json:"name"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               *int   `json:"year"`
	CapacityKg         *int   `json:"capacityKg"`
	Status             string `json:"status"`
	OwnerID            *uint  `json:"ownerId"`
	LastServiceDate    Date   `json:"lastServiceDate"`
	InsuranceExpiry    Date   `json:"insuranceExpiry"`
}

func (r lorryRequest) input() services.LorryInput {
	return services.LorryInput{
		RegistrationNumber: r.RegistrationNumber,
		Name:               r.Name,
		Make:               r.Make,
		Model:              r.Model,
		Year:               r.Year,
		CapacityKg:         r.CapacityKg,
		Status:             r.Status,
		OwnerID:            r.OwnerID,
		LastServiceDate:    r.LastServiceDate.Ptr(),
		InsuranceExpiry:    r.InsuranceExpiry.Ptr(),
	}
}

type LorryHandler struct {
	resource[*types.Lorry, services.LorryInput, lorryRequest]
	lorryService services.LorryService
}

func NewLorryHandler(log *logger.Logger, lorryService services.LorryService) *LorryHandler {
	return &LorryHandler{
		resource: resource[*types.Lorry, services.LorryInput, lorryRequest]{
			log:     log.With("handler", "LorryHandler"),
			label:   "Lorry",
			svc:     lorryService,
			toInput: lorryRequest.input,
		},
		lorryService: lorryService,
	}
}

func (h *LorryHandler) List(c *gin.Context)   { h.list(c) }
func (h *LorryHandler) Get(c *gin.Context)    { h.get(c) }
func (h *LorryHandler) Create(c *gin.Context) { h.create(c) }
func (h *LorryHandler) Update(c *gin.Context) { h.update(c) }
func (h *LorryHandler) Delete(c *gin.Context) { deleteByID(c, h.log, h.label, h.lorryService) }
