package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"hmpaquetes/internal/core/application/usecases/commands"
	"hmpaquetes/internal/core/application/usecases/queries"
	"hmpaquetes/internal/core/domain/model/location"
	"hmpaquetes/internal/core/domain/model/quotation"
	"hmpaquetes/internal/generated/servers"
	"hmpaquetes/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ShipmentHistoryHandler renders the public tracking history of a shipment.
type ShipmentHistoryHandler interface {
	Handle(ctx context.Context, query queries.GetShipmentHistoryQuery) (queries.GetShipmentHistoryQueryResponse, error)
}

// ActiveServicesHandler lists the services open for quotation.
type ActiveServicesHandler interface {
	Handle(ctx context.Context, query queries.ListActiveServicesQuery) ([]queries.ListActiveServicesQueryResponse, error)
}

// CreateQuotationHandler stores a quotation request and returns its id.
type CreateQuotationHandler interface {
	Handle(ctx context.Context, command commands.CreateQuotationCommand) (int64, error)
}

// ReturnDispatchItemHandler marks a messenger dispatch item as returned.
type ReturnDispatchItemHandler interface {
	Handle(ctx context.Context, command commands.ReturnDispatchItemCommand) error
}

// SaveAddressHandler resolves and stores an address.
type SaveAddressHandler interface {
	Handle(ctx context.Context, command commands.SaveAddressCommand) (*location.Address, error)
}

const (
	msgInternalError        = "Ocurrió un error interno"
	msgQuotationCreated     = "Cotización creada exitosamente"
	msgQuotationFailed      = "Ocurrió un error al procesar la cotización"
	msgNameAndEmailRequired = "El nombre y el email son requeridos"
	msgServicesRequired     = "No se puede crear una cotización sin servicios asociados"
)

// Server implements servers.ServerInterface on top of the application use cases.
// Use case errors are translated to status codes here:
//   - errs.ErrValueIsRequired / errs.ErrValueIsInvalid / errs.ErrValueIsOutOfRange: 400
//   - errs.ErrObjectNotFound: 404
//   - errs.ErrInvalidOperation: 409
//   - anything else: logged and answered with a generic 500
//
// Example:
//
//	server := NewServer(history, services, quotations, returns, addresses, logger)
//	e := NewRouter(server, logger)
//	e.Logger.Fatal(e.Start(":8080"))
type Server struct {
	historyHandler   ShipmentHistoryHandler
	servicesHandler  ActiveServicesHandler
	quotationHandler CreateQuotationHandler
	returnHandler    ReturnDispatchItemHandler
	addressHandler   SaveAddressHandler

	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(
	historyHandler ShipmentHistoryHandler,
	servicesHandler ActiveServicesHandler,
	quotationHandler CreateQuotationHandler,
	returnHandler ReturnDispatchItemHandler,
	addressHandler SaveAddressHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		historyHandler:   historyHandler,
		servicesHandler:  servicesHandler,
		quotationHandler: quotationHandler,
		returnHandler:    returnHandler,
		addressHandler:   addressHandler,
		logger:           logger.With("component", "http"),
	}
}

// GetShipmentDetails handles GET /shipmentDetails/{code}/.
func (s *Server) GetShipmentDetails(ctx echo.Context, code string) error {
	reqCtx := ctx.Request().Context()

	query, err := queries.NewGetShipmentHistoryQuery(code)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, failure(notFoundShipment(code)))
	}

	history, err := s.historyHandler.Handle(reqCtx, query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, failure(notFoundShipment(code)))
	}
	if err != nil {
		s.logger.ErrorContext(reqCtx, "shipment details failed", "code", code, "error", err)
		return ctx.JSON(http.StatusInternalServerError, failure(msgInternalError))
	}

	response := servers.ShipmentDetails{
		Success: true,
		Envio: servers.ShipmentSummary{
			Codigo:           history.Shipment.Code,
			Estado:           history.Shipment.Status,
			Almacen:          history.Shipment.Warehouse,
			DiasParaEntrega:  history.Shipment.EstimatedDays,
			FotoConfirmacion: optional(history.Shipment.PhotoURL),
		},
		Historial: make([]servers.HistoryEntry, len(history.History)),
		Mensaje:   optional(history.Message),
	}
	for i, entry := range history.History {
		response.Historial[i] = servers.HistoryEntry{
			Evento:  entry.Event,
			Fecha:   entry.Date,
			Detalle: entry.Detail,
			Tipo:    entry.Kind,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// InsertarCotizacion handles POST /insertar-cotizacion with a urlencoded form.
func (s *Server) InsertarCotizacion(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var form servers.InsertarCotizacionFormdataRequestBody
	if err := ctx.Bind(&form); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: msgQuotationFailed})
	}

	serviceID := value(form.Servicios)
	cmd, err := commands.NewCreateQuotationCommand(
		value(form.Nombre),
		value(form.Correo),
		serviceID,
		value(form.Descripcion),
	)
	switch {
	case errors.Is(err, quotation.ErrNameIsRequired), errors.Is(err, quotation.ErrEmailIsRequired):
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: msgNameAndEmailRequired})
	case errors.Is(err, quotation.ErrServicesAreRequired):
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: msgServicesRequired})
	case err != nil:
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: unknownService(serviceID)})
	}

	id, err := s.quotationHandler.Handle(reqCtx, cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: unknownService(serviceID)})
	}
	if err != nil {
		s.logger.ErrorContext(reqCtx, "quotation failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{Error: msgQuotationFailed})
	}

	return ctx.JSON(http.StatusCreated, servers.CotizacionCreada{
		Success:      true,
		Message:      msgQuotationCreated,
		CotizacionId: id,
	})
}

// ListServicios handles GET /servicios.
func (s *Server) ListServicios(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	services, err := s.servicesHandler.Handle(reqCtx, queries.NewListActiveServicesQuery())
	if err != nil {
		s.logger.ErrorContext(reqCtx, "list services failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{Error: msgInternalError})
	}

	response := make([]servers.Servicio, len(services))
	for i, service := range services {
		response[i] = servers.Servicio{
			Id:          service.ID,
			Nombre:      service.Name,
			Descripcion: service.Description,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReturnItem handles POST /items/{itemId}/devolucion.
func (s *Server) ReturnItem(ctx echo.Context, itemID int64) error {
	reqCtx := ctx.Request().Context()

	cmd, err := commands.NewReturnDispatchItemCommand(itemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, failure(err.Error()))
	}

	if err = s.returnHandler.Handle(reqCtx, cmd); err != nil {
		return s.respondError(ctx, "return item failed", err)
	}

	return ctx.JSON(http.StatusOK, servers.ItemDevuelto{Success: true, ItemId: itemID})
}

// CreateDomicilio handles POST /domicilios.
func (s *Server) CreateDomicilio(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var body servers.CreateDomicilioJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, failure("Cuerpo de la solicitud inválido"))
	}

	street := location.Street{
		Street:        value(body.Calle),
		BetweenStreet: value(body.EntreCalle),
		AndStreet:     value(body.YCalle),
		Number:        value(body.No),
		Floor:         value(body.Piso),
		Apartment:     value(body.Apto),
		FullAddress:   value(body.DireccionCompleta),
	}
	cmd, err := commands.NewSaveAddressCommand(street, value(body.CodigoProvincia), value(body.CodigoMunicipio))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, failure(err.Error()))
	}

	address, err := s.addressHandler.Handle(reqCtx, cmd)
	if err != nil {
		return s.respondError(ctx, "save address failed", err)
	}

	response := servers.Domicilio{
		Id:                address.ID(),
		CodigoProvincia:   address.ProvinceCode(),
		CodigoMunicipio:   address.MunicipalityCode(),
		DireccionCompleta: optional(address.Street().FullAddress),
	}
	if p := address.Province(); p != nil {
		response.Provincia = optional(p.Name())
	}
	if m := address.Municipality(); m != nil {
		response.Municipio = optional(m.Name())
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "Healthy"})
}

func (s *Server) respondError(ctx echo.Context, msg string, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, failure(err.Error()))
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, failure(err.Error()))
	case errors.Is(err, errs.ErrInvalidOperation):
		return ctx.JSON(http.StatusConflict, failure(err.Error()))
	default:
		s.logger.ErrorContext(ctx.Request().Context(), msg, "error", err)
		return ctx.JSON(http.StatusInternalServerError, failure(msgInternalError))
	}
}

func failure(msg string) servers.Error {
	ok := false
	return servers.Error{Success: &ok, Error: msg}
}

func notFoundShipment(code string) string {
	return fmt.Sprintf("Envío con código %s no encontrado", code)
}

func unknownService(id string) string {
	return fmt.Sprintf("El servicio con ID %s no existe", id)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
