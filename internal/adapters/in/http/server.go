// Package http exposes the checkout use cases over a JSON API on echo.
// The calling buyer is identified by the X-Buyer-ID header, which an upstream
// authentication gateway sets.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/domain/services"
	"checkout/internal/generated/servers"
	"checkout/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BuyerIDHeader carries the authenticated buyer id.
const BuyerIDHeader = "X-Buyer-ID"

type (
	CheckoutHandler interface {
		Handle(ctx context.Context, cmd commands.CheckoutCommand) (commands.CheckoutResult, error)
	}
	CreateDraftOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDraftOrderCommand) (*order.Order, error)
	}
	AddLineItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddLineItemCommand) (*order.Order, error)
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	GenerateReceiptHandler interface {
		Handle(ctx context.Context, cmd commands.GenerateReceiptCommand) (string, error)
	}
	UpdateBuyerProfileHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateBuyerProfileCommand) (*buyer.Buyer, error)
	}
	RegisterBuyerHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterBuyerCommand) (*buyer.Buyer, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
)

// Handlers groups the use cases served by Server.
type Handlers struct {
	Checkout           CheckoutHandler
	CreateDraftOrder   CreateDraftOrderHandler
	AddLineItem        AddLineItemHandler
	DeleteOrder        DeleteOrderHandler
	GenerateReceipt    GenerateReceiptHandler
	UpdateBuyerProfile UpdateBuyerProfileHandler
	RegisterBuyer      RegisterBuyerHandler
	GetOrder           GetOrderHandler
}

// Server implements servers.ServerInterface by translating HTTP requests into
// commands and queries.
type Server struct {
	h         Handlers
	metrics   http.Handler
	validator *requestValidator
	logger    *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server. metrics may be nil.
func NewServer(h Handlers, metrics http.Handler, logger *slog.Logger) (*Server, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	registerSwaggerDoc(raw)

	validator, err := newRequestValidator(doc)
	if err != nil {
		return nil, err
	}
	return &Server{h: h, metrics: metrics, validator: validator, logger: logger.With("component", "http")}, nil
}

// Register mounts every route on e. Requests to API operations are checked
// against the OpenAPI document before they reach a handler.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.handleError
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Use(s.validator.middleware)
	servers.RegisterHandlers(e, s)
}

// Checkout handles POST /api/v1/checkout.
func (s *Server) Checkout(c echo.Context) error {
	buyerID, err := buyerFromHeader(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.CheckoutRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c)
	}

	input := commands.CheckoutInput{
		NationalID:       req.Rut,
		Email:            req.Email,
		Phone:            req.Telefono,
		ShippingMethodID: req.MetodoEnvioId,
		Lines:            make([]services.CartLine, 0, len(req.Productos)),
		SubmittedPrices:  make([]commands.SubmittedPrice, 0, len(req.Productos)),
	}
	if a := req.Direccion; a != nil {
		input.Address = commands.CheckoutAddress{
			Street:     a.Direccion,
			PostalCode: a.CodigoPostal,
			Commune:    a.Comuna,
			City:       a.Ciudad,
		}
	}
	for _, p := range req.Productos {
		input.Lines = append(input.Lines, services.CartLine{ProductID: p.ProductoId, Quantity: p.Cantidad})
		input.SubmittedPrices = append(input.SubmittedPrices, commands.SubmittedPrice{ProductID: p.ProductoId, Price: p.Precio})
	}

	cmd, err := commands.NewCheckoutCommand(buyerID, input)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.Checkout.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	resp := orderFromDomain(result.Order)
	// Only a receipt stored by this request is reported.
	resp.RutaComprobante = nil
	if result.ReceiptPath != "" {
		resp.RutaComprobante = &result.ReceiptPath
	}
	return c.JSON(http.StatusCreated, resp)
}

// CreateOrder handles POST /api/v1/orders and opens an empty draft.
func (s *Server) CreateOrder(c echo.Context) error {
	buyerID, err := buyerFromHeader(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateDraftOrderCommand(kernel.NewUUID(), buyerID)
	if err != nil {
		return s.fail(c, err)
	}
	o, err := s.h.CreateDraftOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, orderFromDomain(o))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context, id servers.OrderId) error {
	buyerID, orderID, err := buyerAndOrder(c, id)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, buyerID)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, orderFromView(view))
}

// AddLineItem handles POST /api/v1/orders/:id/items.
func (s *Server) AddLineItem(c echo.Context, id servers.OrderId) error {
	buyerID, orderID, err := buyerAndOrder(c, id)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.CartLine
	if err = c.Bind(&req); err != nil {
		return badRequest(c)
	}

	cmd, err := commands.NewAddLineItemCommand(orderID, buyerID, req.ProductoId, req.Cantidad)
	if err != nil {
		return s.fail(c, err)
	}
	o, err := s.h.AddLineItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, orderFromDomain(o))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context, id servers.OrderId) error {
	buyerID, orderID, err := buyerAndOrder(c, id)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, buyerID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GenerateReceipt handles POST /api/v1/orders/:id/receipt. The order must
// belong to the caller.
func (s *Server) GenerateReceipt(c echo.Context, id servers.OrderId) error {
	buyerID, orderID, err := buyerAndOrder(c, id)
	if err != nil {
		return s.fail(c, err)
	}
	ctx := c.Request().Context()

	query, err := queries.NewGetOrderQuery(orderID, buyerID)
	if err != nil {
		return s.fail(c, err)
	}
	if _, err = s.h.GetOrder.Handle(ctx, query); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewGenerateReceiptCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	path, err := s.h.GenerateReceipt.Handle(ctx, cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.Receipt{RutaComprobante: path})
}

// RegisterBuyer handles POST /api/v1/buyers.
func (s *Server) RegisterBuyer(c echo.Context) error {
	var req servers.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	cmd := commands.NewRegisterBuyerCommand(req.Email, req.Password, req.Nombre, req.Apellido)
	b, err := s.h.RegisterBuyer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, buyerFromDomain(b))
}

// UpdateProfile handles PUT /api/v1/buyers/me.
func (s *Server) UpdateProfile(c echo.Context) error {
	buyerID, err := buyerFromHeader(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.ProfileRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c)
	}

	cmd, err := commands.NewUpdateBuyerProfileCommand(buyerID, commands.ProfileInput{
		FirstName:  req.Nombre,
		LastName:   req.Apellido,
		NationalID: req.Rut,
		Phone:      req.Telefono,
	})
	if err != nil {
		return s.fail(c, err)
	}
	b, err := s.h.UpdateBuyerProfile.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, buyerFromDomain(b))
}

var errMissingBuyer = errors.New("missing or malformed " + BuyerIDHeader + " header")

func parseBuyerID(raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errMissingBuyer
	}
	if err = id.Validate(); err != nil {
		return kernel.UUID{}, errMissingBuyer
	}
	return id, nil
}

func buyerFromHeader(c echo.Context) (kernel.UUID, error) {
	return parseBuyerID(c.Request().Header.Get(BuyerIDHeader))
}

func buyerAndOrder(c echo.Context, id servers.OrderId) (kernel.UUID, kernel.UUID, error) {
	buyerID, err := buyerFromHeader(c)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return buyerID, orderID, nil
}

func badRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
}

func (s *Server) fail(c echo.Context, err error) error {
	if errors.Is(err, errMissingBuyer) {
		return c.JSON(http.StatusUnauthorized, servers.Error{Code: http.StatusUnauthorized, Message: err.Error()})
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
	}
	return c.JSON(status, errorBody(status, err))
}

// handleError renders errors that never reached a handler, such as unknown
// routes and malformed path parameters, in the API error shape.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		s.logger.ErrorContext(c.Request().Context(), "Unhandled error",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		he = echo.NewHTTPError(http.StatusInternalServerError)
	}
	body := servers.Error{Code: he.Code, Message: http.StatusText(he.Code)}
	if msg, ok := he.Message.(string); ok && he.Code < http.StatusInternalServerError {
		body.Message = msg
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(he.Code)
	} else {
		err = c.JSON(he.Code, body)
	}
	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "Could not write error response", "error", err)
	}
}
