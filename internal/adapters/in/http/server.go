package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"
	"catering/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/skip2/go-qrcode"
)

const ticketSize = 256

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	PlaceOrder         commands.PlaceOrderCommandHandler
	PrepareOrder       commands.PrepareOrderCommandHandler
	AssignDelivery     commands.AssignDeliveryCommandHandler
	AutoAssignDelivery commands.AutoAssignDeliveryCommandHandler
	ConfirmDelivery    commands.ConfirmDeliveryCommandHandler
	SubmitFeedback     commands.SubmitFeedbackCommandHandler
	RegisterCustomer   commands.RegisterCustomerCommandHandler
	RegisterDriver     commands.RegisterDriverCommandHandler
	RegisterVehicle    commands.RegisterVehicleCommandHandler
	RegisterChef       commands.RegisterChefCommandHandler
	ResetMonthly       commands.ResetMonthlyOrdersCommandHandler
	SaveState          commands.SaveStateCommandHandler

	// Query handlers
	GetMenu             queries.GetMenuQueryHandler
	GetActiveQueue      queries.GetActiveQueueQueryHandler
	GetCurrentServing   queries.GetCurrentServingQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	VerifyDriverLicense queries.VerifyDriverLicenseQueryHandler
	GetCustomers        queries.GetAllCustomersQueryHandler
	GetDrivers          queries.GetAllDriversQueryHandler
	GetVehicles         queries.GetAllVehiclesQueryHandler
	GetChefs            queries.GetAllChefsQueryHandler
	GetFeedbacks        queries.GetAllFeedbacksQueryHandler
}

// Server handles the HTTP requests of openapi.yaml.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{h: handlers, logger: logger.With("component", "http_server")}
}

// RegisterHandlers adds every API route to the router.
func RegisterHandlers(router *echo.Echo, s *Server) {
	v1 := router.Group("/api/v1")

	v1.GET("/menu", s.GetMenu)

	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/orders/active", s.GetActiveQueue)
	v1.GET("/orders/serving", s.GetCurrentServing)
	v1.GET("/orders/:orderNo", s.GetOrder)
	v1.GET("/orders/:orderNo/qr", s.GetOrderTicket)
	v1.POST("/orders/:orderNo/prepare", s.PrepareOrder)
	v1.POST("/orders/:orderNo/assign", s.AssignDelivery)
	v1.POST("/orders/:orderNo/checkout", s.DriverCheckout)
	v1.POST("/orders/:orderNo/deliver", s.ConfirmDelivery)
	v1.POST("/orders/:orderNo/feedback", s.SubmitFeedback)

	v1.GET("/customers", s.GetCustomers)
	v1.POST("/customers", s.RegisterCustomer)
	v1.GET("/drivers", s.GetDrivers)
	v1.POST("/drivers", s.RegisterDriver)
	v1.GET("/vehicles", s.GetVehicles)
	v1.POST("/vehicles", s.RegisterVehicle)
	v1.GET("/chefs", s.GetChefs)
	v1.POST("/chefs", s.RegisterChef)
	v1.GET("/feedbacks", s.GetFeedbacks)

	v1.POST("/admin/save", s.SaveState)
	v1.POST("/admin/reset-monthly", s.ResetMonthlyOrders)
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.h.GetMenu.Handle(ctx.Request().Context(), queries.NewListQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve menu")
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItem{Name: item.Name, Price: item.Price}
	}
	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	selections := make([]menu.Selection, len(body.Items))
	for i, item := range body.Items {
		selections[i] = menu.Selection{Item: item.Item, Quantity: item.Quantity}
	}

	cmd, err := commands.NewPlaceOrderCommand(body.CustomerID, selections)
	if err != nil {
		return badRequest(ctx, "Invalid order: "+err.Error())
	}

	result, err := s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, PlacedOrder{
		OrderNumber:       result.OrderNumber.String(),
		CustomerID:        result.CustomerID,
		Items:             result.Items,
		GrossBill:         result.GrossBill,
		Discount:          result.Discount,
		FinalBill:         result.FinalBill,
		QueuePosition:     result.QueuePosition,
		SuggestedCategory: result.SuggestedCategory.String(),
	})
}

// GetActiveQueue handles GET /api/v1/orders/active.
func (s *Server) GetActiveQueue(ctx echo.Context) error {
	orders, err := s.h.GetActiveQueue.Handle(ctx.Request().Context(), queries.NewGetActiveQueueQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve queue")
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCurrentServing handles GET /api/v1/orders/serving.
func (s *Server) GetCurrentServing(ctx echo.Context) error {
	serving, err := s.h.GetCurrentServing.Handle(ctx.Request().Context(), queries.NewGetCurrentServingQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve current serving order")
	}
	return ctx.JSON(http.StatusOK, Serving{CurrentServing: serving})
}

// GetOrder handles GET /api/v1/orders/{orderNo}.
func (s *Server) GetOrder(ctx echo.Context) error {
	number, err := bindOrderNo(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	o, err := s.lookupOrder(ctx.Request().Context(), number)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// GetOrderTicket handles GET /api/v1/orders/{orderNo}/qr. The QR code is
// shown to the driver at checkout.
func (s *Server) GetOrderTicket(ctx echo.Context) error {
	number, err := bindOrderNo(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if _, err = s.lookupOrder(ctx.Request().Context(), number); err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	png, err := qrcode.Encode(fmt.Sprintf("catering:order:%s", number), qrcode.Medium, ticketSize)
	if err != nil {
		return s.fail(ctx, err, "Failed to render ticket")
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}

// PrepareOrder handles POST /api/v1/orders/{orderNo}/prepare. Without a
// category the order gets the category suggested for its final bill.
func (s *Server) PrepareOrder(ctx echo.Context) error {
	number, err := bindOrderNo(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body Preparation
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	category := order.NoCategory
	if body.Category != "" {
		if category, err = order.ParseCategory(body.Category); err != nil {
			return badRequest(ctx, err.Error())
		}
	} else {
		o, lookupErr := s.lookupOrder(ctx.Request().Context(), number)
		if lookupErr != nil {
			return s.fail(ctx, lookupErr, "Failed to retrieve order")
		}
		category = order.SuggestCategory(o.FinalBill)
	}

	cmd, err := commands.NewPrepareOrderCommand(number, category, body.Chefs, body.EtaMinutes)
	if err != nil {
		return badRequest(ctx, "Invalid preparation: "+err.Error())
	}

	if err = s.h.PrepareOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to prepare order")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignDelivery handles POST /api/v1/orders/{orderNo}/assign. An empty
// driver id selects automatic assignment.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	number, err := bindOrderNo(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body Assignment
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if body.DriverID == "" {
		cmd, cmdErr := commands.NewAutoAssignDeliveryCommand(number)
		if cmdErr != nil {
			return badRequest(ctx, cmdErr.Error())
		}

		result, handleErr := s.h.AutoAssignDelivery.Handle(ctx.Request().Context(), cmd)
		if handleErr != nil {
			return s.fail(ctx, handleErr, "Failed to assign delivery")
		}
		return ctx.JSON(http.StatusOK, Assignment{DriverID: result.DriverID, VehicleID: result.VehicleID})
	}

	cmd, err := commands.NewAssignDeliveryCommand(number, body.DriverID, body.VehicleID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if err = s.h.AssignDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to assign delivery")
	}
	return ctx.JSON(http.StatusOK, body)
}

// DriverCheckout handles POST /api/v1/orders/{orderNo}/checkout.
func (s *Server) DriverCheckout(ctx echo.Context) error {
	number, err := bindOrderNo(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body License
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewVerifyDriverLicenseQuery(number, body.License)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	verified, err := s.h.VerifyDriverLicense.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to verify driver")
	}
	return ctx.JSON(http.StatusOK, Checkout{Verified: verified})
}

// ConfirmDelivery handles POST /api/v1/orders/{orderNo}/deliver.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	number, err := bindOrderNo(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body License
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(number, body.License)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if err = s.h.ConfirmDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to confirm delivery")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SubmitFeedback handles POST /api/v1/orders/{orderNo}/feedback.
func (s *Server) SubmitFeedback(ctx echo.Context) error {
	number, err := bindOrderNo(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body NewFeedback
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitFeedbackCommand(number, body.Rating, body.Comment)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	id, err := s.h.SubmitFeedback.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to submit feedback")
	}
	return ctx.JSON(http.StatusCreated, Created{ID: id.String()})
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.h.GetCustomers.Handle(ctx.Request().Context(), queries.NewListQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve customers")
	}

	response := make([]Customer, len(customers))
	for i, c := range customers {
		response[i] = Customer{ID: c.ID, OrdersThisMonth: c.OrdersThisMonth}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterCustomerCommand(body.ID)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}
	if err = s.h.RegisterCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to register customer")
	}
	return ctx.NoContent(http.StatusCreated)
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.h.GetDrivers.Handle(ctx.Request().Context(), queries.NewListQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve drivers")
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = Driver{ID: d.ID, Name: d.Name, Available: d.Available}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterDriverCommand(body.ID, body.Name, body.License)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}
	if err = s.h.RegisterDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to register driver")
	}
	return ctx.NoContent(http.StatusCreated)
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	vehicles, err := s.h.GetVehicles.Handle(ctx.Request().Context(), queries.NewListQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve vehicles")
	}

	response := make([]Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = Vehicle{ID: v.ID, Type: v.Type, Available: v.Available}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterVehicle handles POST /api/v1/vehicles.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var body NewVehicle
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterVehicleCommand(body.ID, body.Type)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}
	if err = s.h.RegisterVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to register vehicle")
	}
	return ctx.NoContent(http.StatusCreated)
}

// GetChefs handles GET /api/v1/chefs.
func (s *Server) GetChefs(ctx echo.Context) error {
	chefs, err := s.h.GetChefs.Handle(ctx.Request().Context(), queries.NewListQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve chefs")
	}

	response := make([]Chef, len(chefs))
	for i, c := range chefs {
		response[i] = Chef{Name: c.Name, Available: c.Available}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterChef handles POST /api/v1/chefs.
func (s *Server) RegisterChef(ctx echo.Context) error {
	var body NewChef
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterChefCommand(body.Name)
	if err != nil {
		return badRequest(ctx, "Invalid chef data: "+err.Error())
	}
	if err = s.h.RegisterChef.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to register chef")
	}
	return ctx.NoContent(http.StatusCreated)
}

// GetFeedbacks handles GET /api/v1/feedbacks.
func (s *Server) GetFeedbacks(ctx echo.Context) error {
	feedbacks, err := s.h.GetFeedbacks.Handle(ctx.Request().Context(), queries.NewListQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve feedbacks")
	}

	response := make([]Feedback, len(feedbacks))
	for i, f := range feedbacks {
		response[i] = Feedback{
			ID:          f.ID,
			OrderNumber: f.OrderNumber,
			Rating:      f.Rating,
			Comment:     f.Comment,
			CreatedAt:   f.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// SaveState handles POST /api/v1/admin/save.
func (s *Server) SaveState(ctx echo.Context) error {
	if err := s.h.SaveState.Handle(ctx.Request().Context(), commands.NewSaveStateCommand()); err != nil {
		return s.fail(ctx, err, "Failed to save state")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ResetMonthlyOrders handles POST /api/v1/admin/reset-monthly.
func (s *Server) ResetMonthlyOrders(ctx echo.Context) error {
	reset, err := s.h.ResetMonthly.Handle(ctx.Request().Context(), commands.NewResetMonthlyOrdersCommand())
	if err != nil {
		return s.fail(ctx, err, "Failed to reset monthly orders")
	}
	return ctx.JSON(http.StatusOK, Reset{Customers: reset})
}

func (s *Server) lookupOrder(ctx context.Context, number kernel.OrderNumber) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(number)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	return s.h.GetOrder.Handle(ctx, query)
}

func bindOrderNo(ctx echo.Context) (kernel.OrderNumber, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", "orderNo", ctx.Param("orderNo"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.OrderNumber{}, fmt.Errorf("invalid format for parameter orderNo: %w", err)
	}
	return kernel.ParseOrderNumber(raw)
}

func toOrder(o queries.OrderResponse) Order {
	return Order{
		OrderNumber:   o.OrderNumber,
		CustomerID:    o.CustomerID,
		Items:         o.Items,
		GrossBill:     o.GrossBill,
		Discount:      o.Discount,
		FinalBill:     o.FinalBill,
		Status:        o.Status,
		Category:      o.Category,
		Chefs:         o.Chefs,
		EtaMinutes:    o.EtaMinutes,
		DriverID:      o.DriverID,
		VehicleID:     o.VehicleID,
		QueuePosition: o.QueuePosition,
	}
}
