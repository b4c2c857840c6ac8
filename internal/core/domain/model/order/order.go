package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customer id")
	ErrItemsAreRequired     = errs.NewValueIsRequiredError("items")
	ErrChefsAreRequired     = errs.NewValueIsRequiredError("chef names")
	ErrDriverIDIsRequired   = errs.NewValueIsRequiredError("driver id")
)

// Order is the aggregate root of the catering lifecycle. It carries the bill,
// the kitchen assignment, the delivery assignment and the queue position of a
// single customer order.
//
// Order follows these invariants:
//   - final bill = gross bill - discount, with 0 <= discount <= gross bill
//   - the category, chefs and eta are set exactly once, when preparation starts
//   - driver and vehicle ids are set exactly once, when the order goes out for delivery
//   - queue position is >= 1 until the order is delivered and 0 afterwards
//   - status transitions follow the forward-only Status state machine
//
// Every mutating method re-validates the current status first and leaves the
// order untouched when the transition is not allowed.
type Order struct {
	number     kernel.OrderNumber
	customerID string

	items      string
	grossBill  float64
	discount   float64
	finalBill  float64
	status     Status
	category   Category
	chefs      []string
	etaMinutes int

	driverID  string
	vehicleID string

	queuePosition int

	guard guard.ConstructorGuard
}

// NewOrder creates a Placed order at the given queue position.
//
// Parameters:
//   - number: the next value of the order counter
//   - customerID: registered id or generated guest id
//   - items: human-readable description of the selection ("2x Chicken Biryani")
//   - grossBill: sum of the selected menu prices, must be positive
//   - discount: amount deducted from the gross bill
//   - queuePosition: position at the back of the kitchen queue, must be >= 1
func NewOrder(
	number kernel.OrderNumber,
	customerID string,
	items string,
	grossBill float64,
	discount float64,
	queuePosition int,
) (*Order, error) {
	order := &Order{
		status: Placed,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setNumber(number),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setBill(grossBill, discount),
		order.setQueuePosition(queuePosition),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreParams carries the persisted state of an order.
type RestoreParams struct {
	Number        kernel.OrderNumber
	CustomerID    string
	Items         string
	GrossBill     float64
	Discount      float64
	Status        Status
	Category      Category
	Chefs         []string
	EtaMinutes    int
	DriverID      string
	VehicleID     string
	QueuePosition int
}

// RestoreOrder rebuilds an order loaded from a store. Besides the field rules
// of NewOrder it checks that the stored fields agree with the stored status.
func RestoreOrder(p RestoreParams) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setNumber(p.Number),
		order.setCustomerID(p.CustomerID),
		order.setItems(p.Items),
		order.setBill(p.GrossBill, p.Discount),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}
	order.status = p.Status

	if p.Status != Placed {
		if err := order.setKitchen(p.Category, p.Chefs, p.EtaMinutes); err != nil {
			return nil, err
		}
	}

	if p.Status == OutForDelivery || p.Status == Delivered {
		if err := order.setDelivery(p.DriverID, p.VehicleID); err != nil {
			return nil, err
		}
	}

	if p.Status == Delivered {
		if p.QueuePosition != 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"queue position",
				fmt.Errorf("delivered order %s is still queued at %d", p.Number, p.QueuePosition),
			)
		}
		return order, nil
	}

	if err := order.setQueuePosition(p.QueuePosition); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number.IsEqual(other.number)
}

func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

func (o *Order) CustomerID() string {
	return o.customerID
}

func (o *Order) Items() string {
	return o.items
}

func (o *Order) GrossBill() float64 {
	return o.grossBill
}

func (o *Order) Discount() float64 {
	return o.discount
}

func (o *Order) FinalBill() float64 {
	return o.finalBill
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Category() Category {
	return o.category
}

// Chefs returns a copy of the assigned chef names.
func (o *Order) Chefs() []string {
	return slices.Clone(o.chefs)
}

func (o *Order) EtaMinutes() int {
	return o.etaMinutes
}

// DriverID returns the assigned driver, empty before delivery assignment.
func (o *Order) DriverID() string {
	return o.driverID
}

// VehicleID returns the assigned vehicle. It may be empty for a manual
// assignment that named no vehicle.
func (o *Order) VehicleID() string {
	return o.vehicleID
}

// QueuePosition returns the 1-based queue position, 0 once delivered.
func (o *Order) QueuePosition() int {
	return o.queuePosition
}

// MarkPreparing records the kitchen assignment and moves the order from
// Placed to Preparing.
func (o *Order) MarkPreparing(category Category, chefs []string, etaMinutes int) error {
	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}

	if err = o.setKitchen(category, chefs, etaMinutes); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady moves the order from Preparing to Ready. It is driven by the
// preparation scheduler only.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.FinishPreparing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignDelivery records the driver and vehicle and moves the order from
// Ready to OutForDelivery. Reserving the resources themselves is the job of
// the caller, in the same unit of work.
func (o *Order) AssignDelivery(driverID, vehicleID string) error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	if err = o.setDelivery(driverID, vehicleID); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered moves the order from OutForDelivery to Delivered and takes
// it out of the queue. The driver and vehicle ids stay on the order as history.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.queuePosition = 0
	return nil
}

// MoveUpInQueue decrements the queue position after an order ahead of this
// one was delivered.
func (o *Order) MoveUpInQueue() error {
	if o.queuePosition <= 1 {
		return errs.NewStateIsInvalidError(
			"order "+o.number.String(),
			fmt.Sprintf("at queue position %d", o.queuePosition),
			"move up in queue",
		)
	}

	o.queuePosition--
	return nil
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cp := *o
	cp.chefs = slices.Clone(o.chefs)
	return &cp
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return ErrCustomerIDIsRequired
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items string) error {
	if strings.TrimSpace(items) == "" {
		return ErrItemsAreRequired
	}
	o.items = items
	return nil
}

func (o *Order) setBill(grossBill, discount float64) error {
	if grossBill <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("gross bill", fmt.Errorf("%.2f is not greater than 0", grossBill))
	}
	if discount < 0 || discount > grossBill {
		return errs.NewValueIsOutOfRangeError("discount", discount, 0, grossBill)
	}

	o.grossBill = grossBill
	o.discount = discount
	o.finalBill = grossBill - discount
	return nil
}

func (o *Order) setQueuePosition(position int) error {
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("queue position", fmt.Errorf("%d is not greater than 0", position))
	}
	o.queuePosition = position
	return nil
}

func (o *Order) setKitchen(category Category, chefs []string, etaMinutes int) error {
	if err := category.ValidateForPreparation(); err != nil {
		return err
	}

	names := make([]string, 0, len(chefs))
	for _, chef := range chefs {
		if name := strings.TrimSpace(chef); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ErrChefsAreRequired
	}

	if etaMinutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("eta minutes", fmt.Errorf("%d is not greater than 0", etaMinutes))
	}

	o.category = category
	o.chefs = names
	o.etaMinutes = etaMinutes
	return nil
}

func (o *Order) setDelivery(driverID, vehicleID string) error {
	if strings.TrimSpace(driverID) == "" {
		return ErrDriverIDIsRequired
	}
	o.driverID = driverID
	o.vehicleID = strings.TrimSpace(vehicleID)
	return nil
}
