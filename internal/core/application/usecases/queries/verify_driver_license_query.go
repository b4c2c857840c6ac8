package queries

import (
	"context"
	"errors"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrVerifyDriverLicenseQueryIsNotConstructed = errors.New(
	"VerifyDriverLicenseQuery must be created via NewVerifyDriverLicenseQuery constructor",
)

// VerifyDriverLicenseQuery is the driver checkout: a driver proves with the
// license number that they may collect an order. It changes nothing.
type VerifyDriverLicenseQuery struct {
	orderNumber kernel.OrderNumber
	license     string

	guard guard.ConstructorGuard
}

func NewVerifyDriverLicenseQuery(orderNumber kernel.OrderNumber, license string) (VerifyDriverLicenseQuery, error) {
	if err := orderNumber.Validate(); err != nil {
		return VerifyDriverLicenseQuery{}, err
	}

	return VerifyDriverLicenseQuery{
		orderNumber: orderNumber,
		license:     strings.TrimSpace(license),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q VerifyDriverLicenseQuery) Validate() error {
	return q.guard.Validate(ErrVerifyDriverLicenseQueryIsNotConstructed)
}

type VerifyDriverLicenseQueryHandler struct {
	reader ports.StateReader
}

func NewVerifyDriverLicenseQueryHandler(reader ports.StateReader) VerifyDriverLicenseQueryHandler {
	return VerifyDriverLicenseQueryHandler{reader: reader}
}

// Handle reports whether the license belongs to the driver assigned to the
// order. An order without a driver, or whose driver is not registered, never
// verifies. An unknown order is ObjectNotFound.
func (h VerifyDriverLicenseQueryHandler) Handle(ctx context.Context, query VerifyDriverLicenseQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	snapshot, err := h.reader.Snapshot(ctx)
	if err != nil {
		return false, err
	}

	driverID := ""
	found := false
	for _, o := range snapshot.Orders {
		if o.Number().IsEqual(query.orderNumber) {
			driverID, found = o.DriverID(), true
			break
		}
	}
	if !found {
		return false, errs.NewObjectNotFoundError("order", query.orderNumber.String())
	}
	if driverID == "" || query.license == "" {
		return false, nil
	}

	for _, d := range snapshot.Drivers {
		if d.ID() == driverID {
			return d.VerifyLicense(query.license), nil
		}
	}

	return false, nil
}
