package validation

import (
	"context"
	"fmt"
	"strings"

	"workshop_visits/internal/domain/entities"
	"workshop_visits/internal/usecase/command"
	"workshop_visits/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

// AddServiceContext holds what the add-service and batch service-change
// rules need: the visit and every catalog service the batch references.
type AddServiceContext struct {
	cmd      command.SaveServicesChanges
	visit    entities.Visit
	services map[string]entities.CatalogService
}

func (c AddServiceContext) Command() command.SaveServicesChanges { return c.cmd }
func (c AddServiceContext) Visit() entities.Visit                { return c.visit }

// Service returns the catalog entry for id; ok is false when it does not exist.
func (c AddServiceContext) Service(id string) (entities.CatalogService, bool) {
	s, found := c.services[id]
	return s, found && s.ID != ""
}

type AddServiceContextBuilder struct {
	visits  interfaces.IVisitRepository
	catalog interfaces.IServiceCatalog
}

func NewAddServiceContextBuilder(visits interfaces.IVisitRepository, catalog interfaces.IServiceCatalog) *AddServiceContextBuilder {
	return &AddServiceContextBuilder{visits: visits, catalog: catalog}
}

func (b *AddServiceContextBuilder) Build(ctx context.Context, cmd command.SaveServicesChanges) (AddServiceContext, error) {
	serviceIDs := cmd.ReferencedServiceIDs()
	found := make([]entities.CatalogService, len(serviceIDs))

	var visit entities.Visit
	reads := []func(context.Context) error{
		func(ctx context.Context) error {
			v, err := b.visits.FindByID(ctx, cmd.VisitID, cmd.StudioID)
			if err != nil {
				return errors.Wrapf(err, "load visit %s", cmd.VisitID)
			}
			visit = v
			return nil
		},
	}
	for i, id := range serviceIDs {
		reads = append(reads, func(ctx context.Context) error {
			s, err := b.catalog.FindByID(ctx, cmd.StudioID, id)
			if err != nil {
				return errors.Wrapf(err, "load catalog service %s", id)
			}
			found[i] = s
			return nil
		})
	}

	if err := fanOut(ctx, reads...); err != nil {
		return AddServiceContext{}, err
	}

	services := make(map[string]entities.CatalogService, len(serviceIDs))
	for i, id := range serviceIDs {
		services[id] = found[i]
	}
	return AddServiceContext{cmd: cmd, visit: visit, services: services}, nil
}

// AddServiceValidators is the fixed rule order for service changes.
var AddServiceValidators = []Validator[AddServiceContext]{
	hasServiceChanges,
	visitExists,
	referencedServicesExist,
	referencedServicesActive,
	changedItemsBelongToVisit,
	noConflictingItemChanges,
	adjustmentsValid,
}

func hasServiceChanges(c AddServiceContext) error {
	cmd := c.cmd
	if len(cmd.Added) == 0 && len(cmd.Updated) == 0 && len(cmd.DeletedIDs) == 0 {
		return &entities.ValidationError{Err: entities.ErrValidation, Details: "no service changes requested"}
	}
	for _, a := range cmd.Added {
		if strings.TrimSpace(a.ServiceID) == "" {
			return &entities.ValidationError{Err: entities.ErrValidation, Details: "service id is required"}
		}
	}
	return nil
}

func visitExists(c AddServiceContext) error {
	if c.visit.ID() == "" {
		return &entities.NotFoundError{Entity: "visit", ID: c.cmd.VisitID}
	}
	return nil
}

func referencedServicesExist(c AddServiceContext) error {
	for _, a := range c.cmd.Added {
		if _, ok := c.Service(a.ServiceID); !ok {
			return &entities.NotFoundError{Entity: "service", ID: a.ServiceID}
		}
	}
	return nil
}

func referencedServicesActive(c AddServiceContext) error {
	for _, a := range c.cmd.Added {
		s, _ := c.Service(a.ServiceID)
		if !s.IsActive {
			return &entities.ValidationError{Err: entities.ErrServiceInactive, Details: s.Name}
		}
	}
	return nil
}

func changedItemsBelongToVisit(c AddServiceContext) error {
	for _, u := range c.cmd.Updated {
		if _, ok := c.visit.FindServiceItem(u.ItemID); !ok {
			return &entities.NotFoundError{Entity: "service item", ID: u.ItemID}
		}
	}
	for _, id := range c.cmd.DeletedIDs {
		if _, ok := c.visit.FindServiceItem(id); !ok {
			return &entities.NotFoundError{Entity: "service item", ID: id}
		}
	}
	return nil
}

func noConflictingItemChanges(c AddServiceContext) error {
	touched := make(map[string]string, len(c.cmd.Updated)+len(c.cmd.DeletedIDs))
	mark := func(id, op string) error {
		if prev, ok := touched[id]; ok {
			return &entities.ValidationError{Err: entities.ErrValidation, Details: fmt.Sprintf("duplicate change for service item %s (%s and %s)", id, prev, op)}
		}
		touched[id] = op
		return nil
	}
	for _, u := range c.cmd.Updated {
		if err := mark(u.ItemID, "update"); err != nil {
			return err
		}
	}
	for _, id := range c.cmd.DeletedIDs {
		if err := mark(id, "delete"); err != nil {
			return err
		}
	}
	return nil
}

// adjustmentsValid prices every added and updated line the way the visit
// will, so a line is only accepted when its final price is in range.
func adjustmentsValid(c AddServiceContext) error {
	for _, a := range c.cmd.Added {
		s, _ := c.Service(a.ServiceID)
		if err := entities.ValidatePricing(s.BasePriceNet, s.VatRate, entities.AdjustmentOrDefault(a.AdjustmentType), a.AdjustmentValue); err != nil {
			return err
		}
	}
	for _, u := range c.cmd.Updated {
		current, _ := c.visit.FindServiceItem(u.ItemID)
		base := current.BasePriceNet()
		if u.BasePriceNet != nil {
			b, err := entities.NewMoney(*u.BasePriceNet)
			if err != nil {
				return &entities.ValidationError{Err: entities.ErrValidation, Details: "base price cannot be negative"}
			}
			base = b
		}
		adjType, value := current.AdjustmentType(), current.AdjustmentValue()
		if u.AdjustmentType != nil {
			adjType = entities.AdjustmentOrDefault(*u.AdjustmentType)
		}
		if u.AdjustmentValue != nil {
			value = *u.AdjustmentValue
		}
		if err := entities.ValidatePricing(base, current.VatRate(), adjType, value); err != nil {
			return err
		}
	}
	return nil
}
