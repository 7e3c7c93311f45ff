package usecase

import (
	"context"
	"errors"

	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
	caService "github.com/allisson/caconnectors/internal/caconnector/service"
	"github.com/allisson/caconnectors/internal/database"
	"github.com/allisson/caconnectors/internal/validation"
)

// connectorUseCase implements ConnectorUseCase on top of a ConnectorRepository and the
// type registry.
type connectorUseCase struct {
	txManager     database.TxManager
	connectorRepo ConnectorRepository
	registry      *caService.Registry
}

// Save validates and stores a connector. The type factory sees the merged configuration,
// so an update only has to carry the keys that change.
func (c *connectorUseCase) Save(ctx context.Context, input *caDomain.SaveConnectorInput) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, validation.WrapValidationError(err)
	}

	if _, err := c.registry.Lookup(input.Type); err != nil {
		return 0, err
	}

	var id int64
	err := c.txManager.WithTx(ctx, func(ctx context.Context) error {
		var stored map[string]string
		existing, err := c.connectorRepo.GetByName(ctx, input.Name)
		switch {
		case err == nil:
			stored = existing.Data
		case errors.Is(err, caDomain.ErrConnectorNotFound):
		default:
			return err
		}

		connector, err := c.registry.Build(input.Type, input.Name, caDomain.MergeData(stored, input.Data))
		if err != nil {
			return err
		}

		id, err = c.connectorRepo.Upsert(ctx, connector.Name(), connector.Type())
		if err != nil {
			return err
		}

		if len(input.Data) == 0 {
			return nil
		}
		return c.connectorRepo.SetConfig(ctx, id, connector.Config())
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// List returns connectors matching the filter.
func (c *connectorUseCase) List(
	ctx context.Context,
	filter caDomain.ListFilter,
) ([]*caDomain.CAConnector, error) {
	return c.connectorRepo.List(ctx, filter)
}

// Delete removes a connector by name.
func (c *connectorUseCase) Delete(ctx context.Context, name string) (int64, error) {
	var count int64
	err := c.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		count, err = c.connectorRepo.Delete(ctx, name)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DescribeType returns the option descriptions of a registered type.
func (c *connectorUseCase) DescribeType(
	ctx context.Context,
	typeID string,
) (map[string]caDomain.OptionDescription, error) {
	return c.registry.Describe(typeID)
}

// NewConnectorUseCase creates a new ConnectorUseCase with the provided dependencies.
func NewConnectorUseCase(
	txManager database.TxManager,
	connectorRepo ConnectorRepository,
	registry *caService.Registry,
) ConnectorUseCase {
	return &connectorUseCase{
		txManager:     txManager,
		connectorRepo: connectorRepo,
		registry:      registry,
	}
}
