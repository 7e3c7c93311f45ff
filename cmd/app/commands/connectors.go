package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
	"github.com/allisson/caconnectors/internal/caconnector/http/dto"
	caUseCase "github.com/allisson/caconnectors/internal/caconnector/usecase"
)

// RunSaveConnector creates or updates a connector. params are key=value pairs merged into
// the stored configuration.
func RunSaveConnector(
	ctx context.Context,
	useCase caUseCase.ConnectorUseCase,
	logger *slog.Logger,
	w io.Writer,
	name, typeID string,
	params []string,
) error {
	data, err := parseParams(params)
	if err != nil {
		return err
	}

	id, err := useCase.Save(ctx, &caDomain.SaveConnectorInput{Name: name, Type: typeID, Data: data})
	if err != nil {
		return fmt.Errorf("failed to save connector: %w", err)
	}

	logger.Info("connector saved",
		slog.String("name", name),
		slog.String("type", typeID),
		slog.Int64("id", id),
	)
	_, err = fmt.Fprintf(w, "Connector %q saved (id %d)\n", name, id)
	return err
}

// RunListConnectors prints connectors with their full configuration.
func RunListConnectors(
	ctx context.Context,
	useCase caUseCase.ConnectorUseCase,
	w io.Writer,
	filter caDomain.ListFilter,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	connectors, err := useCase.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list connectors: %w", err)
	}

	if format == "json" {
		return writeJSON(w, dto.MapConnectorsToResponse(connectors))
	}

	if len(connectors) == 0 {
		_, err = fmt.Fprintln(w, "No connectors found")
		return err
	}
	for _, c := range connectors {
		if _, err := fmt.Fprintf(w, "%s\ttype=%s\tid=%d\n", c.Name, c.Type, c.ID); err != nil {
			return err
		}
		keys := make([]string, 0, len(c.Data))
		for k := range c.Data {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if _, err := fmt.Fprintf(w, "  %s=%s\n", k, c.Data[k]); err != nil {
				return err
			}
		}
	}
	return nil
}

// RunDeleteConnector removes a connector. A missing connector is reported, not an error.
func RunDeleteConnector(
	ctx context.Context,
	useCase caUseCase.ConnectorUseCase,
	logger *slog.Logger,
	w io.Writer,
	name string,
) error {
	count, err := useCase.Delete(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to delete connector: %w", err)
	}

	logger.Info("connector deleted", slog.String("name", name), slog.Int64("count", count))
	_, err = fmt.Fprintf(w, "Deleted %d connector(s)\n", count)
	return err
}

// RunDescribeConnectorType prints the configuration keys accepted by a connector type.
func RunDescribeConnectorType(
	ctx context.Context,
	useCase caUseCase.ConnectorUseCase,
	w io.Writer,
	typeID, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	options, err := useCase.DescribeType(ctx, typeID)
	if err != nil {
		return fmt.Errorf("failed to describe connector type: %w", err)
	}

	if format == "json" {
		return writeJSON(w, options)
	}

	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	for _, k := range keys {
		opt := options[k]
		required := ""
		if opt.Required {
			required = " (required)"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s%s\t%s\n", k, opt.Type, required, opt.Description); err != nil {
			return err
		}
	}
	return nil
}
