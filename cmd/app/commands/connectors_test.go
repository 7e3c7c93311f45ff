package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
	caMocks "github.com/allisson/caconnectors/internal/caconnector/usecase/mocks"
)

func TestRunSaveConnector(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("success", func(t *testing.T) {
		mockUseCase := &caMocks.MockConnectorUseCase{}
		expected := &caDomain.SaveConnectorInput{
			Name: "myca",
			Type: "local",
			Data: map[string]string{"cakey": "/ca/key.pem", "cacert": "/ca/cert.pem"},
		}
		mockUseCase.On("Save", ctx, expected).Return(int64(3), nil)

		var out bytes.Buffer
		err := RunSaveConnector(ctx, mockUseCase, logger, &out, "myca", "local",
			[]string{"cakey=/ca/key.pem", "cacert=/ca/cert.pem"})

		require.NoError(t, err)
		require.Equal(t, "Connector \"myca\" saved (id 3)\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("invalid-param", func(t *testing.T) {
		mockUseCase := &caMocks.MockConnectorUseCase{}

		err := RunSaveConnector(ctx, mockUseCase, logger, &bytes.Buffer{}, "myca", "local", []string{"broken"})

		require.Error(t, err)
		mockUseCase.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown-type", func(t *testing.T) {
		mockUseCase := &caMocks.MockConnectorUseCase{}
		mockUseCase.On("Save", ctx, mock.Anything).Return(int64(0), caDomain.UnknownType("nope"))

		err := RunSaveConnector(ctx, mockUseCase, logger, &bytes.Buffer{}, "myca", "nope", nil)

		require.ErrorIs(t, err, caDomain.ErrUnknownType)
		require.Contains(t, err.Error(), "failed to save connector")
	})
}

func TestRunListConnectors(t *testing.T) {
	ctx := context.Background()
	filter := caDomain.ListFilter{Type: "local"}
	connectors := []*caDomain.CAConnector{
		{ID: 1, Name: "myca", Type: "local", Data: map[string]string{"cakey": "k", "cacert": "c"}},
	}

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &caMocks.MockConnectorUseCase{}
		mockUseCase.On("List", ctx, filter).Return(connectors, nil)

		var out bytes.Buffer
		err := RunListConnectors(ctx, mockUseCase, &out, filter, "text")

		require.NoError(t, err)
		require.Equal(t, "myca\ttype=local\tid=1\n  cacert=c\n  cakey=k\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &caMocks.MockConnectorUseCase{}
		mockUseCase.On("List", ctx, filter).Return(connectors, nil)

		var out bytes.Buffer
		err := RunListConnectors(ctx, mockUseCase, &out, filter, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"connectorname": "myca"`)
		require.Contains(t, out.String(), `"cakey": "k"`)
	})

	t.Run("empty", func(t *testing.T) {
		mockUseCase := &caMocks.MockConnectorUseCase{}
		mockUseCase.On("List", ctx, filter).Return([]*caDomain.CAConnector{}, nil)

		var out bytes.Buffer
		require.NoError(t, RunListConnectors(ctx, mockUseCase, &out, filter, "text"))
		require.Equal(t, "No connectors found\n", out.String())
	})
}

func TestRunDeleteConnector(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("deleted", func(t *testing.T) {
		mockUseCase := &caMocks.MockConnectorUseCase{}
		mockUseCase.On("Delete", ctx, "myca").Return(int64(1), nil)

		var out bytes.Buffer
		require.NoError(t, RunDeleteConnector(ctx, mockUseCase, logger, &out, "myca"))
		require.Equal(t, "Deleted 1 connector(s)\n", out.String())
	})

	t.Run("missing", func(t *testing.T) {
		mockUseCase := &caMocks.MockConnectorUseCase{}
		mockUseCase.On("Delete", ctx, "ghost").Return(int64(0), nil)

		var out bytes.Buffer
		require.NoError(t, RunDeleteConnector(ctx, mockUseCase, logger, &out, "ghost"))
		require.Equal(t, "Deleted 0 connector(s)\n", out.String())
	})
}

func TestRunDescribeConnectorType(t *testing.T) {
	ctx := context.Background()
	options := map[string]caDomain.OptionDescription{
		"cakey":  {Type: "str", Description: "The CA private key file", Required: true},
		"CRL":    {Type: "str", Description: "The CRL file"},
		"cacert": {Type: "str", Description: "The CA certificate file", Required: true},
	}

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &caMocks.MockConnectorUseCase{}
		mockUseCase.On("DescribeType", ctx, "local").Return(options, nil)

		var out bytes.Buffer
		err := RunDescribeConnectorType(ctx, mockUseCase, &out, "local", "text")

		require.NoError(t, err)
		require.Equal(t,
			"cacert\tstr (required)\tThe CA certificate file\n"+
				"cakey\tstr (required)\tThe CA private key file\n"+
				"CRL\tstr\tThe CRL file\n",
			out.String(),
		)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &caMocks.MockConnectorUseCase{}
		mockUseCase.On("DescribeType", ctx, "local").Return(options, nil)

		var out bytes.Buffer
		require.NoError(t, RunDescribeConnectorType(ctx, mockUseCase, &out, "local", "json"))
		require.Contains(t, out.String(), `"required": true`)
	})

	t.Run("unknown-type", func(t *testing.T) {
		mockUseCase := &caMocks.MockConnectorUseCase{}
		mockUseCase.On("DescribeType", ctx, "nope").Return(nil, caDomain.UnknownType("nope"))

		err := RunDescribeConnectorType(ctx, mockUseCase, &bytes.Buffer{}, "nope", "text")
		require.ErrorIs(t, err, caDomain.ErrUnknownType)
	})
}
