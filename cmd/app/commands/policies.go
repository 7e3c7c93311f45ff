package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
	"github.com/allisson/caconnectors/internal/policy/http/dto"
	policyUseCase "github.com/allisson/caconnectors/internal/policy/usecase"
)

// RunSetPolicy creates or replaces a policy and prints its id.
func RunSetPolicy(
	ctx context.Context,
	useCase policyUseCase.PolicyUseCase,
	logger *slog.Logger,
	w io.Writer,
	input *policyDomain.SetPolicyInput,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	policy, err := useCase.Set(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to set policy: %w", err)
	}

	logger.Info("policy set",
		slog.String("name", policy.Name),
		slog.String("scope", string(policy.Scope)),
		slog.Int64("id", policy.ID),
	)

	if format == "json" {
		return writeJSON(w, dto.MapPolicyToResponse(policy))
	}
	_, err = fmt.Fprintf(w, "Policy %q set (id %d)\n", policy.Name, policy.ID)
	return err
}

// RunDeletePolicy removes a policy by name.
func RunDeletePolicy(
	ctx context.Context,
	useCase policyUseCase.PolicyUseCase,
	logger *slog.Logger,
	w io.Writer,
	name string,
) error {
	count, err := useCase.Delete(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to delete policy: %w", err)
	}

	logger.Info("policy deleted", slog.String("name", name))
	_, err = fmt.Fprintf(w, "Deleted %d policy(ies)\n", count)
	return err
}

// RunListPolicies prints the policies matching filter.
func RunListPolicies(
	ctx context.Context,
	useCase policyUseCase.PolicyUseCase,
	w io.Writer,
	filter policyDomain.PolicyFilter,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	policies, err := useCase.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list policies: %w", err)
	}

	if format == "json" {
		return writeJSON(w, dto.MapPoliciesToResponse(policies))
	}

	if len(policies) == 0 {
		_, err = fmt.Fprintln(w, "No policies found")
		return err
	}
	for _, p := range policies {
		realm := p.Realm
		if realm == "" {
			realm = "*"
		}
		if _, err := fmt.Fprintf(w, "%s\tscope=%s\trealm=%s\tactive=%t\taction=%s\n",
			p.Name, p.Scope, realm, p.Active, p.Action); err != nil {
			return err
		}
	}
	return nil
}
