// Package fees implements the minimum-fee hook invoked when a document is
// created. Real deployments can swap in their own billing check.
package fees

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/dmitrijs2005/signly/internal/common"
	"github.com/dmitrijs2005/signly/internal/server/models"
)

// Noop accepts every caller.
type Noop struct{}

func (Noop) Check(context.Context, models.Identity, models.FeeProof) error { return nil }

// MinimumDeposit accepts a FeeProof whose Deposit is at least Minimum.
// A nil Minimum is zero.
type MinimumDeposit struct {
	Minimum *big.Int
}

// NewMinimumDeposit parses minimum as a base-10 integer in the smallest
// currency unit.
func NewMinimumDeposit(minimum string) (*MinimumDeposit, error) {
	m, ok := new(big.Int).SetString(strings.TrimSpace(minimum), 10)
	if !ok || m.Sign() < 0 {
		return nil, fmt.Errorf("invalid minimum fee %q", minimum)
	}
	return &MinimumDeposit{Minimum: m}, nil
}

func (m *MinimumDeposit) Check(_ context.Context, _ models.Identity, proof models.FeeProof) error {
	minimum := m.Minimum
	if minimum == nil {
		minimum = new(big.Int)
	}

	deposit, ok := new(big.Int).SetString(strings.TrimSpace(proof.Deposit), 10)
	if !ok {
		return fmt.Errorf("%w: attach at least %s", common.ErrInsufficientFee, minimum)
	}
	if deposit.Cmp(minimum) < 0 {
		return fmt.Errorf("%w: attached %s, minimum is %s", common.ErrInsufficientFee, deposit, minimum)
	}
	return nil
}

// Checker is the capability the document service calls.
type Checker interface {
	Check(ctx context.Context, caller models.Identity, proof models.FeeProof) error
}

// FromConfig returns Noop for a zero minimum and MinimumDeposit otherwise.
func FromConfig(minimum string) (Checker, error) {
	m, err := NewMinimumDeposit(minimum)
	if err != nil {
		return nil, err
	}
	if m.Minimum.Sign() == 0 {
		return Noop{}, nil
	}
	return m, nil
}
