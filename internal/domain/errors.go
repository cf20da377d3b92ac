package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateMember             = errors.New("member already registered")
	ErrMemberNotFound              = errors.New("member not found")
	ErrInvalidMember               = errors.New("invalid member data")
	ErrDuplicateSubscriptionNumber = errors.New("subscription number already exists")
	ErrInvalidSubscriptionNumber   = errors.New("invalid subscription number")
	ErrInvalidAmount               = errors.New("amount must be positive")
	ErrNoPriceForParameters        = errors.New("no price for training parameters")
	ErrNoActiveSubscription        = errors.New("no active subscription")
	ErrInsufficientFunds           = errors.New("insufficient funds")
	ErrInvalidPeriod               = errors.New("invalid period")
	ErrStorageFailure              = errors.New("storage failure")
)

var known = []error{
	ErrDuplicateMember,
	ErrMemberNotFound,
	ErrInvalidMember,
	ErrDuplicateSubscriptionNumber,
	ErrInvalidSubscriptionNumber,
	ErrInvalidAmount,
	ErrNoPriceForParameters,
	ErrNoActiveSubscription,
	ErrInsufficientFunds,
	ErrInvalidPeriod,
	ErrStorageFailure,
}

// StorageFailure wraps err into ErrStorageFailure unless it already belongs
// to the ledger error set.
func StorageFailure(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range known {
		if errors.Is(err, k) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrStorageFailure, err)
}
