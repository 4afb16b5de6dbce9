package cardano

import (
	"fmt"
)

type amountField struct {
	name     string
	value    string
	signed   bool
	required bool
}

type keyField struct {
	name  string
	value string
}

// MissingFieldError is returned by Validate when a record lacks one of its identifying keys.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s", e.Field)
}

func checkKeys(fields ...keyField) error {
	for _, f := range fields {
		if f.value == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	return nil
}

func checkAmounts(fields ...amountField) error {
	for _, f := range fields {
		if f.value == "" {
			if f.required {
				return &MissingFieldError{Field: f.name}
			}
			continue
		}
		var err error
		if f.signed {
			_, err = ParseSignedAmount(f.value)
		} else {
			_, err = ParseAmount(f.value)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return nil
}

func checkAmountList(name string, amounts []Amount) error {
	for i, a := range amounts {
		prefix := fmt.Sprintf("%s[%d]", name, i)
		if err := checkKeys(keyField{name: prefix + ".unit", value: a.Unit}); err != nil {
			return err
		}
		if err := checkAmounts(amountField{name: prefix + ".quantity", value: a.Quantity, required: true}); err != nil {
			return err
		}
	}
	return nil
}

func (a *StakeAccount) Validate() error {
	if err := checkKeys(keyField{name: "address", value: a.Address}); err != nil {
		return err
	}
	return checkAmounts(
		amountField{name: "controlledAmountLovelace", value: a.ControlledAmountLovelace, required: true},
		amountField{name: "rewardsSumLovelace", value: a.RewardsSumLovelace},
		amountField{name: "withdrawalsSumLovelace", value: a.WithdrawalsSumLovelace},
		amountField{name: "reservesSumLovelace", value: a.ReservesSumLovelace},
		amountField{name: "treasurySumLovelace", value: a.TreasurySumLovelace},
		amountField{name: "withdrawableAmountLovelace", value: a.WithdrawableAmountLovelace},
	)
}

func (a *Address) Validate() error {
	if err := checkKeys(keyField{name: "address", value: a.Address}); err != nil {
		return err
	}
	return checkAmountList("balances", a.Balances)
}

func (a *Amount) Validate() error {
	if err := checkKeys(keyField{name: "unit", value: a.Unit}); err != nil {
		return err
	}
	return checkAmounts(amountField{name: "quantity", value: a.Quantity, required: true})
}

func (a *AssetSummary) Validate() error {
	if err := checkKeys(keyField{name: "assetId", value: a.AssetID}); err != nil {
		return err
	}
	return checkAmounts(amountField{name: "quantity", value: a.Quantity, required: true})
}

// Validate runs before the asset id is filled in, so only policy and quantity are required.
func (a *AssetDetail) Validate() error {
	if err := checkKeys(keyField{name: "policyId", value: a.PolicyID}); err != nil {
		return err
	}
	return checkAmounts(amountField{name: "quantity", value: a.Quantity, required: true})
}

// Validate checks keys and amount fields. Deposits are signed: a refunded deposit is reported as a negative value.
func (t *Transaction) Validate() error {
	if err := checkKeys(keyField{name: "hash", value: t.Hash}); err != nil {
		return err
	}
	if err := checkAmounts(
		amountField{name: "feesLovelace", value: t.FeesLovelace, required: true},
		amountField{name: "depositLovelace", value: t.DepositLovelace, signed: true},
	); err != nil {
		return err
	}
	return checkAmountList("outputs", t.Outputs)
}
