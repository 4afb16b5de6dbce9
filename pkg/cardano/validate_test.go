package cardano

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStakeAccountValidate(t *testing.T) {
	acc := StakeAccount{Address: "stake1u8x", ControlledAmountLovelace: "5000000", RewardsSumLovelace: "0"}
	require.NoError(t, acc.Validate())

	acc.WithdrawalsSumLovelace = "-1"
	err := acc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "withdrawalsSumLovelace")
}

func TestTransactionValidate(t *testing.T) {
	tx := Transaction{
		Hash:            "abc",
		FeesLovelace:    "174433",
		DepositLovelace: "-2000000",
		Outputs:         []Amount{{Unit: LovelaceUnit, Quantity: "42000000"}},
	}
	require.NoError(t, tx.Validate())

	tx.Outputs = append(tx.Outputs, Amount{Unit: "abc", Quantity: "1.5"})
	err := tx.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outputs[1].quantity")
}

func TestAddressTypeUnmarshal(t *testing.T) {
	var out struct {
		Type AddressType `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"shelley"}`), &out))
	assert.Equal(t, AddressTypeShelley, out.Type)

	require.NoError(t, json.Unmarshal([]byte(`{"type":"byron"}`), &out))
	assert.Equal(t, AddressTypeByron, out.Type)

	assert.Error(t, json.Unmarshal([]byte(`{"type":"martian"}`), &out))
}

func TestAddressHasStakeAddress(t *testing.T) {
	empty := ""
	stake := "stake1u8x"
	assert.False(t, (&Address{}).HasStakeAddress())
	assert.False(t, (&Address{StakeAddress: &empty}).HasStakeAddress())
	assert.True(t, (&Address{StakeAddress: &stake}).HasStakeAddress())
}
