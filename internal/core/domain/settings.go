package domain

// DefaultSettingValue is returned for any setting key that is absent or
// unreadable. Fee rates default to zero.
const DefaultSettingValue = "0.0"

// Fee rate setting keys, one per payment method.
const (
	SettingFeeCash   = "fee.cash"
	SettingFeePix    = "fee.pix"
	SettingFeeDebit  = "fee.debit"
	SettingFeeCredit = "fee.credit"
)

// FeeSettingKeys lists the fee rate keys in display order.
var FeeSettingKeys = []string{SettingFeeCash, SettingFeePix, SettingFeeDebit, SettingFeeCredit}
