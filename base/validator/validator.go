package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/zkzk-trade/goapi/domain/auction"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// IsValidEther reports whether amount is a non negative decimal with at most 18 fractional digits
func IsValidEther(amount string) bool {
	_, err := auction.ParseEther(amount)
	return err == nil
}

// New returns a validator knowing the "ethaddr" and "ether" tags
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("ethaddr", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	_ = v.RegisterValidation("ether", func(fl validator.FieldLevel) bool {
		return IsValidEther(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
