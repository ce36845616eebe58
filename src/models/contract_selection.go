package models

import "fmt"

// ContractSelection controls which sides of the chain a scan evaluates.
type ContractSelection string

const (
	SelectCalls ContractSelection = "calls"
	SelectPuts  ContractSelection = "puts"
	SelectBoth  ContractSelection = "both"
)

func (c ContractSelection) Validate() error {
	if c != SelectCalls && c != SelectPuts && c != SelectBoth {
		return fmt.Errorf("ContractSelection: Validate: invalid contract selection: %s", c)
	}

	return nil
}

func (c ContractSelection) OptionTypes() []OptionType {
	switch c {
	case SelectCalls:
		return []OptionType{Call}
	case SelectPuts:
		return []OptionType{Put}
	case SelectBoth:
		return []OptionType{Call, Put}
	default:
		return nil
	}
}
