package unwinder

import "fmt"

// CFI rule vocabulary, as produced by the frame-information
// interpreter for one program address. The context core stores and
// moves register values; it never interprets these rules itself.

type RuleKind int

const (
	Rule_Unchanged RuleKind = iota
	Rule_Undefined
	Rule_CFAOffset
	Rule_Register
	Rule_Expression
)

type RegisterRule struct {
	Reg        Reg
	Kind       RuleKind
	Offset     int64
	Register   Reg
	Expression []byte
}

// RuleSet is the ordered rule list for one program address.
type RuleSet []RegisterRule

func (k RuleKind) String() string {
	switch k {
	case Rule_Unchanged:
		return "unchanged"
	case Rule_Undefined:
		return "undefined"
	case Rule_CFAOffset:
		return "cfa-offset"
	case Rule_Register:
		return "register"
	case Rule_Expression:
		return "expression"
	}
	return "unknown"
}

func (r RegisterRule) String() string {
	switch r.Kind {
	case Rule_CFAOffset:
		return fmt.Sprintf("reg%d: [cfa%+d]", r.Reg, r.Offset)
	case Rule_Register:
		return fmt.Sprintf("reg%d: reg%d", r.Reg, r.Register)
	case Rule_Expression:
		return fmt.Sprintf("reg%d: expr(%d bytes)", r.Reg, len(r.Expression))
	}
	return fmt.Sprintf("reg%d: %v", r.Reg, r.Kind)
}
