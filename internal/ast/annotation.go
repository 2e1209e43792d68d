package ast

import "github.com/asthra-lang/asthra-frontend/internal/token"

// Annotation is `#[name]` or `#[name(arg, ...)]`, attached to the following
// declaration. Unknown names parse successfully and are preserved verbatim;
// semantic analysis decides whether to accept them.
type Annotation struct {
	base
	Name string
	Args []string
}

func NewAnnotation(span token.Span, name string, args []string) *Annotation {
	return &Annotation{base: newBase(KindAnnotation, span), Name: name, Args: args}
}

// OwnershipTransfer is the closed set of FFI transfer annotations an extern
// parameter or return type may carry.
type OwnershipTransfer int

const (
	TransferNone OwnershipTransfer = iota
	TransferFull
	TransferBorrowed
)

func (t OwnershipTransfer) String() string {
	switch t {
	case TransferFull:
		return "transfer_full"
	case TransferBorrowed:
		return "borrowed"
	default:
		return "transfer_none"
	}
}

// OwnershipAnnotation tags an extern parameter or return position with an
// ownership-transfer kind. Combining two on the same position is a fatal
// parse error, enforced by the parser, not by this node.
type OwnershipAnnotation struct {
	base
	Transfer OwnershipTransfer
}

func NewOwnershipAnnotation(span token.Span, transfer OwnershipTransfer) *OwnershipAnnotation {
	return &OwnershipAnnotation{base: newBase(KindOwnershipAnnotation, span), Transfer: transfer}
}
