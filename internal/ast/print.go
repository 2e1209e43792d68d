package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint renders n as a deterministic, indented tree, primarily for tests.
// Child order always matches source order, so Sprint(n) after Clone(n)
// produces byte-identical output to Sprint of the original (spec.md §8).
func Sprint(n Node) string {
	var sb strings.Builder
	sprintNode(&sb, n, 0)
	return sb.String()
}

func sprintNode(sb *strings.Builder, n Node, depth int) {
	if n == nil {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString("<nil>\n")
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(label(n))
	sb.WriteByte('\n')
	for _, child := range Children(n) {
		sprintNode(sb, child, depth+1)
	}
}

// label renders a single line summarizing n's kind and scalar payload,
// without descending into children (Sprint handles recursion uniformly).
func label(n Node) string {
	kind := n.NodeKind().String()
	switch v := n.(type) {
	case *PackageDecl:
		return fmt.Sprintf("%s(%s)", kind, v.Name)
	case *ImportDecl:
		if v.Alias != "" {
			return fmt.Sprintf("%s(%q as %s)", kind, v.Path, v.Alias)
		}
		return fmt.Sprintf("%s(%q)", kind, v.Path)
	case *FunctionDecl:
		return fmt.Sprintf("%s(%s %s)", kind, v.Visibility, v.Name)
	case *ParamDecl:
		return fmt.Sprintf("%s(%s)", kind, v.Name)
	case *MethodDecl:
		return fmt.Sprintf("%s(%s %s instance=%v)", kind, v.Visibility, v.Name, v.IsInstance)
	case *ImplBlock:
		return fmt.Sprintf("%s(%s)", kind, v.TypeName)
	case *StructField:
		return fmt.Sprintf("%s(%s %s)", kind, v.Visibility, v.Name)
	case *StructDecl:
		return fmt.Sprintf("%s(%s %s)", kind, v.Visibility, v.Name)
	case *EnumVariantDecl:
		return fmt.Sprintf("%s(%s)", kind, v.Name)
	case *EnumDecl:
		return fmt.Sprintf("%s(%s %s)", kind, v.Visibility, v.Name)
	case *ExternDecl:
		return fmt.Sprintf("%s(%s %s lib=%q)", kind, v.Visibility, v.Name, v.Library)
	case *ConstDecl:
		return fmt.Sprintf("%s(%s %s)", kind, v.Visibility, v.Name)
	case *LetStmt:
		return fmt.Sprintf("%s(mut=%v %s)", kind, v.Mutable, v.Name)
	case *ForStmt:
		return fmt.Sprintf("%s(%s)", kind, v.Binding)
	case *SpawnWithHandleStmt:
		return fmt.Sprintf("%s(%s)", kind, v.HandleName)
	case *AssignmentStmt:
		return kind
	case *BinaryExpr:
		return fmt.Sprintf("%s(%s)", kind, v.Op)
	case *UnaryExpr:
		return fmt.Sprintf("%s(%s)", kind, v.Op)
	case *CallExpr:
		return kind
	case *AssociatedFuncCallExpr:
		return fmt.Sprintf("%s(%s::%s)", kind, v.TypeName, v.FuncName)
	case *FieldAccessExpr:
		return fmt.Sprintf("%s(.%s)", kind, v.Field)
	case *SliceLengthAccessExpr:
		return kind
	case *StructLiteralExpr:
		return fmt.Sprintf("%s(%s)", kind, v.TypeName)
	case *StructLiteralField:
		return fmt.Sprintf("%s(%s)", kind, v.Name)
	case *ArrayLiteralExpr:
		return fmt.Sprintf("%s(%v)", kind, arrayLiteralKindName(v.LiteralKind))
	case *EnumVariantExpr:
		return fmt.Sprintf("%s(%s.%s)", kind, v.TypeName, v.VariantName)
	case *IdentifierExpr:
		return fmt.Sprintf("%s(%s)", kind, v.Name)
	case *IntegerLiteral:
		return fmt.Sprintf("%s(%d)", kind, v.Value)
	case *FloatLiteral:
		return fmt.Sprintf("%s(%s)", kind, strconv.FormatFloat(v.Value, 'g', -1, 64))
	case *StringLiteral:
		return fmt.Sprintf("%s(%q)", kind, v.Value)
	case *BoolLiteral:
		return fmt.Sprintf("%s(%v)", kind, v.Value)
	case *CharLiteral:
		return fmt.Sprintf("%s(%q)", kind, v.Value)
	case *BaseType:
		return fmt.Sprintf("%s(%s)", kind, v.Name)
	case *StructType:
		return fmt.Sprintf("%s(%s)", kind, v.Name)
	case *EnumType:
		return fmt.Sprintf("%s(%s)", kind, v.Name)
	case *PtrType:
		if v.Mutability == PtrMut {
			return fmt.Sprintf("%s(mut)", kind)
		}
		return fmt.Sprintf("%s(const)", kind)
	case *IdentifierPattern:
		return fmt.Sprintf("%s(%s)", kind, v.Name)
	case *StructPattern:
		return fmt.Sprintf("%s(%s)", kind, v.TypeName)
	case *FieldPattern:
		return fmt.Sprintf("%s(%s)", kind, v.Name)
	case *EnumPattern:
		return fmt.Sprintf("%s(%s.%s)", kind, v.TypeName, v.VariantName)
	case *Annotation:
		return fmt.Sprintf("%s(#[%s])", kind, v.Name)
	case *OwnershipAnnotation:
		return fmt.Sprintf("%s(%s)", kind, v.Transfer)
	default:
		return kind
	}
}

func arrayLiteralKindName(k ArrayLiteralKind) string {
	switch k {
	case ArrayLiteralEmpty:
		return "empty"
	case ArrayLiteralElements:
		return "elements"
	case ArrayLiteralRepeated:
		return "repeated"
	default:
		return "unknown"
	}
}
