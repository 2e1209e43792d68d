package ast

// FindByKindAndName performs an in-order traversal of root and returns the
// first descendant (root included) whose Kind equals kind and, for kinds
// that carry a name, whose name equals name. For kinds with no name, name is
// ignored and any node of that kind matches.
func FindByKindAndName(root Node, kind Kind, name string) Node {
	if root == nil {
		return nil
	}
	if root.NodeKind() == kind {
		if n, named := nodeName(root); !named || n == name {
			return root
		}
	}
	for _, child := range Children(root) {
		if found := FindByKindAndName(child, kind, name); found != nil {
			return found
		}
	}
	return nil
}

// nodeName returns the identifying name of n and whether n is a named kind.
func nodeName(n Node) (string, bool) {
	switch v := n.(type) {
	case *PackageDecl:
		return v.Name, true
	case *FunctionDecl:
		return v.Name, true
	case *ParamDecl:
		return v.Name, true
	case *MethodDecl:
		return v.Name, true
	case *StructDecl:
		return v.Name, true
	case *StructField:
		return v.Name, true
	case *EnumDecl:
		return v.Name, true
	case *EnumVariantDecl:
		return v.Name, true
	case *ExternDecl:
		return v.Name, true
	case *ImplBlock:
		return v.TypeName, true
	case *ConstDecl:
		return v.Name, true
	case *LetStmt:
		return v.Name, true
	case *ForStmt:
		return v.Binding, true
	case *SpawnWithHandleStmt:
		return v.HandleName, true
	case *IdentifierExpr:
		return v.Name, true
	case *IdentifierPattern:
		return v.Name, true
	case *StructLiteralExpr:
		return v.TypeName, true
	case *StructLiteralField:
		return v.Name, true
	case *StructPattern:
		return v.TypeName, true
	case *FieldPattern:
		return v.Name, true
	case *EnumPattern:
		return v.VariantName, true
	case *EnumVariantExpr:
		return v.VariantName, true
	case *FieldAccessExpr:
		return v.Field, true
	case *BaseType:
		return v.Name, true
	case *StructType:
		return v.Name, true
	case *EnumType:
		return v.Name, true
	case *Annotation:
		return v.Name, true
	case *ImportDecl:
		return v.Path, true
	default:
		return "", false
	}
}
