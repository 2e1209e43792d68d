package ast

// Children returns n's direct children in source order. This single
// NodeKind-keyed function is the one traversal primitive the rest of the
// package builds on (pretty-printing, find-by-kind-and-name, destroy)
// instead of a per-kind Visitor interface.
func Children(n Node) []Node {
	if n == nil {
		return nil
	}
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}

	switch v := n.(type) {
	case *Program:
		add(v.Package)
		for _, im := range v.Imports {
			add(im)
		}
		out = append(out, v.Declarations...)
	case *PackageDecl, *ImportDecl:
		// leaf

	case *FunctionDecl:
		for _, a := range v.Annotations.Annotations {
			add(a)
		}
		if v.NoneMarker != nil {
			add(v.NoneMarker)
		}
		for _, p := range v.Params {
			add(p)
		}
		add(v.ReturnType)
		add(v.Body)
	case *ParamDecl:
		add(v.Type)
		if v.Ownership != nil {
			add(v.Ownership)
		}
	case *MethodDecl:
		for _, a := range v.Annotations.Annotations {
			add(a)
		}
		if v.NoneMarker != nil {
			add(v.NoneMarker)
		}
		for _, p := range v.Params {
			add(p)
		}
		add(v.ReturnType)
		add(v.Body)
	case *ImplBlock:
		for _, a := range v.Annotations.Annotations {
			add(a)
		}
		for _, m := range v.Methods {
			add(m)
		}
	case *StructField:
		add(v.Type)
	case *StructDecl:
		for _, a := range v.Annotations.Annotations {
			add(a)
		}
		if v.NoneMarker != nil {
			add(v.NoneMarker)
		}
		for _, f := range v.Fields {
			add(f)
		}
	case *EnumVariantDecl:
		out = append(out, v.Types...)
	case *EnumDecl:
		for _, a := range v.Annotations.Annotations {
			add(a)
		}
		if v.NoneMarker != nil {
			add(v.NoneMarker)
		}
		for _, vv := range v.Variants {
			add(vv)
		}
	case *ExternDecl:
		for _, a := range v.Annotations.Annotations {
			add(a)
		}
		if v.NoneMarker != nil {
			add(v.NoneMarker)
		}
		for _, p := range v.Params {
			add(p)
		}
		add(v.ReturnType)
		if v.ReturnOwnership != nil {
			add(v.ReturnOwnership)
		}
	case *ConstDecl:
		for _, a := range v.Annotations.Annotations {
			add(a)
		}
		add(v.Type)
		add(v.Value)

	case *Block:
		out = append(out, v.Statements...)
	case *ExprStmt:
		add(v.Expr)
	case *LetStmt:
		add(v.Type)
		add(v.Init)
	case *ReturnStmt:
		add(v.Value)
	case *IfStmt:
		add(v.Cond)
		add(v.Then)
		add(v.Else)
	case *IfLetStmt:
		add(v.Pattern)
		add(v.Value)
		add(v.Then)
		if v.Else != nil {
			add(v.Else)
		}
	case *ForStmt:
		add(v.Iter)
		add(v.Body)
	case *MatchArm:
		add(v.Pattern)
		add(v.Body)
	case *MatchStmt:
		add(v.Subject)
		for _, a := range v.Arms {
			add(a)
		}
	case *SpawnStmt:
		add(v.Call)
	case *SpawnWithHandleStmt:
		add(v.Call)
	case *BreakStmt, *ContinueStmt:
		// leaf
	case *UnsafeBlock:
		add(v.Body)
	case *AssignmentStmt:
		add(v.Target)
		add(v.Value)

	case *BinaryExpr:
		add(v.Left)
		add(v.Right)
	case *UnaryExpr:
		add(v.Operand)
		add(v.SizeofType)
	case *CallExpr:
		add(v.Callee)
		out = append(out, v.Args...)
	case *AssociatedFuncCallExpr:
		out = append(out, v.Args...)
	case *FieldAccessExpr:
		add(v.Target)
	case *IndexAccessExpr:
		add(v.Target)
		add(v.Index)
	case *SliceExpr:
		add(v.Target)
		add(v.Low)
		add(v.High)
	case *SliceLengthAccessExpr:
		add(v.Target)
	case *AwaitExpr:
		add(v.Operand)
	case *StructLiteralField:
		add(v.Value)
	case *StructLiteralExpr:
		for _, f := range v.Fields {
			add(f)
		}
	case *ArrayLiteralExpr:
		out = append(out, v.Elements...)
		add(v.RepeatedValue)
		add(v.RepeatedCount)
	case *TupleLiteralExpr:
		out = append(out, v.Elements...)
	case *EnumVariantExpr:
		out = append(out, v.Args...)
	case *ConstExpr:
		add(v.Expr)
	case *IdentifierExpr:
		// leaf

	case *IntegerLiteral, *FloatLiteral, *StringLiteral, *BoolLiteral, *CharLiteral, *UnitLiteral:
		// leaf

	case *BaseType, *VoidType, *NoneMarker:
		// leaf
	case *SliceType:
		add(v.Elem)
	case *ArrayType:
		add(v.Size)
		add(v.Elem)
	case *PtrType:
		add(v.Elem)
	case *StructType:
		out = append(out, v.TypeArgs...)
	case *EnumType:
		out = append(out, v.TypeArgs...)
	case *TupleType:
		out = append(out, v.Elements...)
	case *ResultType:
		add(v.Ok)
		add(v.Err)
	case *OptionType:
		add(v.Elem)
	case *TaskHandleType:
		add(v.Elem)

	case *WildcardPattern, *IdentifierPattern:
		// leaf
	case *LiteralPattern:
		add(v.Literal)
	case *TuplePattern:
		out = append(out, v.Elements...)
	case *FieldPattern:
		add(v.Pattern)
	case *StructPattern:
		for _, f := range v.Fields {
			add(f)
		}
	case *EnumPattern:
		out = append(out, v.Elements...)

	case *Annotation, *OwnershipAnnotation:
		// leaf
	}

	return out
}
