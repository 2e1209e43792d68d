package ast

import (
	"testing"

	"github.com/asthra-lang/asthra-frontend/internal/token"
)

func pos(line, col int) token.Position {
	return token.Position{Filename: "t.asthra", Line: line, Column: col, Offset: col - 1}
}

func span(line, col int) token.Span {
	p := pos(line, col)
	return token.Span{Start: p, End: p}
}

func sampleProgram() *Program {
	ret := NewIntegerLiteral(span(1, 1), 42)
	body := NewBlock(span(1, 1), []Node{NewReturnStmt(span(1, 1), ret)})
	fn := NewFunctionDecl(span(1, 1), VisibilityPub, "main", nil, NewBaseType(span(1, 1), "i32"), body)
	pkg := NewPackageDecl(span(1, 1), "test")
	return NewProgram(span(1, 1), pkg, nil, []Node{fn})
}

func TestChildren_MatchPrintDepthOne(t *testing.T) {
	prog := sampleProgram()
	children := Children(prog)
	if len(children) != 2 {
		t.Fatalf("expected 2 children (package, function), got %d", len(children))
	}
	if children[0].NodeKind() != KindPackageDecl {
		t.Errorf("expected first child to be PackageDecl, got %v", children[0].NodeKind())
	}
	if children[1].NodeKind() != KindFunctionDecl {
		t.Errorf("expected second child to be FunctionDecl, got %v", children[1].NodeKind())
	}
}

func TestClone_ProducesIndependentEqualTree(t *testing.T) {
	prog := sampleProgram()
	clone := Clone(prog)

	original := Sprint(prog)
	cloned := Sprint(clone)
	if original != cloned {
		t.Errorf("clone printed differently:\noriginal: %q\nclone:    %q", original, cloned)
	}

	clonedProg, ok := clone.(*Program)
	if !ok {
		t.Fatalf("clone is not *Program: %T", clone)
	}
	if clonedProg.Package == prog.Package {
		t.Error("clone shares the PackageDecl pointer with the original")
	}
	if clonedProg.Declarations[0] == prog.Declarations[0] {
		t.Error("clone shares a top-level declaration pointer with the original")
	}
}

func TestDestroy_ClonedSubtreeDoesNotAffectOriginal(t *testing.T) {
	prog := sampleProgram()
	clone := Clone(prog)

	Destroy(clone)

	if Sprint(prog) != Sprint(sampleProgram()) {
		t.Error("destroying the clone mutated the original's printed form")
	}
}

func TestDestroy_CountsWhenEnabled(t *testing.T) {
	EnableDestructionStats(true)
	defer EnableDestructionStats(false)
	ResetDestructionStats()

	Destroy(sampleProgram())

	if DestroyedNodeCount() == 0 {
		t.Error("expected destruction stats to count at least one node")
	}
}

func TestDestroy_DoesNotCountWhenDisabled(t *testing.T) {
	EnableDestructionStats(false)
	ResetDestructionStats()

	Destroy(sampleProgram())

	if DestroyedNodeCount() != 0 {
		t.Error("expected destruction stats to stay at zero while disabled")
	}
}

func TestFindByKindAndName(t *testing.T) {
	prog := sampleProgram()

	found := FindByKindAndName(prog, KindFunctionDecl, "main")
	if found == nil {
		t.Fatal("expected to find FunctionDecl named main")
	}
	fn, ok := found.(*FunctionDecl)
	if !ok || fn.Name != "main" {
		t.Fatalf("found wrong node: %#v", found)
	}

	if FindByKindAndName(prog, KindFunctionDecl, "nope") != nil {
		t.Error("expected no match for a name that doesn't exist")
	}
}

func TestTypeInfo_SharedNotClonedByDefault(t *testing.T) {
	lit := NewIntegerLiteral(span(1, 1), 7)
	marker := struct{ tag string }{"resolved-type"}
	lit.TypeInfo = marker

	clone := Clone(lit).(*IntegerLiteral)
	if clone.TypeInfo != lit.TypeInfo {
		t.Error("expected cloned TypeInfo to be the same shared value as the original")
	}
}

func TestSprint_IsDeterministic(t *testing.T) {
	prog := sampleProgram()
	first := Sprint(prog)
	second := Sprint(prog)
	if first != second {
		t.Error("Sprint should be deterministic across repeated calls")
	}
}

func TestNoneMarkerDistinctFromVoidAndUnit(t *testing.T) {
	none := NewNoneMarker(span(1, 1))
	void := NewVoidType(span(1, 1))
	unit := NewUnitLiteral(span(1, 1))

	if none.NodeKind() == void.NodeKind() || none.NodeKind() == unit.NodeKind() || void.NodeKind() == unit.NodeKind() {
		t.Error("none, void, and unit must be distinct node kinds")
	}
}
