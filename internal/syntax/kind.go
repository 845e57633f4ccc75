package syntax

// NodeKind tags every node in the concrete syntax tree.
type NodeKind uint8

const (
	// KindError marks a region the grammar could not accept; it spans the
	// skipped tokens and lives wherever the production gave up.
	KindError NodeKind = iota
	// KindProgram is the root: GlobalDirective* GlobalDeclaration*.
	KindProgram
	// KindGlobalDirective is 'enable <ident>;'.
	KindGlobalDirective

	// Declarations
	KindImportDecl
	KindImportItem
	KindUseDecl
	KindGlobalVarDecl
	KindGlobalConstDecl
	KindOverrideDecl
	KindTypeAliasDecl
	KindStructDecl
	KindStructMember
	KindFnDecl
	KindParam
	KindAttribute
	KindTypeRef

	// Statements
	KindBlock
	KindEmptyStmt
	KindReturnStmt
	KindIfStmt
	KindSwitchStmt
	KindSwitchCase
	KindLoopStmt
	KindContinuingBlock
	KindForStmt
	KindCallStmt
	KindVarStmt
	KindBreakStmt
	KindContinueStmt
	KindDiscardStmt
	KindAssignStmt
	KindIncrDecrStmt
	KindFallthroughStmt

	// Expressions
	KindBinaryExpr
	KindUnaryExpr
	KindCallExpr
	KindTypeCallExpr
	KindBitcastExpr
	KindIndexExpr
	KindMemberExpr
	KindParenExpr
	KindIdentExpr
	KindLiteralExpr
)

var nodeKindNames = map[NodeKind]string{
	KindError:           "Error",
	KindProgram:         "Program",
	KindGlobalDirective: "GlobalDirective",
	KindImportDecl:      "ImportDecl",
	KindImportItem:      "ImportItem",
	KindUseDecl:         "UseDecl",
	KindGlobalVarDecl:   "GlobalVarDecl",
	KindGlobalConstDecl: "GlobalConstDecl",
	KindOverrideDecl:    "OverrideDecl",
	KindTypeAliasDecl:   "TypeAliasDecl",
	KindStructDecl:      "StructDecl",
	KindStructMember:    "StructMember",
	KindFnDecl:          "FnDecl",
	KindParam:           "Param",
	KindAttribute:       "Attribute",
	KindTypeRef:         "TypeRef",
	KindBlock:           "Block",
	KindEmptyStmt:       "EmptyStmt",
	KindReturnStmt:      "ReturnStmt",
	KindIfStmt:          "IfStmt",
	KindSwitchStmt:      "SwitchStmt",
	KindSwitchCase:      "SwitchCase",
	KindLoopStmt:        "LoopStmt",
	KindContinuingBlock: "ContinuingBlock",
	KindForStmt:         "ForStmt",
	KindCallStmt:        "CallStmt",
	KindVarStmt:         "VarStmt",
	KindBreakStmt:       "BreakStmt",
	KindContinueStmt:    "ContinueStmt",
	KindDiscardStmt:     "DiscardStmt",
	KindAssignStmt:      "AssignStmt",
	KindIncrDecrStmt:    "IncrDecrStmt",
	KindFallthroughStmt: "FallthroughStmt",
	KindBinaryExpr:      "BinaryExpr",
	KindUnaryExpr:       "UnaryExpr",
	KindCallExpr:        "CallExpr",
	KindTypeCallExpr:    "TypeCallExpr",
	KindBitcastExpr:     "BitcastExpr",
	KindIndexExpr:       "IndexExpr",
	KindMemberExpr:      "MemberExpr",
	KindParenExpr:       "ParenExpr",
	KindIdentExpr:       "IdentExpr",
	KindLiteralExpr:     "LiteralExpr",
}

func (k NodeKind) String() string {
	if s, ok := nodeKindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// IsFoldable reports whether the node kind opens a region an editor folds.
func (k NodeKind) IsFoldable() bool {
	switch k {
	case KindBlock, KindStructDecl, KindSwitchStmt, KindSwitchCase,
		KindLoopStmt, KindContinuingBlock:
		return true
	default:
		return false
	}
}
