package codegen

// Identifier names used in generated Match bodies, shared by both emission
// strategies so the two stay visually consistent.
const (
	InputName    = "input"
	RestName     = "rest"
	ActiveName   = "active"
	NextName     = "next"
	AnyName      = "any"
	CurName      = "cur"
	CurLenName   = "curLen"
	NxtName      = "nxt"
	NxtLenName   = "nxtLen"
	StampName    = "stamp"
	GenName      = "gen"
	RuneVarName  = "c"
)
