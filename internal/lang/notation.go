package lang

// Notation is a declarative description of how a construct is pretty
// printed (spec §6). The core stores notation expressions verbatim and
// passes them through to the pretty-printer collaborator; it never
// evaluates them. The only field the core itself reads is a construct's
// QuickKey (see Construct).
type Notation struct {
	Expr Expr
}

// Expr is an opaque notation expression node. The concrete variants
// below exist so language files can be decoded into a typed tree instead
// of a bag of maps, but the core's only obligation is to carry them
// through unchanged.
type Expr interface {
	isExpr()
}

// Literal renders a fixed string.
type Literal struct{ Text string }

// TextExpr renders a Texty node's own text payload.
type TextExpr struct{}

// Child renders the i'th child of the current node.
type Child struct{ Index int }

// Concat renders A followed by B.
type Concat struct{ A, B Expr }

// Choice renders A if it fits the layout budget, else B.
type Choice struct{ A, B Expr }

// Indent renders Body indented under Prefix, with an optional Marker.
type Indent struct {
	Prefix Expr
	Marker Expr // nil if absent
	Body   Expr
}

// NewlineExpr forces a line break.
type NewlineExpr struct{}

// Flat forces E to render on a single line.
type Flat struct{ E Expr }

// FoldSide selects which side of a pairwise fold a notation applies to.
type FoldSide int

const (
	// Left refers to the accumulated-so-far side of a fold.
	Left FoldSide = iota
	// Right refers to the next-item side of a fold.
	Right
)

// Fold renders a Listy node's children by repeated application of Join,
// seeded with First.
type Fold struct {
	First Expr
	Join  Expr
}

// Predicate is a notation-time test evaluated by the pretty-printer.
type Predicate int

const (
	// IsEmptyText tests whether the locus Texty node's text is empty.
	IsEmptyText Predicate = iota
)

// Check renders Then if Predicate holds at Locus, else Else.
type Check struct {
	Predicate Predicate
	Locus     Expr
	Then      Expr
	Else      Expr
}

// Count renders Zero, One, or Many depending on a Listy child count.
type Count struct {
	Zero Expr
	One  Expr
	Many Expr
}

// StyleToken is a structural style marker consumed by the pretty-printer
// (e.g. to bracket the focused node for highlighting).
type StyleToken int

const (
	// Open marks the start of a styled span.
	Open StyleToken = iota
	// Close marks the end of a styled span.
	Close
	// FocusMark marks the cursor's current position.
	FocusMark
)

// ShadeToken is a palette-indexed color value.
type ShadeToken int

// StyleProps configures a Style expression.
type StyleProps struct {
	FgColor  *ShadeToken
	BgColor  *ShadeToken
	Bold     bool
	Priority int
}

// Style wraps E with rendering properties.
type Style struct {
	Props StyleProps
	E     Expr
}

// ElementRef, inside a Fold's First expression, refers to a Listy
// node's single current element rendered by its own notation.
type ElementRef struct{}

// FoldRef, inside a Fold's Join expression, refers to one side of the
// pairwise fold: Left is the accumulated rendering so far, Right is the
// next element's own rendering.
type FoldRef struct{ Side FoldSide }

func (Literal) isExpr()     {}
func (TextExpr) isExpr()    {}
func (Child) isExpr()       {}
func (Concat) isExpr()      {}
func (Choice) isExpr()      {}
func (Indent) isExpr()      {}
func (NewlineExpr) isExpr() {}
func (Flat) isExpr()        {}
func (Fold) isExpr()        {}
func (Check) isExpr()       {}
func (Count) isExpr()       {}
func (Style) isExpr()       {}
func (ElementRef) isExpr()  {}
func (FoldRef) isExpr()     {}
