package job

import "time"

// Field names a filterable Job attribute. The store adapter maps fields to
// columns; anything outside this set is rejected there.
type Field string

const (
	FieldPosition  Field = "position"
	FieldCompany   Field = "company"
	FieldStatus    Field = "status"
	FieldCreatedAt Field = "created_at"
)

// Predicate is a composable filter condition handed to the store adapter as
// data. The adapter conjoins owner scoping on top of whatever it receives,
// so a nil or empty predicate still never crosses owners.
type Predicate interface {
	isPredicate()
}

// Equals matches records whose field equals the given value.
type Equals struct {
	Field Field
	Value string
}

// Contains matches records whose field contains the given substring,
// case-insensitively.
type Contains struct {
	Field Field
	Value string
}

// Since matches records whose field is at or after the given instant.
type Since struct {
	Field Field
	Value time.Time
}

// And is the conjunction of its elements. An empty And matches everything.
type And []Predicate

// Or is the disjunction of its elements.
type Or []Predicate

func (Equals) isPredicate()   {}
func (Contains) isPredicate() {}
func (Since) isPredicate()    {}
func (And) isPredicate()      {}
func (Or) isPredicate()       {}
