package render

import (
	"strings"

	"github.com/teranos/cgen/casing"
	"github.com/teranos/cgen/style"
)

type roleKind int

const (
	roleDefault roleKind = iota
	roleType
	roleMember
	roleFunction
	roleConstDefine
	roleFile
	roleFixed
)

// Role picks the casing rule an identifier renders with.
type Role struct {
	kind roleKind
	rule casing.Rule
}

var (
	RoleDefault     = Role{kind: roleDefault}
	RoleType        = Role{kind: roleType}
	RoleMember      = Role{kind: roleMember}
	RoleFunction    = Role{kind: roleFunction}
	RoleConstDefine = Role{kind: roleConstDefine}
	RoleFile        = Role{kind: roleFile}
)

// Fixed pins a rule regardless of the configured casing.
func Fixed(rule casing.Rule) Role {
	return Role{kind: roleFixed, rule: rule}
}

// Rule resolves the role against the configured rules.
func (r Role) Rule(cases style.CaseRules) casing.Rule {
	switch r.kind {
	case roleType:
		return cases.Type
	case roleMember:
		return cases.Member
	case roleFunction:
		return cases.Function
	case roleConstDefine:
		return cases.ConstDefine
	case roleFile:
		return cases.File
	case roleFixed:
		return r.rule
	default:
		return cases.Default
	}
}

// Separator splits the input of NewIdentifier into fragments.
const Separator = "_"

// Identifier is a name stored as lowercase fragments plus the role that
// selects its casing at render time.
type Identifier struct {
	words []string
	role  Role
}

// NewIdentifier splits s on Separator, drops empty fragments and lowercases
// the rest. An input without fragments becomes the placeholder "invalid name".
func NewIdentifier(s string) Identifier {
	var words []string
	for _, part := range strings.Split(casing.Normalize(s), Separator) {
		if part != "" {
			words = append(words, strings.ToLower(part))
		}
	}
	return fromWords(words)
}

// ParseIdentifier builds an identifier from already-cased text such as
// "myVariableName", "HTTPServer" or "my header".
func ParseIdentifier(s string) Identifier {
	return fromWords(casing.Words(s))
}

// Words builds an identifier from fragments; fragments are lowercased.
func Words(words ...string) Identifier {
	var kept []string
	for _, w := range words {
		if w != "" {
			kept = append(kept, strings.ToLower(casing.Normalize(w)))
		}
	}
	return fromWords(kept)
}

func fromWords(words []string) Identifier {
	if len(words) == 0 {
		words = casing.Placeholder()
	}
	return Identifier{words: words, role: RoleDefault}
}

// NewTyped is NewIdentifier followed by WithRole.
func NewTyped(s string, role Role) Identifier {
	return NewIdentifier(s).WithRole(role)
}

// WithRole returns a copy tagged with role; the fragments are shared.
func (id Identifier) WithRole(role Role) Identifier {
	id.role = role
	return id
}

// Role returns the identifier's role.
func (id Identifier) Role() Role {
	return id.role
}

// Words returns a copy of the fragments.
func (id Identifier) Words() []string {
	if len(id.words) == 0 {
		return casing.Placeholder()
	}
	return append([]string(nil), id.words...)
}

// Format returns the identifier text under cfg.
func (id Identifier) Format(cfg style.Config) string {
	return casing.Casify(id.words, id.role.Rule(cfg.Cases))
}

// Render writes the identifier.
func (id Identifier) Render(w *Sink, cfg style.Config) error {
	return w.WriteString(id.Format(cfg))
}
