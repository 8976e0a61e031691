package catches

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/agentstation/catchlog/pkg/errors"
)

// Kind selects how the catch list is narrowed.
type Kind string

// Filter kinds. The string values are the ones used in the list screen's
// query string.
const (
	KindNone    Kind = "none"
	KindSpecies Kind = "espece"
	KindBefore  Kind = "dateAvant"
	KindAfter   Kind = "dateApres"
)

// Kinds lists every filter kind in display order.
func Kinds() []Kind {
	return []Kind{KindNone, KindSpecies, KindBefore, KindAfter}
}

// ParseKind maps a query or flag value to a Kind. Empty means KindNone.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.TrimSpace(s)); k {
	case "", KindNone:
		return KindNone, nil
	case KindSpecies, KindBefore, KindAfter:
		return k, nil
	}
	return KindNone, errors.NewValidationError("filter", s, fmt.Sprintf("unknown filter kind %q", s))
}

// Label is the French label shown next to the filter selector.
func (k Kind) Label() string {
	switch k {
	case KindSpecies:
		return "Espèce"
	case KindBefore:
		return "Avant le"
	case KindAfter:
		return "Après le"
	default:
		return "Aucun filtre"
	}
}

// IsDate reports whether the kind takes a YYYY-MM-DD value.
func (k Kind) IsDate() bool {
	return k == KindBefore || k == KindAfter
}

// Filter is the list screen's current selection. Value is ignored for KindNone.
type Filter struct {
	Kind  Kind
	Value string
}

// Active reports whether the filter narrows the listing. A species or date
// kind with a blank value does not.
func (f Filter) Active() bool {
	return f.Kind != KindNone && f.Kind != "" && strings.TrimSpace(f.Value) != ""
}

// Validate rejects malformed date values on an active date filter.
func (f Filter) Validate() error {
	if f.Active() && f.Kind.IsDate() {
		return ValidateDate(strings.TrimSpace(f.Value))
	}
	return nil
}

// Path is the listing endpoint for the filter, relative to the API base URL.
func (f Filter) Path() string {
	if !f.Active() {
		return "/captures/all"
	}
	value := url.PathEscape(strings.TrimSpace(f.Value))
	switch f.Kind {
	case KindSpecies:
		return "/captures/espece/" + value
	case KindBefore:
		return "/captures/avant/" + value
	case KindAfter:
		return "/captures/apres/" + value
	}
	return "/captures/all"
}

// String is used in logs and CLI output.
func (f Filter) String() string {
	if !f.Active() {
		return string(KindNone)
	}
	return fmt.Sprintf("%s=%s", f.Kind, strings.TrimSpace(f.Value))
}
