package keybinds

import (
	"sort"

	"github.com/spf13/cast"
)

// RepairReason explains why a candidate field was replaced by its default
type RepairReason string

const (
	RepairNotString   RepairReason = "not a string"
	RepairUnsupported RepairReason = "unsupported key"
	RepairReserved    RepairReason = "reserved key"
	RepairConflict    RepairReason = "key already taken"
)

// Repair records one candidate field the sanitizer discarded
type Repair struct {
	Action ActionID
	Value  any
	Reason RepairReason
	// Owner is the action holding the key when Reason is RepairConflict
	Owner ActionID
}

// Report describes how a candidate differed from a valid mapping
type Report struct {
	Repairs []Repair
	// Unknown lists candidate fields that name no registered action
	Unknown []string
	// Malformed is set when the candidate was not a key/value object at all
	Malformed bool
}

// Clean reports whether the candidate needed no repair
func (r Report) Clean() bool {
	return !r.Malformed && len(r.Repairs) == 0 && len(r.Unknown) == 0
}

// Sanitize turns arbitrary untrusted data into a complete, injective mapping free of reserved tokens.
// It never fails: fields that cannot be honoured keep their default binding.
func Sanitize(candidate any) Mapping {
	m, _ := SanitizeWithReport(candidate)
	return m
}

// SanitizeWithReport is Sanitize plus a description of every discarded field.
//
// The repair is greedy in registry order. The in-use set starts with every default
// token, and an action's own previous token is released before its candidate is
// checked, so an action can only take a key that no earlier action claimed and
// no later action still holds as its default.
func SanitizeWithReport(candidate any) (Mapping, Report) {
	var report Report
	result := DefaultMapping()

	fields, ok := candidateFields(candidate)
	if !ok {
		report.Malformed = candidate != nil
		return result, report
	}

	owners := make(map[Token]ActionID, len(result))
	for _, action := range registry {
		if token := result[action.ID]; !IsReserved(token) {
			owners[token] = action.ID
		}
	}

	for _, action := range registry {
		raw, present := fields[string(action.ID)]
		if !present {
			continue
		}

		value, isString := raw.(string)
		if !isString {
			report.Repairs = append(report.Repairs, Repair{Action: action.ID, Value: raw, Reason: RepairNotString})
			continue
		}

		token, ok := Normalize(value)
		if !ok {
			report.Repairs = append(report.Repairs, Repair{Action: action.ID, Value: raw, Reason: RepairUnsupported})
			continue
		}
		if IsReserved(token) {
			report.Repairs = append(report.Repairs, Repair{Action: action.ID, Value: raw, Reason: RepairReserved})
			continue
		}

		previous := result[action.ID]
		delete(owners, previous)

		if owner, taken := owners[token]; taken {
			if !IsReserved(previous) {
				owners[previous] = action.ID
			}
			report.Repairs = append(report.Repairs, Repair{Action: action.ID, Value: raw, Reason: RepairConflict, Owner: owner})
			continue
		}

		result[action.ID] = token
		owners[token] = action.ID
	}

	for field := range fields {
		if _, known := Lookup(ActionID(field)); !known {
			report.Unknown = append(report.Unknown, field)
		}
	}
	sort.Strings(report.Unknown)

	return result, report
}

// candidateFields coerces an untyped candidate into a field map
func candidateFields(candidate any) (map[string]any, bool) {
	switch c := candidate.(type) {
	case nil, string:
		return nil, false
	case Mapping:
		return tokenFields(c), true
	case map[ActionID]Token:
		return tokenFields(c), true
	case map[string]string:
		fields := make(map[string]any, len(c))
		for k, v := range c {
			fields[k] = v
		}
		return fields, true
	}

	fields, err := cast.ToStringMapE(candidate)
	if err != nil {
		return nil, false
	}
	return fields, true
}

func tokenFields(m map[ActionID]Token) map[string]any {
	fields := make(map[string]any, len(m))
	for id, token := range m {
		fields[string(id)] = string(token)
	}
	return fields
}
