package domain

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// ExclusionCategory names the kind of id an exclusion applies to.
type ExclusionCategory string

// Exclusion categories.
const (
	ExcludeDoctor ExclusionCategory = "doctor"
	ExcludeClinic ExclusionCategory = "clinic"
)

// exclusionOrder fixes the rendering order of categories.
var exclusionOrder = []ExclusionCategory{ExcludeDoctor, ExcludeClinic}

// ExclusionSet maps a category to a sorted, duplicate-free set of ids that
// veto an otherwise matching record.
type ExclusionSet map[ExclusionCategory][]int64

// ParseExclusionSet parses "doctor:1,2;clinic:3". The whole parse fails on
// the first malformed segment; nothing is partially applied. An empty or
// blank string yields an empty set.
func ParseExclusionSet(s string) (ExclusionSet, error) {
	set := ExclusionSet{}
	if strings.TrimSpace(s) == "" {
		return set, nil
	}

	for _, segment := range strings.Split(s, ";") {
		seg := strings.TrimSpace(segment)
		if seg == "" {
			return nil, configErr("exclusions", segment, "empty segment")
		}

		key, ids, found := strings.Cut(seg, ":")
		if !found {
			return nil, configErr("exclusions", seg, `expected "category:id[,id...]"`)
		}

		cat := ExclusionCategory(strings.ToLower(strings.TrimSpace(key)))
		if !slices.Contains(exclusionOrder, cat) {
			return nil, configErr("exclusions", seg, `unknown category, must be "doctor" or "clinic"`)
		}

		if strings.TrimSpace(ids) == "" {
			return nil, configErr("exclusions", seg, "no ids given")
		}

		for _, raw := range strings.Split(ids, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil || id <= 0 {
				return nil, configErr("exclusions", seg, "id "+strconv.Quote(raw)+" is not a positive integer")
			}
			set.add(cat, id)
		}
	}

	return set, nil
}

func (s ExclusionSet) add(cat ExclusionCategory, id int64) {
	ids := s[cat]
	i, found := slices.BinarySearch(ids, id)
	if found {
		return
	}
	s[cat] = slices.Insert(ids, i, id)
}

// With returns a copy of the set with id added to cat.
func (s ExclusionSet) With(cat ExclusionCategory, id int64) ExclusionSet {
	out := make(ExclusionSet, len(s)+1)
	for k, v := range s {
		out[k] = slices.Clone(v)
	}
	out.add(cat, id)
	return out
}

// Excludes reports whether id is blocked for cat.
func (s ExclusionSet) Excludes(cat ExclusionCategory, id int64) bool {
	_, found := slices.BinarySearch(s[cat], id)
	return found
}

// Empty reports whether the set blocks nothing.
func (s ExclusionSet) Empty() bool {
	for _, ids := range s {
		if len(ids) > 0 {
			return false
		}
	}
	return true
}

// String renders the set in the grammar ParseExclusionSet accepts.
func (s ExclusionSet) String() string {
	var parts []string
	for _, cat := range exclusionOrder {
		ids := s[cat]
		if len(ids) == 0 {
			continue
		}
		strs := make([]string, len(ids))
		for i, id := range ids {
			strs[i] = strconv.FormatInt(id, 10)
		}
		parts = append(parts, string(cat)+":"+strings.Join(strs, ","))
	}
	return strings.Join(parts, ";")
}

// MarshalJSON stores the set in its textual form.
func (s ExclusionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses the textual form.
func (s *ExclusionSet) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parsed, err := ParseExclusionSet(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
