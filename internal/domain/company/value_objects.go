package company

import "strings"

// INN is the tax id. Only digits are accepted; the first two digits encode the region.
type INN struct {
	value string
}

func NewINN(s string) (INN, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return INN{}, ErrInvalidINN
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return INN{}, ErrInvalidINN
		}
	}
	return INN{value: s}, nil
}

func (i INN) Value() string { return i.value }

func (i INN) HasPrefix(prefix string) bool {
	return prefix != "" && strings.HasPrefix(i.value, prefix)
}

// RegionRule decides which companies belong to the served region and which registrations go
// through the support survey.
type RegionRule struct {
	INNPrefix string
	Name      string
}

func NewRegionRule(prefix, name string) RegionRule {
	return RegionRule{INNPrefix: strings.TrimSpace(prefix), Name: name}
}

func (r RegionRule) Matches(inn INN) bool {
	return inn.HasPrefix(r.INNPrefix)
}

// LikePattern is the SQL LIKE pattern selecting regional tax ids.
func (r RegionRule) LikePattern() string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(r.INNPrefix)
	return escaped + "%"
}
