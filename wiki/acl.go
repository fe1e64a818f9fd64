package wiki

import (
	"fmt"

	"github.com/gobwas/glob"

	"wyweb.site/medialist/medialist"
	"wyweb.site/medialist/util"
)

type aclRule struct {
	pattern glob.Glob
	level   medialist.AuthLevel
}

// ACL decides the reader's permission for page ids and namespace paths. Rules are glob
// patterns over cleaned ids where '*' stays inside one namespace and '**' crosses them.
// The last matching rule wins.
type ACL struct {
	rules []aclRule
	def   medialist.AuthLevel
}

func NewACL(rules []ACLRule, defaultLevel string) (*ACL, error) {
	def, err := ParseAuthLevel(defaultLevel)
	if err != nil {
		return nil, err
	}
	acl := &ACL{def: def, rules: make([]aclRule, 0, len(rules))}
	for _, rule := range rules {
		pattern, err := glob.Compile(rule.Pattern, ':')
		if err != nil {
			return nil, fmt.Errorf("acl pattern %q: %w", rule.Pattern, err)
		}
		level, err := ParseAuthLevel(rule.Level)
		if err != nil {
			return nil, fmt.Errorf("acl pattern %q: %w", rule.Pattern, err)
		}
		acl.rules = append(acl.rules, aclRule{pattern: pattern, level: level})
	}
	return acl, nil
}

// Check accepts page ids as well as slash separated namespace paths.
func (a *ACL) Check(id string) medialist.AuthLevel {
	id = util.CleanID(id)
	level := a.def
	for _, rule := range a.rules {
		if rule.pattern.Match(id) {
			level = rule.level
		}
	}
	return level
}
