package rotate

import (
	"fmt"
	"strings"
)

type Policy int

const (
	Sequential Policy = iota
	Random
)

var policyNames = map[Policy]string{
	Sequential: "sequential",
	Random:     "random",
}

// PolicyNames lists the accepted values of ParsePolicy.
func PolicyNames() []string {
	return []string{policyNames[Sequential], policyNames[Random]}
}

func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sequential":
		return Sequential, nil
	case "random":
		return Random, nil
	default:
		return Sequential, fmt.Errorf("unknown rotation mode %q. Options: %s", name, strings.Join(PolicyNames(), ", "))
	}
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}
