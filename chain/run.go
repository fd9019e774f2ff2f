package chain

import (
	"github.com/erraggy/casekit/caseerrors"
	"github.com/erraggy/casekit/transform"
)

// Result is the outcome of a successful chain.
type Result struct {
	// Value is the subject after every command has been applied.
	Value string
	// Path lists the display names of the applied transforms, in order.
	Path []string
}

// Run folds subject through cmds from left to right. Commands whose key is
// not registered leave the value unchanged and are not recorded in the path.
//
// The first transform error stops the fold and is returned as a
// *caseerrors.TransformError; use Describe for the full path of the chain.
func Run(subject string, cmds []Command) (*Result, error) {
	res := &Result{Value: subject}
	for i, cmd := range cmds {
		spec, ok := transform.Lookup(cmd.Key)
		if !ok {
			continue
		}
		out, err := spec.Apply(res.Value, cmd.Args)
		if err != nil {
			return nil, &caseerrors.TransformError{
				Key:      cmd.Key,
				Name:     spec.Name,
				Position: i,
				Cause:    err,
			}
		}
		res.Value = out
		res.Path = append(res.Path, spec.Name)
	}
	return res, nil
}

// Describe returns the display names of every registered command in cmds,
// in order, without running any of them.
func Describe(cmds []Command) []string {
	var path []string
	for _, cmd := range cmds {
		if spec, ok := transform.Lookup(cmd.Key); ok {
			path = append(path, spec.Name)
		}
	}
	return path
}
