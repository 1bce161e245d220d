package validate

import "fmt"

// Text checks that a raw argument is a string. Tool arguments arrive as
// decoded JSON, so an address may turn up as a number or an object; those
// are rejected here rather than formatted into a string.
func Text(name string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", newError(name, ErrNotString, fmt.Sprintf("%s must be a string, got type: %s", name, typeName(value)))
	}
	return s, nil
}
