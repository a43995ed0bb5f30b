package cypherdsl

// Guard helpers for the builder layer. Checks are expressed over typed,
// fixed-shape arguments - no reflection over argument arrays.

// checkName rejects an empty string argument.
func checkName(value, name string) error {
	if value == "" {
		return &ArgumentError{Name: name, Message: "may not be empty"}
	}
	return nil
}

// checkExpr rejects a nil expression argument.
func checkExpr(value Expression, name string) error {
	if value == nil {
		return &ArgumentError{Name: name, Message: "may not be nil"}
	}
	return nil
}

// checkExprs rejects an empty expression list and any nil element.
func checkExprs(values []Expression, name string) error {
	if len(values) == 0 {
		return &ArgumentError{Name: name, Message: "may not be empty"}
	}
	for _, v := range values {
		if v == nil {
			return &ArgumentError{Name: name, Message: "may not contain nil"}
		}
	}
	return nil
}
