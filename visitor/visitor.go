package visitor

// Visitor iterates over (key, element) pairs of a struct, following the field order and offsets
// discovered by fieldwalk. The callback returning (false, nil) stops the iteration, returning an
// error stops it and the error is returned to the caller.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
