package repokit

// Binder binds a domain repo to a specific Queryer, the pool or a tx
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc lets you create a Binder from a function
type BindFunc[T any] func(Queryer) T

// Bind calls the underlying function
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// RequireQueryer panics early on programmer error (nil q)
func RequireQueryer(q Queryer) Queryer {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return q
}

// MustBind validates q then binds
func MustBind[T any](b Binder[T], q Queryer) T {
	return b.Bind(RequireQueryer(q))
}
