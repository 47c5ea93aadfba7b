package contracts

// Store bundles the repositories a storefront backend provides.
type Store interface {
	Products() ProductRepository
	Carts() CartRepository
	Orders() OrderRepository
	Close()
}
