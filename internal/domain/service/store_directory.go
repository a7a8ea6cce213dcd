package service

// StoreDirectory maps store names to the short codes used in complaint identifiers.
type StoreDirectory interface {
	// CodeFor returns a 3-letter upper-case code for the store name.
	CodeFor(storeName string) string
}
