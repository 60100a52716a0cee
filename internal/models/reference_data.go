package models

import (
	"fmt"
	"strconv"
)

// ReferenceData holds the client and product lookups keyed by id. It is
// immutable after construction and safe for concurrent reads.
type ReferenceData struct {
	clients  map[int]Client
	products map[int]Product
}

// NewReferenceData indexes clients and products by id. A repeated id is an
// InputFormatError since the id is the table's key.
func NewReferenceData(clients []Client, products []Product) (*ReferenceData, error) {
	ref := &ReferenceData{
		clients:  make(map[int]Client, len(clients)),
		products: make(map[int]Product, len(products)),
	}

	for i, c := range clients {
		if _, exists := ref.clients[c.ID]; exists {
			return nil, duplicateKeyError(TableClients, i, c.ID)
		}
		ref.clients[c.ID] = c
	}

	for i, p := range products {
		if _, exists := ref.products[p.ID]; exists {
			return nil, duplicateKeyError(TableProducts, i, p.ID)
		}
		ref.products[p.ID] = p
	}

	return ref, nil
}

func duplicateKeyError(table string, index, id int) error {
	return &InputFormatError{
		Table:  table,
		Row:    index + 2,
		Column: "id",
		Value:  strconv.Itoa(id),
		Err:    fmt.Errorf("%w: %d", ErrDuplicateKey, id),
	}
}

// Client returns the client with the given id or a *MissingKeyError
func (r *ReferenceData) Client(id int) (Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return Client{}, &MissingKeyError{Table: TableClients, Key: id}
	}
	return c, nil
}

// Product returns the product with the given id or a *MissingKeyError
func (r *ReferenceData) Product(id int) (Product, error) {
	p, ok := r.products[id]
	if !ok {
		return Product{}, &MissingKeyError{Table: TableProducts, Key: id}
	}
	return p, nil
}

func (r *ReferenceData) ClientCount() int {
	return len(r.clients)
}

func (r *ReferenceData) ProductCount() int {
	return len(r.products)
}
