// Package services holds the shop's business logic: cart mutation, checkout,
// and catalog management. Services are stateless; all durable state lives in
// the store behind the repositories, and every operation is a read-modify-
// write against it.
package services

import (
	"errors"
	"fmt"
)

// ErrOutOfStock signals an Add that would exceed the product's stock.
var ErrOutOfStock = errors.New("no more stock available")

// ErrProductNotFound signals an operation against an unknown product ID.
var ErrProductNotFound = errors.New("product not found")

// ErrEmptyCart signals a checkout attempted with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// StockExceededError signals a SetQuantity beyond available stock. The caller
// gets the numbers so the storefront can say how many units remain.
type StockExceededError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// ValidationError carries the per-field failures from a rejected checkout
// form. Nothing is mutated when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// PersistenceError wraps a store read or write failure. The Step names how
// far a multi-step sequence got, since completed steps are not rolled back.
type PersistenceError struct {
	Step string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed at %s: %v", e.Step, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
