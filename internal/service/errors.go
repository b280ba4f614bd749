package service

import "errors"

var (
	// ErrEmptyCart means there is nothing to place an order from. The
	// caller must surface it as a client error, not a server fault.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotFound means the resource does not exist or is not owned by
	// the requesting user.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken means an account with that email already exists.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidQuantity rejects zero or negative cart quantities before
	// any database access.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)
