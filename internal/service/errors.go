package service

import "errors"

var (
	ErrEmptyCart       = errors.New("cart is empty, nothing to checkout")
	ErrCartFull        = errors.New("shopping cart is full")
	ErrInvalidQuantity = errors.New("quantity out of range")
)
