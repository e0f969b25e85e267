package ir

import "errors"

var (
	// ErrParse wraps any failure to decode document bytes into a Node.
	ErrParse = errors.New("parse error")

	// ErrConvert wraps a Go value that FromAny cannot represent.
	ErrConvert = errors.New("unconvertible value")
)
