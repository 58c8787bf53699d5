package agent

import "errors"

// Common errors returned by agent constructors.
var (
	// ErrEmptySequence is returned when a cyclic agent is constructed with
	// an empty rotation sequence, which would leave Act undefined.
	ErrEmptySequence = errors.New("agent: rotation sequence is empty")

	// ErrNilAgent is returned when an adapter or wrapper is constructed
	// around a nil inner agent.
	ErrNilAgent = errors.New("agent: inner agent is nil")

	// ErrNilConversion is returned when an adapter is constructed with a nil
	// conversion function.
	ErrNilConversion = errors.New("agent: conversion function is nil")

	// ErrNilActFunc is returned when a function-backed agent is constructed
	// with a nil act function.
	ErrNilActFunc = errors.New("agent: act function is nil")
)
