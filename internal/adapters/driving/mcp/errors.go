package mcp

import "errors"

// ErrMissingConversionService is returned when the conversion service
// is not provided.
var ErrMissingConversionService = errors.New("mcp: conversion service is required")
