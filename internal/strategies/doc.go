// Package strategies groups the implementations of the driven.Strategy
// interface, one package per conversion kind. Each strategy composes
// the layout calculator and/or text paginator and/or direct page copy
// over a single page builder.
//
// Strategies are registered with the StrategyRegistry at startup.
package strategies
