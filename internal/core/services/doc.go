// Package services implements the driving ports: the conversion
// dispatcher and the strategy registry.
//
// Services depend only on domain types and port interfaces; the
// concrete strategies and stores are injected at the composition
// root.
package services
