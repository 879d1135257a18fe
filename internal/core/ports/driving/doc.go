// Package driving defines the interfaces the CLI uses to reach core
// services: the quantity ledger, the demonstration runner and settings.
//
// Implementations live in internal/core/services.
package driving
