// Package services implements the driving ports on top of the complete
// number algebra in domain.
//
// LedgerService persists named quantities through a driven.QuantityStore,
// DemoService prints the worked examples, and SettingsService maps
// domain.AppSettings onto a driven.ConfigStore.
package services
