// Package integration contains the Integration bounded context.
// This context manages the connection to external storefront platforms.
//
// Key concepts:
//   - StorefrontPlatform: Port interface for pulling orders and products
//     from a connected storefront (Shopify)
//   - PlatformOrder / PlatformProduct: Value objects in the internal shape,
//     already stripped of platform-specific ID prefixes
//   - RateProvider: Port for exchange-rate lookups used to normalize
//     product prices at ingestion time
//
// Design Pattern: Ports & Adapters
//   - Ports (interfaces) are defined here in the domain layer
//   - Adapters (implementations) are in the infrastructure layer
package integration
