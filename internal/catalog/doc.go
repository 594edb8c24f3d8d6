// Package catalog is a client for the public Pokémon catalog API.
//
// A fetch cycle has two stages:
//   - List Acquisition: one request for a page of summary references
//     (name plus detail URL), sized by a limit.
//   - Detail Resolution: one concurrent request per reference, joined
//     all-or-nothing, with results in the order the list returned them.
//
// Network failures and malformed records both fail the whole cycle; there is
// no retry and no partial result.
package catalog
