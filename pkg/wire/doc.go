// Package wire holds raw Telegram wire-format records as closed variant
// sets, exactly as produced by the protocol decoding layer and prior to any
// normalization. Every polymorphic position (message, media envelope, photo
// size, document attribute, peer, entity, service action) is a sealed
// interface: adding a variant without updating the consumers is a
// compile-time visible gap, not a silent no-op branch.
//
// Records are call-scoped and immutable by convention: the normalization
// layer never mutates them and never retains them past a call.
package wire
