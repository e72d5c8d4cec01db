// Package sf defines SECS-II message types keyed by stream and function
// codes.
//
// A MessageType pairs an S/F code with a FormatDescriptor, a schema tree
// that constrains the data item a message of that type may carry. Schemas
// assemble secs2 items from plain Go values on the sending side and
// validate decoded item trees on the receiving side.
//
// A Catalog holds a set of registered message types and offers the
// message-level encode and decode operations. DefaultCatalog returns a
// catalog pre-populated with the standard SEMI E5 message set.
package sf
