// Package xml_adapter produces tag tree events from XML workflow documents.
//
// Tokenizing is left to encoding/xml, without namespace processing: an xmlns
// declaration is an ordinary attribute and names are matched as written. A
// leading byte-order mark is dropped and declared encodings other than UTF-8
// are decoded by golang.org/x/net/html/charset. Comments, processing
// instructions and directives are skipped; syntax errors surface as
// MalformedDocument with the decoder's line.
package xml_adapter
