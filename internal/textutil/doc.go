// Package textutil provides the text normalisation used to order catalog
// entries.
//
// Sort forms fold case with golang.org/x/text so that comparison needs no
// locale collation, and strip the leading asides, quotes and articles that
// would otherwise cluster entries under "(", "the" or "'".
package textutil
