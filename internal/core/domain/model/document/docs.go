// Package document models the warehouse paperwork that moves shipments around:
// intake receipts, inter-warehouse transfers and messenger dispatches, plus the
// items that link each document to the shipments it covers.
//
// A document is addressed by a Ref, the pair of its Kind and its id. Items carry
// only the Ref; resolving the document itself is the job of a repository.
package document
