// Package generic implements providers.Source over plain HTTP. Pages are
// fetched with retries and an optional politeness limit, then parsed into
// goquery documents.
package generic
