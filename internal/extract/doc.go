// Package extract turns loosely structured listing markup into typed
// catalog entries. Every field is read through an ordered list of
// locators, so a layout change on the site usually means adding one
// locator rather than new branching code.
package extract
