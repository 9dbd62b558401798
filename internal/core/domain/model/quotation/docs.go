// Package quotation models the services the business offers and the quotation
// requests clients submit for them.
package quotation
