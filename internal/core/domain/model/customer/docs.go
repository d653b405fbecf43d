// Package customer contains the Customer aggregate. Customers are identified by
// email and are created or updated implicitly when they place an order.
package customer
