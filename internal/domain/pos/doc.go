// Package pos contains the point-of-sale order-entry wire model and the
// rules that produce and check it.
//
// The Translator turns an ordering.OrderHeader into an AddOrderRequest: a
// header block with broken-down dates and a customer block, followed by
// transaction lines appended in a fixed order (delivery charge, food,
// payments, discounts, tip). Validate gates a request before submission and
// reports the first rule it breaks.
package pos
