// Package delivery contains the Delivery bounded context: lifecycle events
// pushed by the delivery partner (Bringg), the payloads forwarded to the
// downstream order receiver, and the ports used to resolve stores, forward
// payloads and query the partner.
package delivery
