// Package ordering contains the Ordering bounded context.
// It holds the canonical order record placed by customers and the lookup
// tables that map its products and payment types onto point-of-sale codes.
//
// Key concepts:
//   - OrderHeader: the stored order with its lines, payments and discounts
//   - OrderStatus: numeric status shared with downstream order receivers
//   - FoodTranslationTable / PaymentTranslationTable: keyed lookup tables
//   - OrderReader / OrderStatusWriter / TranslationRepository: persistence ports
//
// Money is always held in minor currency units (pence) in this package.
package ordering
