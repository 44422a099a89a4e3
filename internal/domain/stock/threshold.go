package stock

// IsBelowMin deriva la condición de stock mínimo: hay umbral y el saldo está
// por debajo. Se recalcula en cada lectura, nunca se almacena.
func IsBelowMin(balance int64, minStock *int64) bool {
	return minStock != nil && balance < *minStock
}
