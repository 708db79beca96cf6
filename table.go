//go:generate go run ./cmd/build-lut -db data/db.json -source "mime-db 1.35.0" -go table_data.go -pkg mimeguess -var defaultTable

package mimeguess

import "github.com/meigma/mimeguess/lut"

// Default returns the table compiled into the package.
//
// The table is generated from data/db.json and is shared; it must be treated
// as read-only like any other lut.Table.
func Default() *lut.Table {
	return defaultTable
}
