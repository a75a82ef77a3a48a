package catalog

import (
	"strconv"
	"strings"

	"fsmpAdvisor/domain"
)

// ParseRegistrationNumber extracts the product source and approval year
// from a registration number such as "GSZZTY20175001": the four digits
// after "TY" are the year, and a serial starting with 5 marks an imported
// product. Unparseable input yields empty values, never an error.
func ParseRegistrationNumber(reg string) (source string, year int) {
	tyPos := strings.Index(reg, "TY")
	if tyPos == -1 || len(reg) < tyPos+7 {
		return "", 0
	}

	y, err := strconv.Atoi(reg[tyPos+2 : tyPos+6])
	if err != nil {
		return "", 0
	}

	source = domain.SourceDomestic
	if reg[tyPos+6] == '5' {
		source = domain.SourceImported
	}

	return source, y
}
